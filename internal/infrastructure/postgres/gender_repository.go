package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.GenderRepository = (*GenderRepo)(nil)

// GenderRepo implementación del puerto GenderRepository sobre PostgreSQL (usable con pool o tx).
type GenderRepo struct {
	q Querier
}

// NewGenderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGenderRepository(q Querier) *GenderRepo {
	return &GenderRepo{q: q}
}

// Create persiste un nuevo género. Nombre único (23505 -> ErrDuplicate).
func (r *GenderRepo) Create(gender *entity.Gender) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO genders (id, name, created_at) VALUES ($1, $2, $3)`,
		gender.ID, gender.Name, gender.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert gender: %w", err)
	}
	return nil
}

// GetByID obtiene un género por ID.
func (r *GenderRepo) GetByID(id string) (*entity.Gender, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT id, name, created_at FROM genders WHERE id = $1`, id))
}

// GetByName obtiene un género por nombre.
func (r *GenderRepo) GetByName(name string) (*entity.Gender, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT id, name, created_at FROM genders WHERE name = $1`, name))
}

// ListAll lista todos los géneros.
func (r *GenderRepo) ListAll() ([]*entity.Gender, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at FROM genders ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list genders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Gender
	for rows.Next() {
		var g entity.Gender
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan gender: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// HardDelete elimina físicamente un género.
func (r *GenderRepo) HardDelete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM genders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gender: %w", err)
	}
	return nil
}

func (r *GenderRepo) scanOne(row pgx.Row) (*entity.Gender, error) {
	var g entity.Gender
	err := row.Scan(&g.ID, &g.Name, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gender: %w", err)
	}
	return &g, nil
}
