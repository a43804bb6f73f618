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

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL (usable con pool o tx).
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste un nuevo rol. Nombre único (23505 -> ErrDuplicate).
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `INSERT INTO roles (id, name, description, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.Name, nullable(role.Description), role.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT id, name, description, created_at FROM roles WHERE id = $1`, id))
}

// GetByName obtiene un rol por nombre.
func (r *RoleRepo) GetByName(name string) (*entity.Role, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT id, name, description, created_at FROM roles WHERE name = $1`, name))
}

// ListAll lista todos los roles.
func (r *RoleRepo) ListAll() ([]*entity.Role, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, description, created_at FROM roles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		var description *string
		if err := rows.Scan(&role.ID, &role.Name, &description, &role.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		role.Description = fromNullable(description)
		list = append(list, &role)
	}
	return list, rows.Err()
}

// HardDelete elimina físicamente un rol.
func (r *RoleRepo) HardDelete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}

func (r *RoleRepo) scanOne(row pgx.Row) (*entity.Role, error) {
	var role entity.Role
	var description *string
	err := row.Scan(&role.ID, &role.Name, &description, &role.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	role.Description = fromNullable(description)
	return &role, nil
}
