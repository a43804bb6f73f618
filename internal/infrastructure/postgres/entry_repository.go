package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.EntryRepository = (*EntryRepo)(nil)

const entryColumns = `id, product_id, entry_date, quantity, observation, active, created_at, updated_at`

// EntryRepo implementación del puerto EntryRepository sobre PostgreSQL (usable con pool o tx).
// La tabla lleva CHECK (quantity > 0): defensa en profundidad además del validador.
type EntryRepo struct {
	q Querier
}

// NewEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEntryRepository(q Querier) *EntryRepo {
	return &EntryRepo{q: q}
}

// Create persiste una entrada de stock.
func (r *EntryRepo) Create(entry *entity.Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO entries (id, product_id, entry_date, quantity, observation, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.EntryDate, entry.Quantity,
		nullable(entry.Observation), entry.Active, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID.
func (r *EntryRepo) GetByID(id string) (*entity.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE id = $1`
	var e entity.Entry
	var observation *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.ProductID, &e.EntryDate, &e.Quantity, &observation,
		&e.Active, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entry: %w", err)
	}
	e.Observation = fromNullable(observation)
	return &e, nil
}

// ListAll lista las entradas activas, más recientes primero.
func (r *EntryRepo) ListAll() ([]*entity.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE active = true ORDER BY entry_date DESC`
	return r.list(query)
}

// ListByProduct lista las entradas activas de un producto, más recientes primero.
func (r *EntryRepo) ListByProduct(productID string) ([]*entity.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE product_id = $1 AND active = true ORDER BY entry_date DESC`
	return r.list(query, productID)
}

// ListByWarehouse lista las entradas activas de productos de un almacén.
func (r *EntryRepo) ListByWarehouse(warehouseID string) ([]*entity.Entry, error) {
	query := `
		SELECT e.id, e.product_id, e.entry_date, e.quantity, e.observation, e.active, e.created_at, e.updated_at
		FROM entries e
		JOIN products p ON p.id = e.product_id
		WHERE p.warehouse_id = $1 AND e.active = true
		ORDER BY e.entry_date DESC`
	return r.list(query, warehouseID)
}

// ListByDateRange lista las entradas activas en un rango de fechas (inclusive).
func (r *EntryRepo) ListByDateRange(from, to time.Time) ([]*entity.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE entry_date >= $1 AND entry_date <= $2 AND active = true ORDER BY entry_date DESC`
	return r.list(query, from, to)
}

// Update actualiza una entrada existente (incluye el flag Active para borrado lógico).
func (r *EntryRepo) Update(entry *entity.Entry) error {
	query := `
		UPDATE entries
		SET product_id = $2, entry_date = $3, quantity = $4, observation = $5, active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.EntryDate, entry.Quantity,
		nullable(entry.Observation), entry.Active, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	return nil
}

// HardDelete elimina físicamente una entrada.
func (r *EntryRepo) HardDelete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

func (r *EntryRepo) list(query string, args ...any) ([]*entity.Entry, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Entry
	for rows.Next() {
		var e entity.Entry
		var observation *string
		if err := rows.Scan(&e.ID, &e.ProductID, &e.EntryDate, &e.Quantity, &observation,
			&e.Active, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.Observation = fromNullable(observation)
		list = append(list, &e)
	}
	return list, rows.Err()
}
