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

var _ repository.ExitRepository = (*ExitRepo)(nil)

const exitColumns = `id, product_id, exit_date, quantity, observation, active, created_at, updated_at`

// ExitRepo implementación del puerto ExitRepository sobre PostgreSQL (usable con pool o tx).
// La verificación de saldo suficiente NO vive aquí: la hace el caso de uso dentro
// de la transacción, con la fila del producto bloqueada.
type ExitRepo struct {
	q Querier
}

// NewExitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExitRepository(q Querier) *ExitRepo {
	return &ExitRepo{q: q}
}

// Create persiste una salida de stock.
func (r *ExitRepo) Create(exit *entity.Exit) error {
	if exit.ID == "" {
		exit.ID = uuid.New().String()
	}
	query := `
		INSERT INTO exits (id, product_id, exit_date, quantity, observation, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		exit.ID, exit.ProductID, exit.ExitDate, exit.Quantity,
		nullable(exit.Observation), exit.Active, exit.CreatedAt, exit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert exit: %w", err)
	}
	return nil
}

// GetByID obtiene una salida por ID.
func (r *ExitRepo) GetByID(id string) (*entity.Exit, error) {
	query := `SELECT ` + exitColumns + ` FROM exits WHERE id = $1`
	var x entity.Exit
	var observation *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&x.ID, &x.ProductID, &x.ExitDate, &x.Quantity, &observation,
		&x.Active, &x.CreatedAt, &x.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get exit: %w", err)
	}
	x.Observation = fromNullable(observation)
	return &x, nil
}

// ListAll lista las salidas activas, más recientes primero.
func (r *ExitRepo) ListAll() ([]*entity.Exit, error) {
	query := `SELECT ` + exitColumns + ` FROM exits WHERE active = true ORDER BY exit_date DESC`
	return r.list(query)
}

// ListByProduct lista las salidas activas de un producto, más recientes primero.
func (r *ExitRepo) ListByProduct(productID string) ([]*entity.Exit, error) {
	query := `SELECT ` + exitColumns + ` FROM exits WHERE product_id = $1 AND active = true ORDER BY exit_date DESC`
	return r.list(query, productID)
}

// ListByWarehouse lista las salidas activas de productos de un almacén.
func (r *ExitRepo) ListByWarehouse(warehouseID string) ([]*entity.Exit, error) {
	query := `
		SELECT x.id, x.product_id, x.exit_date, x.quantity, x.observation, x.active, x.created_at, x.updated_at
		FROM exits x
		JOIN products p ON p.id = x.product_id
		WHERE p.warehouse_id = $1 AND x.active = true
		ORDER BY x.exit_date DESC`
	return r.list(query, warehouseID)
}

// ListByDateRange lista las salidas activas en un rango de fechas (inclusive).
func (r *ExitRepo) ListByDateRange(from, to time.Time) ([]*entity.Exit, error) {
	query := `SELECT ` + exitColumns + ` FROM exits WHERE exit_date >= $1 AND exit_date <= $2 AND active = true ORDER BY exit_date DESC`
	return r.list(query, from, to)
}

// Update actualiza una salida existente (incluye el flag Active para borrado lógico).
func (r *ExitRepo) Update(exit *entity.Exit) error {
	query := `
		UPDATE exits
		SET product_id = $2, exit_date = $3, quantity = $4, observation = $5, active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		exit.ID, exit.ProductID, exit.ExitDate, exit.Quantity,
		nullable(exit.Observation), exit.Active, exit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update exit: %w", err)
	}
	return nil
}

// HardDelete elimina físicamente una salida.
func (r *ExitRepo) HardDelete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM exits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete exit: %w", err)
	}
	return nil
}

func (r *ExitRepo) list(query string, args ...any) ([]*entity.Exit, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list exits: %w", err)
	}
	defer rows.Close()
	var list []*entity.Exit
	for rows.Next() {
		var x entity.Exit
		var observation *string
		if err := rows.Scan(&x.ID, &x.ProductID, &x.ExitDate, &x.Quantity, &observation,
			&x.Active, &x.CreatedAt, &x.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan exit: %w", err)
		}
		x.Observation = fromNullable(observation)
		list = append(list, &x)
	}
	return list, rows.Err()
}
