package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, category_id, warehouse_id, min_quantity, unit_cost, observation, active, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, category_id, warehouse_id, min_quantity, unit_cost, observation, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, nullable(product.CategoryID), product.WarehouseID,
		product.MinQuantity, product.UnitCost, nullable(product.Observation),
		product.Active, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetForUpdate obtiene un producto bloqueando su fila (SELECT FOR UPDATE).
// Dentro de una transacción serializa las escrituras del libro de ese producto.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product for update")
}

// ListActive lista los productos activos.
func (r *ProductRepo) ListActive() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE active = true ORDER BY name`
	return r.list(query)
}

// ListActiveByWarehouse lista los productos activos de un almacén.
func (r *ProductRepo) ListActiveByWarehouse(warehouseID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE warehouse_id = $1 AND active = true ORDER BY name`
	return r.list(query, warehouseID)
}

// ListActiveByCategory lista los productos activos de una categoría.
func (r *ProductRepo) ListActiveByCategory(categoryID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category_id = $1 AND active = true ORDER BY name`
	return r.list(query, categoryID)
}

// CountActiveByWarehouse cuenta productos activos que referencian el almacén (guard de borrado).
func (r *ProductRepo) CountActiveByWarehouse(warehouseID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE warehouse_id = $1 AND active = true`, warehouseID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products by warehouse: %w", err)
	}
	return n, nil
}

// CountActiveByCategory cuenta productos activos que referencian la categoría (guard de borrado).
func (r *ProductRepo) CountActiveByCategory(categoryID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE category_id = $1 AND active = true`, categoryID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return n, nil
}

// Update actualiza un producto existente (incluye el flag Active para borrado lógico).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, category_id = $3, warehouse_id = $4, min_quantity = $5,
		    unit_cost = $6, observation = $7, active = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, nullable(product.CategoryID), product.WarehouseID,
		product.MinQuantity, product.UnitCost, nullable(product.Observation),
		product.Active, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// HardDelete elimina físicamente un producto; el cascade de la FK arrastra sus entradas y salidas.
func (r *ProductRepo) HardDelete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	var categoryID, observation *string
	err := row.Scan(
		&p.ID, &p.Name, &categoryID, &p.WarehouseID, &p.MinQuantity, &p.UnitCost,
		&observation, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	p.CategoryID = fromNullable(categoryID)
	p.Observation = fromNullable(observation)
	return &p, nil
}

func (r *ProductRepo) list(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var categoryID, observation *string
		if err := rows.Scan(&p.ID, &p.Name, &categoryID, &p.WarehouseID, &p.MinQuantity,
			&p.UnitCost, &observation, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.CategoryID = fromNullable(categoryID)
		p.Observation = fromNullable(observation)
		list = append(list, &p)
	}
	return list, rows.Err()
}
