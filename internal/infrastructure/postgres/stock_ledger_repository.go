package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockLedgerRepository = (*StockLedgerRepo)(nil)

// StockLedgerRepo implementación de las sumas del libro de stock sobre PostgreSQL.
// Las columnas quantity son NUMERIC(10,2) y llegan como shopspring/decimal vía el
// codec del pool: la suma se hace en la DB sin pérdida de precisión.
type StockLedgerRepo struct {
	q Querier
}

// NewStockLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
// Con tx, las sumas ven las filas ya escritas en esa transacción.
func NewStockLedgerRepository(q Querier) *StockLedgerRepo {
	return &StockLedgerRepo{q: q}
}

// SumActiveEntries suma las cantidades de las entradas activas de un producto.
func (r *StockLedgerRepo) SumActiveEntries(productID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM entries WHERE product_id = $1 AND active = true`,
		productID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum entries: %w", err)
	}
	return total, nil
}

// SumActiveExits suma las cantidades de las salidas activas de un producto.
func (r *StockLedgerRepo) SumActiveExits(productID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM exits WHERE product_id = $1 AND active = true`,
		productID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum exits: %w", err)
	}
	return total, nil
}
