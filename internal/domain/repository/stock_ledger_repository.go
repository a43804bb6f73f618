package repository

import "github.com/shopspring/decimal"

// StockLedgerRepository define el puerto de lectura del libro de stock:
// las dos sumas agregadas de las que se deriva el saldo de un producto.
// Solo cuentan filas activas (convención de borrado lógico).
type StockLedgerRepository interface {
	SumActiveEntries(productID string) (decimal.Decimal, error)
	SumActiveExits(productID string) (decimal.Decimal, error)
}
