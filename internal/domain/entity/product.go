package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. El stock NO es un atributo
// almacenado: se deriva siempre del libro de entradas/salidas al momento de leer.
// MinQuantity y UnitCost nunca son negativos (check constraint en DB).
type Product struct {
	ID          string
	Name        string
	CategoryID  string // vacío si no tiene categoría
	WarehouseID string
	MinQuantity decimal.Decimal
	UnitCost    decimal.Decimal
	Observation string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
