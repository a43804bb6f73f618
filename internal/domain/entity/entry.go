package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry representa una entrada de stock (movimiento de ingreso) de un producto.
// Quantity es estrictamente positiva (validación + check constraint en DB).
type Entry struct {
	ID          string
	ProductID   string
	EntryDate   time.Time // solo fecha (columna DATE)
	Quantity    decimal.Decimal
	Observation string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
