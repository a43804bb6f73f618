package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Exit representa una salida de stock de un producto. Además de quantity > 0,
// la cantidad no puede exceder el saldo actual del producto al momento de escribir.
type Exit struct {
	ID          string
	ProductID   string
	ExitDate    time.Time // solo fecha (columna DATE)
	Quantity    decimal.Decimal
	Observation string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
