package stock

import "github.com/shopspring/decimal"

// Status clasifica el nivel de stock de un producto.
type Status string

// Niveles de estado, del más al menos severo.
const (
	StatusCritical Status = "critical"
	StatusWarning  Status = "warning"
	StatusSuccess  Status = "success"
)

// StatusFor clasifica (stock actual, cantidad mínima) en tres niveles (servicio de dominio, puro).
// Los empates favorecen la clasificación más severa (<=, no <):
// stock <= 0 -> critical; stock <= min -> warning; resto -> success.
func StatusFor(currentStock, minQuantity decimal.Decimal) Status {
	if currentStock.LessThanOrEqual(decimal.Zero) {
		return StatusCritical
	}
	if currentStock.LessThanOrEqual(minQuantity) {
		return StatusWarning
	}
	return StatusSuccess
}

// Balance calcula el saldo derivado de un producto: entradas menos salidas,
// con piso en cero (nunca se reporta negativo).
func Balance(totalEntries, totalExits decimal.Decimal) decimal.Decimal {
	balance := totalEntries.Sub(totalExits)
	if balance.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return balance
}
