package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/internal/domain/stock"
)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// StatusFor — los empates favorecen la clasificación más severa
// ──────────────────────────────────────────────────────────────────────────────

func TestStatusFor_StockCeroEsCritical(t *testing.T) {
	assert.Equal(t, stock.StatusCritical, stock.StatusFor(d("0"), d("5")),
		"stock 0 debe clasificar critical aunque el mínimo sea mayor")
}

func TestStatusFor_StockIgualAlMinimoEsWarning(t *testing.T) {
	assert.Equal(t, stock.StatusWarning, stock.StatusFor(d("5"), d("5")),
		"stock exactamente en el mínimo debe clasificar warning, no success")
}

func TestStatusFor_StockSobreElMinimoEsSuccess(t *testing.T) {
	assert.Equal(t, stock.StatusSuccess, stock.StatusFor(d("5.01"), d("5")))
}

func TestStatusFor_MinimoCero(t *testing.T) {
	// Con mínimo 0, cualquier stock positivo es success y el cero sigue critical.
	assert.Equal(t, stock.StatusCritical, stock.StatusFor(d("0"), d("0")))
	assert.Equal(t, stock.StatusSuccess, stock.StatusFor(d("0.01"), d("0")))
}

func TestStatusFor_Fraccionales(t *testing.T) {
	assert.Equal(t, stock.StatusWarning, stock.StatusFor(d("4.99"), d("5")))
	assert.Equal(t, stock.StatusWarning, stock.StatusFor(d("0.01"), d("5")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Balance — entradas menos salidas con piso en cero
// ──────────────────────────────────────────────────────────────────────────────

func TestBalance_EntradasMenosSalidas(t *testing.T) {
	assert.True(t, stock.Balance(d("15"), d("12")).Equal(d("3")))
}

func TestBalance_SinMovimientosEsCero(t *testing.T) {
	assert.True(t, stock.Balance(decimal.Zero, decimal.Zero).IsZero())
}

func TestBalance_NuncaNegativo(t *testing.T) {
	// Datos históricos inconsistentes (salidas > entradas) reportan 0, no negativo.
	assert.True(t, stock.Balance(d("3"), d("10")).IsZero(),
		"el saldo derivado nunca debe ser negativo")
}

func TestBalance_ExactamenteCero(t *testing.T) {
	assert.True(t, stock.Balance(d("7.50"), d("7.50")).IsZero())
}
