package stock

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
	domstock "github.com/jhoicas/almacen-api/internal/domain/stock"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// LedgerService deriva el stock actual de un producto desde el libro de
// entradas/salidas. No existe columna de stock materializada: cada lectura
// recalcula contra las dos sumas agregadas.
type LedgerService struct {
	ledgerRepo repository.StockLedgerRepository
	log        *logger.Logger
}

// NewLedgerService construye el servicio de libro de stock.
func NewLedgerService(ledgerRepo repository.StockLedgerRepository, log *logger.Logger) *LedgerService {
	return &LedgerService{ledgerRepo: ledgerRepo, log: log}
}

// CurrentStock devuelve el saldo actual de un producto para fines de consulta.
// Ante un fallo de storage registra el error y reporta cero (fail-open de
// visualización). Las escrituras NUNCA usan este camino: la validación de
// salidas recalcula el saldo con BalanceOf dentro de su transacción y propaga
// el error.
func (s *LedgerService) CurrentStock(productID string) decimal.Decimal {
	balance, err := BalanceOf(s.ledgerRepo, productID)
	if err != nil {
		s.log.Error().Err(err).Str("product_id", productID).Msg("calcular stock actual")
		return decimal.Zero
	}
	return balance
}

// BalanceOf calcula el saldo estricto: suma de entradas activas menos suma de
// salidas activas, con piso en cero. Propaga errores de storage. Con un repo
// atado a una transacción, el saldo incluye lo ya escrito en esa tx.
func BalanceOf(ledger repository.StockLedgerRepository, productID string) (decimal.Decimal, error) {
	entries, err := ledger.SumActiveEntries(productID)
	if err != nil {
		return decimal.Zero, err
	}
	exits, err := ledger.SumActiveExits(productID)
	if err != nil {
		return decimal.Zero, err
	}
	return domstock.Balance(entries, exits), nil
}
