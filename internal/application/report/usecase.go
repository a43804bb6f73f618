package report

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// LowStockPDFGenerator genera el documento PDF del reporte de stock bajo.
type LowStockPDFGenerator interface {
	GenerateLowStockPDF(items []dto.ProductResponse, generatedAt time.Time) ([]byte, error)
}

// UseCase produce reportes de inventario.
type UseCase struct {
	products  *usecase.ProductUseCase
	generator LowStockPDFGenerator
	log       *logger.Logger
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(products *usecase.ProductUseCase, generator LowStockPDFGenerator, log *logger.Logger) *UseCase {
	return &UseCase{products: products, generator: generator, log: log}
}

// LowStockPDF arma el barrido de stock bajo y lo renderiza como PDF.
func (uc *UseCase) LowStockPDF() ([]byte, error) {
	list, err := uc.products.LowStock()
	if err != nil {
		return nil, err
	}
	pdf, err := uc.generator.GenerateLowStockPDF(list.Items, time.Now())
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int("items", list.Total).Msg("reporte de stock bajo generado")
	return pdf, nil
}
