package repository

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ExitRepository define el puerto de persistencia para salidas de stock.
type ExitRepository interface {
	Create(exit *entity.Exit) error
	GetByID(id string) (*entity.Exit, error)
	ListAll() ([]*entity.Exit, error)
	ListByProduct(productID string) ([]*entity.Exit, error)
	ListByWarehouse(warehouseID string) ([]*entity.Exit, error)
	ListByDateRange(from, to time.Time) ([]*entity.Exit, error)
	Update(exit *entity.Exit) error
	HardDelete(id string) error
}
