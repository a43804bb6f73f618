package repository

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// EntryRepository define el puerto de persistencia para entradas de stock.
type EntryRepository interface {
	Create(entry *entity.Entry) error
	GetByID(id string) (*entity.Entry, error)
	ListAll() ([]*entity.Entry, error)
	ListByProduct(productID string) ([]*entity.Entry, error)
	ListByWarehouse(warehouseID string) ([]*entity.Entry, error)
	ListByDateRange(from, to time.Time) ([]*entity.Entry, error)
	Update(entry *entity.Entry) error
	HardDelete(id string) error
}
