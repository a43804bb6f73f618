package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// El borrado lógico se hace vía Update (flag Active); HardDelete elimina la fila
// y arrastra sus entradas/salidas (ON DELETE CASCADE).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	// Usar solo dentro de una transacción: serializa las escrituras del libro por producto.
	GetForUpdate(id string) (*entity.Product, error)
	ListActive() ([]*entity.Product, error)
	ListActiveByWarehouse(warehouseID string) ([]*entity.Product, error)
	ListActiveByCategory(categoryID string) ([]*entity.Product, error)
	CountActiveByWarehouse(warehouseID string) (int, error)
	CountActiveByCategory(categoryID string) (int, error)
	Update(product *entity.Product) error
	HardDelete(id string) error
}
