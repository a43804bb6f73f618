package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// WarehouseUseCase administra almacenes.
type WarehouseUseCase struct {
	warehouseRepo repository.WarehouseRepository
	productRepo   repository.ProductRepository
	log           *logger.Logger
}

// NewWarehouseUseCase construye el caso de uso de almacenes.
func NewWarehouseUseCase(warehouseRepo repository.WarehouseRepository, productRepo repository.ProductRepository, log *logger.Logger) *WarehouseUseCase {
	return &WarehouseUseCase{warehouseRepo: warehouseRepo, productRepo: productRepo, log: log}
}

// Create crea un almacén. El nombre es único.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" {
		return nil, domain.Validationf("el nombre del almacén es requerido")
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.warehouseRepo.Create(warehouse); err != nil {
		return nil, err
	}
	uc.log.Info().Str("warehouse_id", warehouse.ID).Str("name", warehouse.Name).Msg("almacén creado")
	return toWarehouseResponse(warehouse), nil
}

// GetByID devuelve un almacén por su ID, o nil si no existe.
func (uc *WarehouseUseCase) GetByID(id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(id)
	if err != nil || warehouse == nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// ListActive devuelve los almacenes activos.
func (uc *WarehouseUseCase) ListActive() ([]*dto.WarehouseResponse, error) {
	warehouses, err := uc.warehouseRepo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.WarehouseResponse, 0, len(warehouses))
	for _, w := range warehouses {
		out = append(out, toWarehouseResponse(w))
	}
	return out, nil
}

// Update actualiza un almacén.
func (uc *WarehouseUseCase) Update(id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(id)
	if err != nil || warehouse == nil {
		return nil, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.Validationf("el nombre del almacén es requerido")
		}
		warehouse.Name = *in.Name
	}
	if in.Description != nil {
		warehouse.Description = *in.Description
	}
	if in.Active != nil {
		warehouse.Active = *in.Active
	}
	warehouse.UpdatedAt = time.Now()
	if err := uc.warehouseRepo.Update(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// guardDelete rechaza el borrado si el almacén aún tiene productos activos.
func (uc *WarehouseUseCase) guardDelete(warehouse *entity.Warehouse) error {
	count, err := uc.productRepo.CountActiveByWarehouse(warehouse.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.Validationf("no se puede eliminar el almacén '%s' porque tiene productos asociados", warehouse.Name)
	}
	return nil
}

// Delete desactiva un almacén (borrado lógico), rechazando si tiene productos
// activos asociados. Devuelve domain.ErrNotFound si no existe.
func (uc *WarehouseUseCase) Delete(id string) error {
	warehouse, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	if err := uc.guardDelete(warehouse); err != nil {
		return err
	}
	warehouse.Active = false
	warehouse.UpdatedAt = time.Now()
	return uc.warehouseRepo.Update(warehouse)
}

// HardDelete elimina un almacén de forma permanente, con la misma guarda de
// productos asociados que el borrado lógico.
func (uc *WarehouseUseCase) HardDelete(id string) error {
	warehouse, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	if err := uc.guardDelete(warehouse); err != nil {
		return err
	}
	return uc.warehouseRepo.HardDelete(id)
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Active:      w.Active,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}
