package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	stockapp "github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	domstock "github.com/jhoicas/almacen-api/internal/domain/stock"
	"github.com/jhoicas/almacen-api/pkg/logger"
	"github.com/jhoicas/almacen-api/pkg/textutil"
)

// ProductUseCase administra productos y compone su vista con el stock derivado.
type ProductUseCase struct {
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	warehouseRepo repository.WarehouseRepository
	ledger        *stockapp.LedgerService
	log           *logger.Logger
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	warehouseRepo repository.WarehouseRepository,
	ledger *stockapp.LedgerService,
	log *logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		warehouseRepo: warehouseRepo,
		ledger:        ledger,
		log:           log,
	}
}

// validateRefs verifica que la categoría (si viene) y el almacén existan.
func (uc *ProductUseCase) validateRefs(categoryID, warehouseID string) error {
	if categoryID != "" {
		category, err := uc.categoryRepo.GetByID(categoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.Validationf("ID de categoría inválido: %s", categoryID)
		}
	}
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.Validationf("ID de almacén inválido: %s", warehouseID)
	}
	return nil
}

// Create crea un producto. MinQuantity y UnitCost por defecto son cero y no
// admiten negativos.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.Validationf("el nombre del producto es requerido")
	}
	if in.WarehouseID == "" {
		return nil, domain.Validationf("el ID del almacén es requerido")
	}

	minQuantity := decimal.Zero
	if in.MinQuantity != nil {
		minQuantity = *in.MinQuantity
	}
	unitCost := decimal.Zero
	if in.UnitCost != nil {
		unitCost = *in.UnitCost
	}
	if minQuantity.IsNegative() {
		return nil, domain.Validationf("la cantidad mínima no puede ser negativa")
	}
	if unitCost.IsNegative() {
		return nil, domain.Validationf("el costo unitario no puede ser negativo")
	}
	if err := uc.validateRefs(in.CategoryID, in.WarehouseID); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		CategoryID:  in.CategoryID,
		WarehouseID: in.WarehouseID,
		MinQuantity: minQuantity,
		UnitCost:    unitCost,
		Observation: in.Observation,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}

	uc.log.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("producto creado")
	return uc.toView(product), nil
}

// GetByID devuelve la vista de un producto, o nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil || product == nil {
		return nil, err
	}
	return uc.toView(product), nil
}

// List devuelve los productos activos. Si search no es vacío, filtra por
// nombre con comparación insensible a mayúsculas y acentos.
func (uc *ProductUseCase) List(search string) (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.ListActive()
	if err != nil {
		return nil, err
	}
	if search != "" {
		filtered := products[:0]
		for _, p := range products {
			if textutil.ContainsFold(p.Name, search) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}
	return uc.toViewList(products), nil
}

// ListByWarehouse devuelve los productos activos de un almacén.
func (uc *ProductUseCase) ListByWarehouse(warehouseID string) (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.ListActiveByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	return uc.toViewList(products), nil
}

// ListByCategory devuelve los productos activos de una categoría.
func (uc *ProductUseCase) ListByCategory(categoryID string) (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.ListActiveByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return uc.toViewList(products), nil
}

// LowStock recorre los productos activos y devuelve los que están en nivel
// critical o warning. Los productos inactivos nunca entran al barrido.
func (uc *ProductUseCase) LowStock() (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.ListActive()
	if err != nil {
		return nil, err
	}
	low := make([]*entity.Product, 0)
	for _, p := range products {
		current := uc.ledger.CurrentStock(p.ID)
		if domstock.StatusFor(current, p.MinQuantity) != domstock.StatusSuccess {
			low = append(low, p)
		}
	}
	return uc.toViewList(low), nil
}

// Update actualiza un producto. Los campos enviados se combinan con los
// existentes y las referencias se revalidan igual que en la creación.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil || product == nil {
		return nil, err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.Validationf("el nombre del producto es requerido")
		}
		product.Name = *in.Name
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.WarehouseID != nil {
		if *in.WarehouseID == "" {
			return nil, domain.Validationf("el ID del almacén es requerido")
		}
		product.WarehouseID = *in.WarehouseID
	}
	if in.MinQuantity != nil {
		if in.MinQuantity.IsNegative() {
			return nil, domain.Validationf("la cantidad mínima no puede ser negativa")
		}
		product.MinQuantity = *in.MinQuantity
	}
	if in.UnitCost != nil {
		if in.UnitCost.IsNegative() {
			return nil, domain.Validationf("el costo unitario no puede ser negativo")
		}
		product.UnitCost = *in.UnitCost
	}
	if in.Observation != nil {
		product.Observation = *in.Observation
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	if err := uc.validateRefs(product.CategoryID, product.WarehouseID); err != nil {
		return nil, err
	}

	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return uc.toView(product), nil
}

// Delete desactiva un producto (borrado lógico). Sus movimientos se conservan
// pero el producto sale de listados y barridos. Devuelve domain.ErrNotFound si
// no existe.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	product.Active = false
	product.UpdatedAt = time.Now()
	return uc.productRepo.Update(product)
}

// HardDelete elimina un producto y, por cascada, todos sus movimientos.
func (uc *ProductUseCase) HardDelete(id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.HardDelete(id)
}

// toView compone la vista de un producto: atributos almacenados, stock actual
// derivado del libro, su clasificación y los nombres de categoría y almacén.
// Un fallo al resolver nombres deja el campo vacío; nunca aborta la lectura.
func (uc *ProductUseCase) toView(p *entity.Product) *dto.ProductResponse {
	current := uc.ledger.CurrentStock(p.ID)
	view := &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		CategoryID:   p.CategoryID,
		WarehouseID:  p.WarehouseID,
		MinQuantity:  p.MinQuantity,
		UnitCost:     p.UnitCost,
		Observation:  p.Observation,
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		CurrentStock: current,
		StockStatus:  string(domstock.StatusFor(current, p.MinQuantity)),
	}
	if p.CategoryID != "" {
		if category, err := uc.categoryRepo.GetByID(p.CategoryID); err == nil && category != nil {
			view.CategoryName = category.Name
		}
	}
	if warehouse, err := uc.warehouseRepo.GetByID(p.WarehouseID); err == nil && warehouse != nil {
		view.WarehouseName = warehouse.Name
	}
	return view
}

func (uc *ProductUseCase) toViewList(products []*entity.Product) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *uc.toView(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}
