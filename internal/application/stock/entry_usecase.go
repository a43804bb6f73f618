package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// Formato de fecha de los movimientos en la API.
const dateLayout = "2006-01-02"

// EntryUseCase registra y administra entradas de stock.
type EntryUseCase struct {
	entryRepo   repository.EntryRepository
	productRepo repository.ProductRepository
	log         *logger.Logger
}

// NewEntryUseCase construye el caso de uso de entradas.
func NewEntryUseCase(entryRepo repository.EntryRepository, productRepo repository.ProductRepository, log *logger.Logger) *EntryUseCase {
	return &EntryUseCase{entryRepo: entryRepo, productRepo: productRepo, log: log}
}

// validate aplica las reglas de una entrada en orden de corto circuito:
// presencia de campos, existencia del producto, cantidad positiva y formato
// de fecha. Devuelve el producto y la fecha parseada si todo pasa.
func (uc *EntryUseCase) validate(in dto.CreateEntryRequest) (*entity.Product, time.Time, error) {
	if in.ProductID == "" {
		return nil, time.Time{}, domain.Validationf("el ID del producto es requerido")
	}
	if in.Quantity == nil {
		return nil, time.Time{}, domain.Validationf("la cantidad es requerida")
	}
	if in.EntryDate == "" {
		return nil, time.Time{}, domain.Validationf("la fecha de entrada es requerida")
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, time.Time{}, err
	}
	if product == nil {
		return nil, time.Time{}, domain.Validationf("ID de producto inválido: %s", in.ProductID)
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, time.Time{}, domain.Validationf("la cantidad debe ser mayor que 0")
	}
	date, err := time.Parse(dateLayout, in.EntryDate)
	if err != nil {
		return nil, time.Time{}, domain.Validationf("la fecha de entrada debe tener formato YYYY-MM-DD")
	}
	return product, date, nil
}

// Create registra una entrada de stock. El saldo del producto sube de forma
// derivada: no se actualiza ninguna columna de stock.
func (uc *EntryUseCase) Create(in dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	product, date, err := uc.validate(in)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry := &entity.Entry{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		EntryDate:   date,
		Quantity:    *in.Quantity,
		Observation: in.Observation,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.entryRepo.Create(entry); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("entry_id", entry.ID).
		Str("product_id", entry.ProductID).
		Str("quantity", entry.Quantity.String()).
		Msg("entrada de stock registrada")

	return toEntryResponse(entry, product.Name), nil
}

// GetByID devuelve una entrada por su ID, o nil si no existe.
func (uc *EntryUseCase) GetByID(id string) (*dto.EntryResponse, error) {
	entry, err := uc.entryRepo.GetByID(id)
	if err != nil || entry == nil {
		return nil, err
	}
	return toEntryResponse(entry, uc.productName(entry.ProductID)), nil
}

// ListAll devuelve todas las entradas activas.
func (uc *EntryUseCase) ListAll() ([]*dto.EntryResponse, error) {
	entries, err := uc.entryRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return uc.toEntryResponses(entries), nil
}

// ListByProduct devuelve las entradas activas de un producto.
func (uc *EntryUseCase) ListByProduct(productID string) ([]*dto.EntryResponse, error) {
	entries, err := uc.entryRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return uc.toEntryResponses(entries), nil
}

// ListByWarehouse devuelve las entradas activas de los productos de un almacén.
func (uc *EntryUseCase) ListByWarehouse(warehouseID string) ([]*dto.EntryResponse, error) {
	entries, err := uc.entryRepo.ListByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	return uc.toEntryResponses(entries), nil
}

// ListByDateRange devuelve las entradas activas con fecha dentro de [from, to].
func (uc *EntryUseCase) ListByDateRange(from, to time.Time) ([]*dto.EntryResponse, error) {
	entries, err := uc.entryRepo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	return uc.toEntryResponses(entries), nil
}

// Update actualiza una entrada. Los campos enviados se combinan con los
// existentes y el resultado se revalida completo, igual que en la creación.
func (uc *EntryUseCase) Update(id string, in dto.UpdateEntryRequest) (*dto.EntryResponse, error) {
	entry, err := uc.entryRepo.GetByID(id)
	if err != nil || entry == nil {
		return nil, err
	}

	merged := dto.CreateEntryRequest{
		ProductID:   entry.ProductID,
		Quantity:    &entry.Quantity,
		EntryDate:   entry.EntryDate.Format(dateLayout),
		Observation: entry.Observation,
	}
	if in.ProductID != nil {
		merged.ProductID = *in.ProductID
	}
	if in.Quantity != nil {
		merged.Quantity = in.Quantity
	}
	if in.EntryDate != nil {
		merged.EntryDate = *in.EntryDate
	}
	if in.Observation != nil {
		merged.Observation = *in.Observation
	}

	product, date, err := uc.validate(merged)
	if err != nil {
		return nil, err
	}

	entry.ProductID = merged.ProductID
	entry.Quantity = *merged.Quantity
	entry.EntryDate = date
	entry.Observation = merged.Observation
	entry.UpdatedAt = time.Now()

	if err := uc.entryRepo.Update(entry); err != nil {
		return nil, err
	}
	return toEntryResponse(entry, product.Name), nil
}

// Delete desactiva una entrada (borrado lógico). El movimiento deja de contar
// en el saldo del producto. Devuelve domain.ErrNotFound si no existe.
func (uc *EntryUseCase) Delete(id string) error {
	entry, err := uc.entryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	entry.Active = false
	entry.UpdatedAt = time.Now()
	return uc.entryRepo.Update(entry)
}

// HardDelete elimina una entrada de forma permanente.
func (uc *EntryUseCase) HardDelete(id string) error {
	entry, err := uc.entryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	return uc.entryRepo.HardDelete(id)
}

func (uc *EntryUseCase) toEntryResponses(entries []*entity.Entry) []*dto.EntryResponse {
	names := map[string]string{}
	out := make([]*dto.EntryResponse, 0, len(entries))
	for _, e := range entries {
		name, ok := names[e.ProductID]
		if !ok {
			name = uc.productName(e.ProductID)
			names[e.ProductID] = name
		}
		out = append(out, toEntryResponse(e, name))
	}
	return out
}

// productName resuelve el nombre de un producto para la respuesta; ante un
// fallo de lectura deja el campo vacío en lugar de abortar el listado.
func (uc *EntryUseCase) productName(productID string) string {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil || product == nil {
		return ""
	}
	return product.Name
}

func toEntryResponse(e *entity.Entry, productName string) *dto.EntryResponse {
	return &dto.EntryResponse{
		ID:          e.ID,
		ProductID:   e.ProductID,
		ProductName: productName,
		EntryDate:   e.EntryDate.Format(dateLayout),
		Quantity:    e.Quantity,
		Observation: e.Observation,
		Active:      e.Active,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
