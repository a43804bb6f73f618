package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// ExitUseCase registra y administra salidas de stock. Una salida nunca puede
// dejar el saldo derivado en negativo: la suficiencia se verifica dos veces,
// una lectura previa para rechazar rápido y una verificación definitiva dentro
// de la transacción con la fila del producto bloqueada (FOR UPDATE), de modo
// que dos salidas concurrentes no puedan sobregirar el mismo producto.
type ExitUseCase struct {
	txRunner    TxRunner
	exitRepo    repository.ExitRepository
	productRepo repository.ProductRepository
	ledgerRepo  repository.StockLedgerRepository
	log         *logger.Logger
}

// NewExitUseCase construye el caso de uso de salidas.
func NewExitUseCase(
	txRunner TxRunner,
	exitRepo repository.ExitRepository,
	productRepo repository.ProductRepository,
	ledgerRepo repository.StockLedgerRepository,
	log *logger.Logger,
) *ExitUseCase {
	return &ExitUseCase{
		txRunner:    txRunner,
		exitRepo:    exitRepo,
		productRepo: productRepo,
		ledgerRepo:  ledgerRepo,
		log:         log,
	}
}

// validate aplica las reglas de una salida en orden de corto circuito:
// presencia de campos, existencia del producto, cantidad positiva, suficiencia
// de stock y formato de fecha. La suficiencia aquí es una lectura previa sin
// bloqueo; la verificación que decide es la de la transacción de escritura.
func (uc *ExitUseCase) validate(in dto.CreateExitRequest) (*entity.Product, time.Time, error) {
	if in.ProductID == "" {
		return nil, time.Time{}, domain.Validationf("el ID del producto es requerido")
	}
	if in.Quantity == nil {
		return nil, time.Time{}, domain.Validationf("la cantidad es requerida")
	}
	if in.ExitDate == "" {
		return nil, time.Time{}, domain.Validationf("la fecha de salida es requerida")
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
	balance, err := BalanceOf(uc.ledgerRepo, in.ProductID)
	if err != nil {
		return nil, time.Time{}, err
	}
	if in.Quantity.GreaterThan(balance) {
		return nil, time.Time{}, &domain.InsufficientStockError{Current: balance, Requested: *in.Quantity}
	}
	date, err := time.Parse(dateLayout, in.ExitDate)
	if err != nil {
		return nil, time.Time{}, domain.Validationf("la fecha de salida debe tener formato YYYY-MM-DD")
	}
	return product, date, nil
}

// Create registra una salida de stock. El insert ocurre en una transacción que
// bloquea la fila del producto y recalcula el saldo antes de escribir; si otra
// salida concurrente consumió el stock entre la validación y el commit, esta
// se rechaza con InsufficientStockError y no persiste nada.
func (uc *ExitUseCase) Create(ctx context.Context, in dto.CreateExitRequest) (*dto.ExitResponse, error) {
	product, date, err := uc.validate(in)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	exit := &entity.Exit{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		ExitDate:    date,
		Quantity:    *in.Quantity,
		Observation: in.Observation,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.EntryRepository,
		exitRepo repository.ExitRepository,
		ledgerRepo repository.StockLedgerRepository,
	) error {
		locked, err := productRepo.GetForUpdate(exit.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.Validationf("ID de producto inválido: %s", exit.ProductID)
		}
		balance, err := BalanceOf(ledgerRepo, exit.ProductID)
		if err != nil {
			return err
		}
		if exit.Quantity.GreaterThan(balance) {
			return &domain.InsufficientStockError{Current: balance, Requested: exit.Quantity}
		}
		return exitRepo.Create(exit)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("exit_id", exit.ID).
		Str("product_id", exit.ProductID).
		Str("quantity", exit.Quantity.String()).
		Msg("salida de stock registrada")

	return toExitResponse(exit, product.Name), nil
}

// GetByID devuelve una salida por su ID, o nil si no existe.
func (uc *ExitUseCase) GetByID(id string) (*dto.ExitResponse, error) {
	exit, err := uc.exitRepo.GetByID(id)
	if err != nil || exit == nil {
		return nil, err
	}
	return toExitResponse(exit, uc.productName(exit.ProductID)), nil
}

// ListAll devuelve todas las salidas activas.
func (uc *ExitUseCase) ListAll() ([]*dto.ExitResponse, error) {
	exits, err := uc.exitRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return uc.toExitResponses(exits), nil
}

// ListByProduct devuelve las salidas activas de un producto.
func (uc *ExitUseCase) ListByProduct(productID string) ([]*dto.ExitResponse, error) {
	exits, err := uc.exitRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return uc.toExitResponses(exits), nil
}

// ListByWarehouse devuelve las salidas activas de los productos de un almacén.
func (uc *ExitUseCase) ListByWarehouse(warehouseID string) ([]*dto.ExitResponse, error) {
	exits, err := uc.exitRepo.ListByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	return uc.toExitResponses(exits), nil
}

// ListByDateRange devuelve las salidas activas con fecha dentro de [from, to].
func (uc *ExitUseCase) ListByDateRange(from, to time.Time) ([]*dto.ExitResponse, error) {
	exits, err := uc.exitRepo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	return uc.toExitResponses(exits), nil
}

// Update actualiza una salida. El resultado combinado se revalida completo y
// la suficiencia se verifica dentro de la transacción descontando primero la
// cantidad anterior de esta misma salida.
func (uc *ExitUseCase) Update(ctx context.Context, id string, in dto.UpdateExitRequest) (*dto.ExitResponse, error) {
	exit, err := uc.exitRepo.GetByID(id)
	if err != nil || exit == nil {
		return nil, err
	}

	merged := dto.CreateExitRequest{
		ProductID:   exit.ProductID,
		Quantity:    &exit.Quantity,
		ExitDate:    exit.ExitDate.Format(dateLayout),
		Observation: exit.Observation,
	}
	if in.ProductID != nil {
		merged.ProductID = *in.ProductID
	}
	if in.Quantity != nil {
		merged.Quantity = in.Quantity
	}
	if in.ExitDate != nil {
		merged.ExitDate = *in.ExitDate
	}
	if in.Observation != nil {
		merged.Observation = *in.Observation
	}

	prevProductID := exit.ProductID
	prevQuantity := exit.Quantity
	prevActive := exit.Active

	if merged.ProductID == "" {
		return nil, domain.Validationf("el ID del producto es requerido")
	}
	if merged.Quantity == nil {
		return nil, domain.Validationf("la cantidad es requerida")
	}
	if merged.ExitDate == "" {
		return nil, domain.Validationf("la fecha de salida es requerida")
	}
	product, err := uc.productRepo.GetByID(merged.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.Validationf("ID de producto inválido: %s", merged.ProductID)
	}
	if !merged.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.Validationf("la cantidad debe ser mayor que 0")
	}
	date, err := time.Parse(dateLayout, merged.ExitDate)
	if err != nil {
		return nil, domain.Validationf("la fecha de salida debe tener formato YYYY-MM-DD")
	}

	exit.ProductID = merged.ProductID
	exit.Quantity = *merged.Quantity
	exit.ExitDate = date
	exit.Observation = merged.Observation
	exit.UpdatedAt = time.Now()

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.EntryRepository,
		exitRepo repository.ExitRepository,
		ledgerRepo repository.StockLedgerRepository,
	) error {
		locked, err := productRepo.GetForUpdate(exit.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.Validationf("ID de producto inválido: %s", exit.ProductID)
		}
		balance, err := BalanceOf(ledgerRepo, exit.ProductID)
		if err != nil {
			return err
		}
		// El saldo leído todavía incluye la versión persistida de esta salida;
		// se suma de vuelta si sigue contando contra el mismo producto.
		if prevActive && prevProductID == exit.ProductID {
			balance = balance.Add(prevQuantity)
		}
		if exit.Quantity.GreaterThan(balance) {
			return &domain.InsufficientStockError{Current: balance, Requested: exit.Quantity}
		}
		return exitRepo.Update(exit)
	})
	if err != nil {
		return nil, err
	}
	return toExitResponse(exit, product.Name), nil
}

// Delete desactiva una salida (borrado lógico). La cantidad vuelve a contar a
// favor del saldo del producto. Devuelve domain.ErrNotFound si no existe.
func (uc *ExitUseCase) Delete(id string) error {
	exit, err := uc.exitRepo.GetByID(id)
	if err != nil {
		return err
	}
	if exit == nil {
		return domain.ErrNotFound
	}
	exit.Active = false
	exit.UpdatedAt = time.Now()
	return uc.exitRepo.Update(exit)
}

// HardDelete elimina una salida de forma permanente.
func (uc *ExitUseCase) HardDelete(id string) error {
	exit, err := uc.exitRepo.GetByID(id)
	if err != nil {
		return err
	}
	if exit == nil {
		return domain.ErrNotFound
	}
	return uc.exitRepo.HardDelete(id)
}

func (uc *ExitUseCase) toExitResponses(exits []*entity.Exit) []*dto.ExitResponse {
	names := map[string]string{}
	out := make([]*dto.ExitResponse, 0, len(exits))
	for _, e := range exits {
		name, ok := names[e.ProductID]
		if !ok {
			name = uc.productName(e.ProductID)
			names[e.ProductID] = name
		}
		out = append(out, toExitResponse(e, name))
	}
	return out
}

func (uc *ExitUseCase) productName(productID string) string {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil || product == nil {
		return ""
	}
	return product.Name
}

func toExitResponse(e *entity.Exit, productName string) *dto.ExitResponse {
	return &dto.ExitResponse{
		ID:          e.ID,
		ProductID:   e.ProductID,
		ProductName: productName,
		ExitDate:    e.ExitDate.Format(dateLayout),
		Quantity:    e.Quantity,
		Observation: e.Observation,
		Active:      e.Active,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
