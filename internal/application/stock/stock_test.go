package stock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	appstock "github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria — un store compartido respalda todos los repos, de modo que
// el TxRunner de test entrega repos que ven las mismas escrituras.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	products map[string]*entity.Product
	entries  map[string]*entity.Entry
	exits    map[string]*entity.Exit
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: map[string]*entity.Product{},
		entries:  map[string]*entity.Entry{},
		exits:    map[string]*entity.Exit{},
	}
}

func (s *fakeStore) addProduct(name string, minQuantity string) *entity.Product {
	min, _ := decimal.NewFromString(minQuantity)
	p := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		WarehouseID: uuid.New().String(),
		MinQuantity: min,
		Active:      true,
	}
	s.products[p.ID] = p
	return p
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *fakeProductRepo) ListActive() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakeProductRepo) ListActiveByWarehouse(string) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) ListActiveByCategory(string) ([]*entity.Product, error)  { return nil, nil }
func (r *fakeProductRepo) CountActiveByWarehouse(string) (int, error)              { return 0, nil }
func (r *fakeProductRepo) CountActiveByCategory(string) (int, error)               { return 0, nil }
func (r *fakeProductRepo) Update(p *entity.Product) error                          { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) HardDelete(id string) error                              { delete(r.s.products, id); return nil }

type fakeEntryRepo struct{ s *fakeStore }

func (r *fakeEntryRepo) Create(e *entity.Entry) error { r.s.entries[e.ID] = e; return nil }
func (r *fakeEntryRepo) GetByID(id string) (*entity.Entry, error) {
	return r.s.entries[id], nil
}
func (r *fakeEntryRepo) ListAll() ([]*entity.Entry, error) {
	var out []*entity.Entry
	for _, e := range r.s.entries {
		if e.Active {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *fakeEntryRepo) ListByProduct(productID string) ([]*entity.Entry, error) {
	var out []*entity.Entry
	for _, e := range r.s.entries {
		if e.Active && e.ProductID == productID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *fakeEntryRepo) ListByWarehouse(string) ([]*entity.Entry, error)        { return nil, nil }
func (r *fakeEntryRepo) ListByDateRange(_, _ time.Time) ([]*entity.Entry, error) { return nil, nil }
func (r *fakeEntryRepo) Update(e *entity.Entry) error                           { r.s.entries[e.ID] = e; return nil }
func (r *fakeEntryRepo) HardDelete(id string) error                             { delete(r.s.entries, id); return nil }

type fakeExitRepo struct{ s *fakeStore }

func (r *fakeExitRepo) Create(e *entity.Exit) error { r.s.exits[e.ID] = e; return nil }
func (r *fakeExitRepo) GetByID(id string) (*entity.Exit, error) {
	return r.s.exits[id], nil
}
func (r *fakeExitRepo) ListAll() ([]*entity.Exit, error) {
	var out []*entity.Exit
	for _, e := range r.s.exits {
		if e.Active {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *fakeExitRepo) ListByProduct(productID string) ([]*entity.Exit, error) {
	var out []*entity.Exit
	for _, e := range r.s.exits {
		if e.Active && e.ProductID == productID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *fakeExitRepo) ListByWarehouse(string) ([]*entity.Exit, error)         { return nil, nil }
func (r *fakeExitRepo) ListByDateRange(_, _ time.Time) ([]*entity.Exit, error) { return nil, nil }
func (r *fakeExitRepo) Update(e *entity.Exit) error                            { r.s.exits[e.ID] = e; return nil }
func (r *fakeExitRepo) HardDelete(id string) error                             { delete(r.s.exits, id); return nil }

type fakeLedgerRepo struct{ s *fakeStore }

func (r *fakeLedgerRepo) SumActiveEntries(productID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, e := range r.s.entries {
		if e.Active && e.ProductID == productID {
			sum = sum.Add(e.Quantity)
		}
	}
	return sum, nil
}

func (r *fakeLedgerRepo) SumActiveExits(productID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, e := range r.s.exits {
		if e.Active && e.ProductID == productID {
			sum = sum.Add(e.Quantity)
		}
	}
	return sum, nil
}

type fakeTxRunner struct{ s *fakeStore }

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	entryRepo repository.EntryRepository,
	exitRepo repository.ExitRepository,
	ledgerRepo repository.StockLedgerRepository,
) error) error {
	return fn(&fakeProductRepo{r.s}, &fakeEntryRepo{r.s}, &fakeExitRepo{r.s}, &fakeLedgerRepo{r.s})
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func buildUseCases(s *fakeStore) (*appstock.EntryUseCase, *appstock.ExitUseCase, *appstock.LedgerService) {
	log := logger.Nop()
	ledger := appstock.NewLedgerService(&fakeLedgerRepo{s}, log)
	entryUC := appstock.NewEntryUseCase(&fakeEntryRepo{s}, &fakeProductRepo{s}, log)
	exitUC := appstock.NewExitUseCase(&fakeTxRunner{s}, &fakeExitRepo{s}, &fakeProductRepo{s}, &fakeLedgerRepo{s}, log)
	return entryUC, exitUC, ledger
}

func qty(s string) *decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return &v
}

func mustEntry(t *testing.T, uc *appstock.EntryUseCase, productID, quantity string) {
	t.Helper()
	_, err := uc.Create(dto.CreateEntryRequest{
		ProductID: productID,
		Quantity:  qty(quantity),
		EntryDate: "2025-03-01",
	})
	require.NoError(t, err, "la entrada de %s debe registrarse sin error", quantity)
}

func mustExit(t *testing.T, uc *appstock.ExitUseCase, productID, quantity string) *dto.ExitResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), dto.CreateExitRequest{
		ProductID: productID,
		Quantity:  qty(quantity),
		ExitDate:  "2025-03-02",
	})
	require.NoError(t, err, "la salida de %s debe registrarse sin error", quantity)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Libro de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_ProductoSinMovimientosReportaCero(t *testing.T) {
	s := newFakeStore()
	p := s.addProduct("Tornillos", "5")
	_, _, ledger := buildUseCases(s)

	assert.True(t, ledger.CurrentStock(p.ID).IsZero(),
		"un producto sin movimientos debe reportar stock 0")
}

func TestLedger_EscenarioEntradasMenosSalidas(t *testing.T) {
	s := newFakeStore()
	p := s.addProduct("Tornillos", "5")
	entryUC, exitUC, ledger := buildUseCases(s)

	mustEntry(t, entryUC, p.ID, "15")
	mustExit(t, exitUC, p.ID, "12")

	assert.True(t, ledger.CurrentStock(p.ID).Equal(decimal.NewFromInt(3)),
		"15 entradas - 12 salidas debe dar saldo 3")
}

func TestLedger_EntradaDesactivadaDejaDeContar(t *testing.T) {
	s := newFakeStore()
	p := s.addProduct("Tuercas", "0")
	entryUC, _, ledger := buildUseCases(s)

	out, err := entryUC.Create(dto.CreateEntryRequest{
		ProductID: p.ID, Quantity: qty("15"), EntryDate: "2025-03-01",
	})
	require.NoError(t, err)
	require.NoError(t, entryUC.Delete(out.ID))

	assert.True(t, ledger.CurrentStock(p.ID).IsZero(),
		"una entrada desactivada no debe contar en el saldo")
}

func TestLedger_SalidaDesactivadaDevuelveElSaldo(t *testing.T) {
	s := newFakeStore()
	p := s.addProduct("Arandelas", "0")
	entryUC, exitUC, ledger := buildUseCases(s)

	mustEntry(t, entryUC, p.ID, "10")
	out := mustExit(t, exitUC, p.ID, "4")
	require.True(t, ledger.CurrentStock(p.ID).Equal(decimal.NewFromInt(6)))

	require.NoError(t, exitUC.Delete(out.ID))
	assert.True(t, ledger.CurrentStock(p.ID).Equal(decimal.NewFromInt(10)),
		"desactivar una salida debe devolver su cantidad al saldo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de entradas — orden de corto circuito
// ──────────────────────────────────────────────────────────────────────────────

func TestEntradaCreate_CamposRequeridosEnOrden(t *testing.T) {
	s := newFakeStore()
	p := s.addProduct("Clavos", "0")
	entryUC, _, _ := buildUseCases(s)

	cases := []struct {
		name string
		in   dto.CreateEntryRequest
		msg  string
	}{
		{"sin producto", dto.CreateEntryRequest{Quantity: qty("1"), EntryDate: "2025-03-01"}, "el ID del producto es requerido"},
		{"sin cantidad", dto.CreateEntryRequest{ProductID: p.ID, EntryDate: "2025-03-01"}, "la cantidad es requerida"},
		{"sin fecha", dto.CreateEntryRequest{ProductID: p.ID, Quantity: qty("1")}, "la fecha de entrada es requerida"},
		{"producto inexistente", dto.CreateEntryRequest{ProductID: "no-existe", Quantity: qty("1"), EntryDate: "2025-03-01"}, "ID de producto inválido: no-existe"},
		{"cantidad cero", dto.CreateEntryRequest{ProductID: p.ID, Quantity: qty("0"), EntryDate: "2025-03-01"}, "la cantidad debe ser mayor que 0"},
		{"cantidad negativa", dto.CreateEntryRequest{ProductID: p.ID, Quantity: qty("-3"), EntryDate: "2025-03-01"}, "la cantidad debe ser mayor que 0"},
		{"fecha malformada", dto.CreateEntryRequest{ProductID: p.ID, Quantity: qty("1"), EntryDate: "01/03/2025"}, "la fecha de entrada debe tener formato YYYY-MM-DD"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := entryUC.Create(tc.in)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err), "debe ser un error de validación")
			assert.Equal(t, tc.msg, err.Error())
		})
	}
	assert.Empty(t, s.entries, "ninguna entrada inválida debe persistirse")
}

// La cantidad se valida antes que el formato de fecha: con ambos inválidos
// gana el mensaje de cantidad.
func TestEntradaCreate_CantidadAntesQueFecha(t *testing.T) {
	s := newFakeStore()
	p := s.addProduct("Clavos", "0")
	entryUC, _, _ := buildUseCases(s)

	_, err := entryUC.Create(dto.CreateEntryRequest{
		ProductID: p.ID, Quantity: qty("0"), EntryDate: "fecha-mala",
	})
	require.Error(t, err)
	assert.Equal(t, "la cantidad debe ser mayor que 0", err.Error())
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de salidas — suficiencia de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestSalidaCreate_RechazaSinSaldoYNoPersiste(t *testing.T) {
	s := newFakeStore()
	p := s.addProduct("Pernos", "0")
	_, exitUC, _ := buildUseCases(s)

	_, err := exitUC.Create(context.Background(), dto.CreateExitRequest{
		ProductID: p.ID, Quantity: qty("1"), ExitDate: "2025-03-02",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock),
		"debe rechazar con stock insuficiente")

	var ise *domain.InsufficientStockError
	require.True(t, errors.As(err, &ise))
	assert.True(t, ise.Current.IsZero())
	assert.True(t, ise.Requested.Equal(decimal.NewFromInt(1)))

	assert.Empty(t, s.exits, "una salida rechazada no debe persistirse")
}

func TestSalidaCreate_SaldoExactoEsValido(t *testing.T) {
	s := newFakeStore()
	p := s.addProduct("Pernos", "0")
	entryUC, exitUC, ledger := buildUseCases(s)

	mustEntry(t, entryUC, p.ID, "15")
	mustExit(t, exitUC, p.ID, "15")

	assert.True(t, ledger.CurrentStock(p.ID).IsZero(),
		"vaciar exactamente el saldo debe ser válido y dejar stock 0")

	_, err := exitUC.Create(context.Background(), dto.CreateExitRequest{
		ProductID: p.ID, Quantity: qty("0.01"), ExitDate: "2025-03-03",
	})
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock),
		"con saldo 0 cualquier salida adicional debe rechazarse")
}

// La suficiencia se evalúa antes que el formato de fecha: con ambos inválidos
// gana el rechazo por stock.
func TestSalidaCreate_SuficienciaAntesQueFecha(t *testing.T) {
	s := newFakeStore()
	p := s.addProduct("Pernos", "0")
	entryUC, exitUC, _ := buildUseCases(s)

	mustEntry(t, entryUC, p.ID, "5")

	_, err := exitUC.Create(context.Background(), dto.CreateExitRequest{
		ProductID: p.ID, Quantity: qty("10"), ExitDate: "fecha-mala",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
}

func TestSalidaUpdate_DescuentaSuCantidadAnterior(t *testing.T) {
	s := newFakeStore()
	p := s.addProduct("Cables", "0")
	entryUC, exitUC, _ := buildUseCases(s)

	mustEntry(t, entryUC, p.ID, "10")
	out := mustExit(t, exitUC, p.ID, "8")

	// Subir la misma salida a 10 es válido: su 8 anterior no cuenta en contra.
	_, err := exitUC.Update(context.Background(), out.ID, dto.UpdateExitRequest{Quantity: qty("10")})
	require.NoError(t, err, "ampliar la salida hasta el total de entradas debe ser válido")

	// Subir a 11 excede las entradas totales.
	_, err = exitUC.Update(context.Background(), out.ID, dto.UpdateExitRequest{Quantity: qty("11")})
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
}

func TestSalidaCreate_ConcurrenciaVerificadaEnTransaccion(t *testing.T) {
	s := newFakeStore()
	p := s.addProduct("Chapas", "0")
	entryUC, _, _ := buildUseCases(s)
	mustEntry(t, entryUC, p.ID, "10")

	// La lectura previa ve saldo 10, pero dentro de la transacción otra salida
	// ya consumió 7: la verificación definitiva debe rechazar.
	raced := &racingTxRunner{s: s, drain: "7", productID: p.ID}
	exitUC := appstock.NewExitUseCase(raced, &fakeExitRepo{s}, &fakeProductRepo{s}, &fakeLedgerRepo{s}, logger.Nop())

	_, err := exitUC.Create(context.Background(), dto.CreateExitRequest{
		ProductID: p.ID, Quantity: qty("5"), ExitDate: "2025-03-02",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock),
		"la verificación dentro de la transacción debe atrapar la carrera")

	// Solo quedó la salida del competidor.
	assert.Len(t, s.exits, 1)
}

// racingTxRunner simula una salida concurrente que se cuela justo antes de que
// la transacción de la salida bajo prueba lea el saldo.
type racingTxRunner struct {
	s         *fakeStore
	drain     string
	productID string
	done      bool
}

func (r *racingTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	entryRepo repository.EntryRepository,
	exitRepo repository.ExitRepository,
	ledgerRepo repository.StockLedgerRepository,
) error) error {
	if !r.done {
		r.done = true
		q, _ := decimal.NewFromString(r.drain)
		r.s.exits[uuid.New().String()] = &entity.Exit{
			ID:        uuid.New().String(),
			ProductID: r.productID,
			Quantity:  q,
			Active:    true,
		}
	}
	return fn(&fakeProductRepo{r.s}, &fakeEntryRepo{r.s}, &fakeExitRepo{r.s}, &fakeLedgerRepo{r.s})
}
