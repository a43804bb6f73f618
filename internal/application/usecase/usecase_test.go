package usecase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	appstock "github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[string]*entity.Product{}}
}

func (r *memProductRepo) Create(p *entity.Product) error              { r.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error)  { return r.products[id], nil }
func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *memProductRepo) ListActive() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *memProductRepo) ListActiveByWarehouse(warehouseID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.Active && p.WarehouseID == warehouseID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *memProductRepo) ListActiveByCategory(categoryID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.Active && p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *memProductRepo) CountActiveByWarehouse(warehouseID string) (int, error) {
	list, _ := r.ListActiveByWarehouse(warehouseID)
	return len(list), nil
}
func (r *memProductRepo) CountActiveByCategory(categoryID string) (int, error) {
	list, _ := r.ListActiveByCategory(categoryID)
	return len(list), nil
}
func (r *memProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) HardDelete(id string) error     { delete(r.products, id); return nil }

type memCategoryRepo struct {
	categories map[string]*entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: map[string]*entity.Category{}}
}

func (r *memCategoryRepo) Create(c *entity.Category) error             { r.categories[c.ID] = c; return nil }
func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) { return r.categories[id], nil }
func (r *memCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memCategoryRepo) ListActive() ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if c.Active {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *memCategoryRepo) Update(c *entity.Category) error { r.categories[c.ID] = c; return nil }
func (r *memCategoryRepo) HardDelete(id string) error      { delete(r.categories, id); return nil }

type memWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newMemWarehouseRepo() *memWarehouseRepo {
	return &memWarehouseRepo{warehouses: map[string]*entity.Warehouse{}}
}

func (r *memWarehouseRepo) Create(w *entity.Warehouse) error { r.warehouses[w.ID] = w; return nil }
func (r *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}
func (r *memWarehouseRepo) GetByName(name string) (*entity.Warehouse, error) {
	for _, w := range r.warehouses {
		if w.Name == name {
			return w, nil
		}
	}
	return nil, nil
}
func (r *memWarehouseRepo) ListActive() ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.warehouses {
		if w.Active {
			out = append(out, w)
		}
	}
	return out, nil
}
func (r *memWarehouseRepo) Update(w *entity.Warehouse) error { r.warehouses[w.ID] = w; return nil }
func (r *memWarehouseRepo) HardDelete(id string) error       { delete(r.warehouses, id); return nil }

// stubLedgerRepo reporta sumas fijas por producto (entradas; salidas siempre 0).
type stubLedgerRepo struct {
	sums map[string]decimal.Decimal
}

func (r *stubLedgerRepo) SumActiveEntries(productID string) (decimal.Decimal, error) {
	if v, ok := r.sums[productID]; ok {
		return v, nil
	}
	return decimal.Zero, nil
}

func (r *stubLedgerRepo) SumActiveExits(string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	products   *memProductRepo
	categories *memCategoryRepo
	warehouses *memWarehouseRepo
	ledger     *stubLedgerRepo

	productUC   *usecase.ProductUseCase
	categoryUC  *usecase.CategoryUseCase
	warehouseUC *usecase.WarehouseUseCase
}

func newFixture() *fixture {
	f := &fixture{
		products:   newMemProductRepo(),
		categories: newMemCategoryRepo(),
		warehouses: newMemWarehouseRepo(),
		ledger:     &stubLedgerRepo{sums: map[string]decimal.Decimal{}},
	}
	log := logger.Nop()
	ledgerSvc := appstock.NewLedgerService(f.ledger, log)
	f.productUC = usecase.NewProductUseCase(f.products, f.categories, f.warehouses, ledgerSvc, log)
	f.categoryUC = usecase.NewCategoryUseCase(f.categories, f.products, log)
	f.warehouseUC = usecase.NewWarehouseUseCase(f.warehouses, f.products, log)
	return f
}

func (f *fixture) addWarehouse(name string) *entity.Warehouse {
	w := &entity.Warehouse{ID: uuid.New().String(), Name: name, Active: true}
	f.warehouses.warehouses[w.ID] = w
	return w
}

func (f *fixture) addCategory(name string) *entity.Category {
	c := &entity.Category{ID: uuid.New().String(), Name: name, Active: true}
	f.categories.categories[c.ID] = c
	return c
}

func (f *fixture) addProduct(name string, warehouseID, categoryID string, minQuantity, currentStock string) *entity.Product {
	min, _ := decimal.NewFromString(minQuantity)
	p := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		WarehouseID: warehouseID,
		CategoryID:  categoryID,
		MinQuantity: min,
		Active:      true,
	}
	f.products.products[p.ID] = p
	stockVal, _ := decimal.NewFromString(currentStock)
	f.ledger.sums[p.ID] = stockVal
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardas de borrado — almacén y categoría con productos activos
// ──────────────────────────────────────────────────────────────────────────────

func TestWarehouseDelete_ConProductosActivosRechaza(t *testing.T) {
	f := newFixture()
	w := f.addWarehouse("Central")
	f.addProduct("Tornillos", w.ID, "", "5", "10")

	err := f.warehouseUC.Delete(w.ID)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, "no se puede eliminar el almacén 'Central' porque tiene productos asociados", err.Error(),
		"el mensaje debe nombrar el almacén")
	assert.True(t, f.warehouses.warehouses[w.ID].Active,
		"el almacén debe seguir activo tras el rechazo")

	err = f.warehouseUC.HardDelete(w.ID)
	require.Error(t, err, "la guarda aplica también al borrado permanente")
	assert.NotNil(t, f.warehouses.warehouses[w.ID])
}

func TestWarehouseDelete_ProductosInactivosNoBloquean(t *testing.T) {
	f := newFixture()
	w := f.addWarehouse("Norte")
	p := f.addProduct("Tuercas", w.ID, "", "0", "0")
	p.Active = false

	require.NoError(t, f.warehouseUC.Delete(w.ID),
		"un producto inactivo no debe bloquear el borrado del almacén")
	assert.False(t, f.warehouses.warehouses[w.ID].Active)
}

func TestCategoryDelete_ConProductosActivosRechaza(t *testing.T) {
	f := newFixture()
	w := f.addWarehouse("Central")
	c := f.addCategory("Ferretería")
	f.addProduct("Clavos", w.ID, c.ID, "0", "0")

	err := f.categoryUC.Delete(c.ID)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, "no se puede eliminar la categoría 'Ferretería' porque tiene productos asociados", err.Error())

	err = f.categoryUC.HardDelete(c.ID)
	require.Error(t, err)
	assert.NotNil(t, f.categories.categories[c.ID])
}

func TestCategoryDelete_SinProductosDesactiva(t *testing.T) {
	f := newFixture()
	c := f.addCategory("Vacía")

	require.NoError(t, f.categoryUC.Delete(c.ID))
	assert.False(t, f.categories.categories[c.ID].Active)
}

// ──────────────────────────────────────────────────────────────────────────────
// Vista de producto — stock derivado, estado y nombres
// ──────────────────────────────────────────────────────────────────────────────

func TestProductGetByID_ComponeVistaConEstado(t *testing.T) {
	f := newFixture()
	w := f.addWarehouse("Central")
	c := f.addCategory("Ferretería")
	p := f.addProduct("Tornillos", w.ID, c.ID, "5", "3")

	view, err := f.productUC.GetByID(p.ID)
	require.NoError(t, err)
	require.NotNil(t, view)

	assert.True(t, view.CurrentStock.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, "warning", view.StockStatus, "stock 3 con mínimo 5 debe ser warning")
	assert.Equal(t, "Central", view.WarehouseName)
	assert.Equal(t, "Ferretería", view.CategoryName)
}

func TestProductCreate_RechazaNegativosYReferenciasInvalidas(t *testing.T) {
	f := newFixture()
	w := f.addWarehouse("Central")

	neg := decimal.NewFromInt(-1)
	_, err := f.productUC.Create(dto.CreateProductRequest{
		Name: "X", WarehouseID: w.ID, MinQuantity: &neg,
	})
	require.Error(t, err)
	assert.Equal(t, "la cantidad mínima no puede ser negativa", err.Error())

	_, err = f.productUC.Create(dto.CreateProductRequest{
		Name: "X", WarehouseID: "no-existe",
	})
	require.Error(t, err)
	assert.Equal(t, "ID de almacén inválido: no-existe", err.Error())

	_, err = f.productUC.Create(dto.CreateProductRequest{
		Name: "X", WarehouseID: w.ID, CategoryID: "no-existe",
	})
	require.Error(t, err)
	assert.Equal(t, "ID de categoría inválido: no-existe", err.Error())
}

// ──────────────────────────────────────────────────────────────────────────────
// Barrido de stock bajo
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStock_DevuelveSoloCriticalYWarning(t *testing.T) {
	f := newFixture()
	w := f.addWarehouse("Central")

	critico := f.addProduct("Sin stock", w.ID, "", "5", "0")
	alerta := f.addProduct("Justo en el mínimo", w.ID, "", "5", "5")
	f.addProduct("Sobrado", w.ID, "", "5", "50")

	out, err := f.productUC.LowStock()
	require.NoError(t, err)
	require.Equal(t, 2, out.Total)

	got := map[string]string{}
	for _, item := range out.Items {
		got[item.ID] = item.StockStatus
	}
	assert.Equal(t, "critical", got[critico.ID])
	assert.Equal(t, "warning", got[alerta.ID])
}

func TestLowStock_ExcluyeProductosInactivos(t *testing.T) {
	f := newFixture()
	w := f.addWarehouse("Central")

	p := f.addProduct("Descontinuado", w.ID, "", "5", "0")
	p.Active = false

	out, err := f.productUC.LowStock()
	require.NoError(t, err)
	assert.Zero(t, out.Total, "los productos inactivos nunca entran al barrido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtro de búsqueda insensible a acentos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductList_BusquedaInsensibleAAcentos(t *testing.T) {
	f := newFixture()
	w := f.addWarehouse("Central")
	f.addProduct("Lámpara de techo", w.ID, "", "0", "1")
	f.addProduct("Tornillos", w.ID, "", "0", "1")

	out, err := f.productUC.List("lampara")
	require.NoError(t, err)
	require.Equal(t, 1, out.Total, "la búsqueda debe ignorar acentos y mayúsculas")
	assert.Equal(t, "Lámpara de techo", out.Items[0].Name)
}
