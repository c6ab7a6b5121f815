package sales_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appsales "github.com/jhoicas/Ventas-api/internal/application/sales"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	domsales "github.com/jhoicas/Ventas-api/internal/domain/sales"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture en memoria del motor de ventas.
//
// memStore emula el comportamiento transaccional relevante de PostgreSQL para
// estos tests: TryDeduct es verificar-y-descontar bajo un mutex (como el UPDATE
// condicional sobre una fila), y memTxRunner toma un snapshot antes de ejecutar
// fn y lo restaura si fn falla (rollback). appendErr permite inyectar una falla
// en el anexado para verificar que la deducción se revierte.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu         sync.Mutex
	stock      map[int64]int64
	sales      []entity.Sale
	nextSaleID int64

	appendErr   error
	onTryDeduct func() // hook: corre dentro de la tx, después de descontar
}

func newMemStore() *memStore {
	return &memStore{stock: make(map[int64]int64), nextSaleID: 1}
}

type memStockRepo struct{ s *memStore }

func (r *memStockRepo) GetQuantity(_ context.Context, productID int64) (int64, error) {
	q, ok := r.s.stock[productID]
	if !ok {
		return 0, domain.ErrProductNotFound
	}
	return q, nil
}

func (r *memStockRepo) TryDeduct(_ context.Context, productID, amount int64) error {
	q, ok := r.s.stock[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	if q < amount {
		return domain.ErrInsufficientStock
	}
	r.s.stock[productID] = q - amount
	if r.s.onTryDeduct != nil {
		r.s.onTryDeduct()
	}
	return nil
}

func (r *memStockRepo) Restock(_ context.Context, productID, amount int64) error {
	r.s.stock[productID] += amount
	return nil
}

type memSaleRepo struct{ s *memStore }

func (r *memSaleRepo) Append(_ context.Context, sale *entity.Sale) error {
	if r.s.appendErr != nil {
		return r.s.appendErr
	}
	sale.ID = r.s.nextSaleID
	sale.SoldAt = time.Now()
	r.s.nextSaleID++
	r.s.sales = append(r.s.sales, *sale)
	return nil
}

func (r *memSaleRepo) GetByID(_ context.Context, id int64) (*entity.Sale, error) {
	for i := range r.s.sales {
		if r.s.sales[i].ID == id {
			s := r.s.sales[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (r *memSaleRepo) GetViewByID(context.Context, int64) (*repository.SaleView, error) {
	return nil, nil
}

func (r *memSaleRepo) Search(context.Context, repository.SaleFilter) ([]repository.SaleView, error) {
	return nil, nil
}

type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(
	_ context.Context,
	fn func(repository.SaleRepository, repository.StockRepository) error,
) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	// snapshot para el rollback
	stockBefore := make(map[int64]int64, len(t.s.stock))
	for k, v := range t.s.stock {
		stockBefore[k] = v
	}
	salesBefore := len(t.s.sales)
	idBefore := t.s.nextSaleID

	if err := fn(&memSaleRepo{s: t.s}, &memStockRepo{s: t.s}); err != nil {
		t.s.stock = stockBefore
		t.s.sales = t.s.sales[:salesBefore]
		t.s.nextSaleID = idBefore
		return err
	}
	return nil
}

// memProductRepo solo implementa GetByID con datos fijos; el resto del puerto
// no se toca desde el coordinador.
type memProductRepo struct {
	mu       sync.Mutex
	products map[int64]entity.Product
}

func (r *memProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memProductRepo) setPrice(id int64, price decimal.Decimal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.products[id]
	p.Price = price
	r.products[id] = p
}

func (r *memProductRepo) Create(context.Context, *entity.Product) error { return nil }
func (r *memProductRepo) Update(context.Context, *entity.Product) error { return nil }
func (r *memProductRepo) Delete(context.Context, int64) error           { return nil }
func (r *memProductRepo) List(context.Context, int, int) ([]repository.ProductView, error) {
	return nil, nil
}
func (r *memProductRepo) Search(context.Context, string) ([]repository.ProductView, error) {
	return nil, nil
}
func (r *memProductRepo) FilterByExpiry(context.Context, time.Time, time.Time) ([]repository.ProductView, error) {
	return nil, nil
}

type memUserRepo struct{ ids map[int64]bool }

func (r *memUserRepo) Exists(_ context.Context, id int64) (bool, error) { return r.ids[id], nil }
func (r *memUserRepo) Create(context.Context, *entity.User) error       { return nil }
func (r *memUserRepo) GetByID(context.Context, int64) (*entity.User, error) {
	return nil, nil
}
func (r *memUserRepo) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, nil
}
func (r *memUserRepo) List(context.Context) ([]*entity.User, error) { return nil, nil }

type fixture struct {
	store    *memStore
	products *memProductRepo
	uc       *appsales.RecordSaleUseCase
}

func newFixture(productID, stock int64, price decimal.Decimal) *fixture {
	store := newMemStore()
	store.stock[productID] = stock
	products := &memProductRepo{products: map[int64]entity.Product{
		productID: {ID: productID, Name: "Leche entera 1L", Price: price, Stock: stock},
	}}
	users := &memUserRepo{ids: map[int64]bool{1: true}}
	uc := appsales.NewRecordSaleUseCase(&memTxRunner{s: store}, products, users, logger.Nop())
	return &fixture{store: store, products: products, uc: uc}
}

// ── Casos básicos ─────────────────────────────────────────────────────────────

func TestRecordSale_Exito(t *testing.T) {
	f := newFixture(10, 5, decimal.NewFromFloat(3500))

	sale, err := f.uc.RecordSale(context.Background(), 1, 10, 3)
	require.NoError(t, err)
	require.NotNil(t, sale)

	assert.Equal(t, int64(1), sale.ID, "la primera venta debe recibir ID 1")
	assert.Equal(t, int64(3), sale.Quantity)
	assert.True(t, decimal.NewFromFloat(3500).Equal(sale.UnitPrice))
	assert.False(t, sale.SoldAt.IsZero(), "Append debe asignar SoldAt")
	assert.Equal(t, int64(2), f.store.stock[10], "el stock debe quedar en 5-3=2")
	assert.Len(t, f.store.sales, 1)
}

func TestRecordSale_StockInsuficiente_SinEfectos(t *testing.T) {
	f := newFixture(10, 2, decimal.NewFromFloat(3500))

	sale, err := f.uc.RecordSale(context.Background(), 1, 10, 3)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Nil(t, sale)

	assert.Equal(t, int64(2), f.store.stock[10], "un rechazo no debe tocar el stock")
	assert.Empty(t, f.store.sales, "un rechazo no debe dejar asientos")
}

func TestRecordSale_CantidadInvalida(t *testing.T) {
	f := newFixture(10, 5, decimal.NewFromFloat(3500))

	for _, qty := range []int64{0, -1, -100} {
		_, err := f.uc.RecordSale(context.Background(), 1, 10, qty)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad %d debe rechazarse", qty)
	}
	assert.Equal(t, int64(5), f.store.stock[10])
	assert.Empty(t, f.store.sales)
}

func TestRecordSale_ProductoNoExiste(t *testing.T) {
	f := newFixture(10, 5, decimal.NewFromFloat(3500))

	_, err := f.uc.RecordSale(context.Background(), 1, 99, 1)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Empty(t, f.store.sales)
}

func TestRecordSale_CompradorNoExiste(t *testing.T) {
	f := newFixture(10, 5, decimal.NewFromFloat(3500))

	_, err := f.uc.RecordSale(context.Background(), 42, 10, 1)
	assert.ErrorIs(t, err, domain.ErrBuyerNotFound)
	assert.Empty(t, f.store.sales)
}

// ── Atomicidad ────────────────────────────────────────────────────────────────

// TestRecordSale_FallaAlAnexar_RevierteDeduccion verifica el todo-o-nada: si el
// anexado de la venta falla después de descontar stock, la transacción revierte
// y el stock queda intacto. Sin este rollback el libro de stock y el log de
// ventas divergirían en silencio.
func TestRecordSale_FallaAlAnexar_RevierteDeduccion(t *testing.T) {
	f := newFixture(10, 5, decimal.NewFromFloat(3500))
	f.store.appendErr = errors.New("disco lleno")

	sale, err := f.uc.RecordSale(context.Background(), 1, 10, 3)
	require.Error(t, err)
	assert.Nil(t, sale)

	assert.Equal(t, int64(5), f.store.stock[10], "la deducción debe revertirse junto con el anexado")
	assert.Empty(t, f.store.sales)
}

// TestRecordSale_PrecioCapturadoAntesDeLaTx verifica que el asiento usa el
// precio leído en la validación inicial aunque el precio del producto cambie
// durante la transacción (simulado con el hook onTryDeduct).
func TestRecordSale_PrecioCapturadoAntesDeLaTx(t *testing.T) {
	original := decimal.NewFromFloat(3500)
	f := newFixture(10, 5, original)
	f.store.onTryDeduct = func() {
		f.products.setPrice(10, decimal.NewFromFloat(9999))
	}

	sale, err := f.uc.RecordSale(context.Background(), 1, 10, 2)
	require.NoError(t, err)
	assert.True(t, original.Equal(sale.UnitPrice),
		"el precio del asiento debe ser el capturado, no el vigente al confirmar")
}

// ── Concurrencia ──────────────────────────────────────────────────────────────

// TestRecordSale_Concurrente_UltimaUnidad: dos ventas simultáneas de la última
// unidad; exactamente una debe ganar y la otra recibir ErrInsufficientStock.
func TestRecordSale_Concurrente_UltimaUnidad(t *testing.T) {
	f := newFixture(10, 1, decimal.NewFromFloat(3500))

	var success, insufficient atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.RecordSale(context.Background(), 1, 10, 1)
			switch {
			case err == nil:
				success.Add(1)
			case errors.Is(err, domain.ErrInsufficientStock):
				insufficient.Add(1)
			default:
				t.Errorf("error inesperado: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), success.Load(), "exactamente una venta debe ganar la última unidad")
	assert.Equal(t, int32(1), insufficient.Load())
	assert.Equal(t, int64(0), f.store.stock[10])
	assert.Len(t, f.store.sales, 1)
}

// TestRecordSale_Concurrente_Conservacion: 50 compradores compiten por 20
// unidades. Deben confirmarse exactamente 20 ventas, el stock termina en 0 y
// stock_inicial = stock_final + total_vendido (conservación de unidades).
// Además los IDs de venta asignados deben ser únicos y crecientes.
func TestRecordSale_Concurrente_Conservacion(t *testing.T) {
	const initialStock = 20
	const buyers = 50

	f := newFixture(10, initialStock, decimal.NewFromFloat(3500))

	var success atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.uc.RecordSale(context.Background(), 1, 10, 1); err == nil {
				success.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int32(initialStock), success.Load(),
		"deben confirmarse tantas ventas como unidades había")
	assert.Equal(t, int64(0), f.store.stock[10])
	require.Len(t, f.store.sales, initialStock)

	var sold int64
	seen := make(map[int64]bool)
	prev := int64(0)
	for _, s := range f.store.sales {
		sold += s.Quantity
		assert.False(t, seen[s.ID], "ID de venta duplicado: %d", s.ID)
		seen[s.ID] = true
		assert.Greater(t, s.ID, prev, "los IDs deben crecer en orden de confirmación")
		prev = s.ID
	}
	assert.True(t, domsales.ConservationHolds(initialStock, 0, f.store.stock[10], sold),
		"stock_inicial + repuesto = stock_actual + vendido")
}
