package usecase_test

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gmao-api/internal/application/dto"
	"github.com/jhoicas/Gmao-api/internal/application/usecase"
	"github.com/jhoicas/Gmao-api/internal/domain"
	"github.com/jhoicas/Gmao-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memItemRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Item
}

func newMemItemRepo() *memItemRepo { return &memItemRepo{items: map[string]*entity.Item{}} }

func (r *memItemRepo) Create(item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copia := *item
	r.items[item.ID] = &copia
	return nil
}

func (r *memItemRepo) GetByID(id string) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copia := *it
	return &copia, nil
}

func (r *memItemRepo) GetForUpdate(id string) (*entity.Item, error) { return r.GetByID(id) }

func (r *memItemRepo) ListBySite(siteID, search string, limit, offset int) ([]*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Item
	for _, it := range r.items {
		if it.SiteID == siteID {
			copia := *it
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *memItemRepo) Update(item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copia := *item
	r.items[item.ID] = &copia
	return nil
}

func (r *memItemRepo) UpdatePrice(id string, price decimal.Decimal, supplierID *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[id].Price = price
	r.items[id].SupplierID = supplierID
	return nil
}

func (r *memItemRepo) AddToEntryTotal(id string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[id].EntryTotal += delta
	return nil
}

func (r *memItemRepo) AddToExitTotal(id string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[id].ExitTotal += delta
	return nil
}

func (r *memItemRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

type memMovementCounter struct {
	counts map[string]int
}

func (r *memMovementCounter) Create(*entity.ItemMovement) error          { return nil }
func (r *memMovementCounter) GetByID(string) (*entity.ItemMovement, error) { return nil, nil }
func (r *memMovementCounter) Update(*entity.ItemMovement) error          { return nil }
func (r *memMovementCounter) Delete(string) error                        { return nil }
func (r *memMovementCounter) ListByItem(string, *time.Time, *time.Time, int, int) ([]*entity.ItemMovement, error) {
	return nil, nil
}
func (r *memMovementCounter) ListAllByItem(string) ([]*entity.ItemMovement, error) { return nil, nil }
func (r *memMovementCounter) CountByItem(itemID string) (int, error) {
	return r.counts[itemID], nil
}

type memPriceRepo struct {
	mu     sync.Mutex
	prices []*entity.ItemPrice
}

func (r *memPriceRepo) Create(p *entity.ItemPrice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copia := *p
	r.prices = append(r.prices, &copia)
	return nil
}

func (r *memPriceRepo) ListByItem(itemID string, limit, offset int) ([]*entity.ItemPrice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ItemPrice
	for _, p := range r.prices {
		if p.ItemID == itemID {
			copia := *p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *memPriceRepo) count(itemID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, p := range r.prices {
		if p.ItemID == itemID {
			n++
		}
	}
	return n
}

func setupItemUseCase(movCounts map[string]int) (*usecase.ItemUseCase, *memItemRepo, *memPriceRepo) {
	itemRepo := newMemItemRepo()
	priceRepo := &memPriceRepo{}
	if movCounts == nil {
		movCounts = map[string]int{}
	}
	uc := usecase.NewItemUseCase(itemRepo, &memMovementCounter{counts: movCounts}, priceRepo, zerolog.Nop())
	return uc, itemRepo, priceRepo
}

var itemTenant = domain.TenantContext{SiteID: "site-1"}

func seedItem(t *testing.T, uc *usecase.ItemUseCase, price string) *dto.ItemResponse {
	t.Helper()
	resp, err := uc.Create(itemTenant, "user-1", dto.CreateItemRequest{
		Name:  "Bombilla LED E27",
		Price: decimal.RequireFromString(price),
	})
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Precio: umbral epsilon al editar el item
// ──────────────────────────────────────────────────────────────────────────────

func TestItemUpdate_CambioDePrecioMenorQueEpsilonNoGeneraSnapshot(t *testing.T) {
	uc, _, priceRepo := setupItemUseCase(nil)
	item := seedItem(t, uc, "5.00")
	base := priceRepo.count(item.ID)

	nuevo := decimal.RequireFromString("5.01")
	resp, err := uc.Update(itemTenant, "user-1", item.ID, dto.UpdateItemRequest{Price: &nuevo})
	require.NoError(t, err)
	assert.True(t, resp.Price.Equal(nuevo), "el precio vigente cambia aunque no haya snapshot")

	// Diferencia 0.01 = epsilon: no debe registrarse historial.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, base, priceRepo.count(item.ID), "un cambio dentro del epsilon no genera historial")
}

func TestItemUpdate_CambioDePrecioMayorQueEpsilonGeneraSnapshot(t *testing.T) {
	uc, _, priceRepo := setupItemUseCase(nil)
	item := seedItem(t, uc, "5.00")
	base := priceRepo.count(item.ID)

	nuevo := decimal.RequireFromString("5.02")
	resp, err := uc.Update(itemTenant, "user-1", item.ID, dto.UpdateItemRequest{Price: &nuevo})
	require.NoError(t, err)
	assert.True(t, resp.Price.Equal(nuevo))

	// El snapshot se registra en segundo plano.
	require.Eventually(t, func() bool {
		return priceRepo.count(item.ID) == base+1
	}, time.Second, 10*time.Millisecond, "un cambio mayor que el epsilon registra historial")
}

func TestItemUpdate_PrecioNegativoRechazado(t *testing.T) {
	uc, _, _ := setupItemUseCase(nil)
	item := seedItem(t, uc, "5.00")

	negativo := decimal.RequireFromString("-1")
	_, err := uc.Update(itemTenant, "user-1", item.ID, dto.UpdateItemRequest{Price: &negativo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado: se rechaza si el item tiene movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestItemDelete_ConMovimientosRechazado(t *testing.T) {
	uc, itemRepo, _ := setupItemUseCase(nil)
	item := seedItem(t, uc, "5.00")

	ucConMovs := usecase.NewItemUseCase(itemRepo, &memMovementCounter{counts: map[string]int{item.ID: 3}}, &memPriceRepo{}, zerolog.Nop())
	err := ucConMovs.Delete(itemTenant, item.ID)
	assert.ErrorIs(t, err, domain.ErrItemHasMovements)

	got, errGet := itemRepo.GetByID(item.ID)
	require.NoError(t, errGet)
	assert.NotNil(t, got, "el item sigue existiendo tras el rechazo")
}

func TestItemDelete_SinMovimientosEliminado(t *testing.T) {
	uc, itemRepo, _ := setupItemUseCase(nil)
	item := seedItem(t, uc, "5.00")

	err := uc.Delete(itemTenant, item.ID)
	require.NoError(t, err)

	got, errGet := itemRepo.GetByID(item.ID)
	require.NoError(t, errGet)
	assert.Nil(t, got)
}

func TestItemDelete_OtraSedeNotFound(t *testing.T) {
	uc, _, _ := setupItemUseCase(nil)
	item := seedItem(t, uc, "5.00")

	err := uc.Delete(domain.TenantContext{SiteID: "site-otra"}, item.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
