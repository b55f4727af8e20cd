package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gmao-api/internal/application/dto"
	"github.com/jhoicas/Gmao-api/internal/domain"
	"github.com/jhoicas/Gmao-api/internal/domain/entity"
	"github.com/jhoicas/Gmao-api/internal/domain/repository"
	"github.com/jhoicas/Gmao-api/pkg/search"
)

// priceEpsilon umbral por debajo del cual dos precios se consideran
// iguales al editar un item. El flujo de entrada de stock compara con
// igualdad exacta; la diferencia entre ambos flujos viene del sistema
// original y se conserva.
var priceEpsilon = decimal.RequireFromString("0.01")

// ItemUseCase casos de uso CRUD para artículos del almacén. Los
// movimientos de stock van por el ledger, no por aquí.
type ItemUseCase struct {
	repo      repository.ItemRepository
	movRepo   repository.ItemMovementRepository
	priceRepo repository.ItemPriceRepository
	logger    zerolog.Logger
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, movRepo repository.ItemMovementRepository, priceRepo repository.ItemPriceRepository, logger zerolog.Logger) *ItemUseCase {
	return &ItemUseCase{repo: repo, movRepo: movRepo, priceRepo: priceRepo, logger: logger}
}

// Create da de alta un artículo con acumulados a cero.
func (uc *ItemUseCase) Create(tenant domain.TenantContext, actorID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	currency := in.Currency
	if currency == "" {
		currency = "EUR"
	}
	now := time.Now()
	item := &entity.Item{
		ID:                uuid.New().String(),
		SiteID:            tenant.SiteID,
		Name:              in.Name,
		Reference:         in.Reference,
		Price:             in.Price,
		Currency:          currency,
		SupplierID:        in.SupplierID,
		WarningEnabled:    in.WarningEnabled,
		WarningThreshold:  in.WarningThreshold,
		CriticalEnabled:   in.CriticalEnabled,
		CriticalThreshold: in.CriticalThreshold,
		AlertRecipients:   in.AlertRecipients,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	if !item.Price.IsZero() {
		uc.recordPrice(item, actorID)
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo verificando la sede.
func (uc *ItemUseCase) GetByID(tenant domain.TenantContext, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.SiteID != tenant.SiteID {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// Update actualiza un artículo. Si el precio cambia más que el epsilon,
// se registra un snapshot en el historial en segundo plano.
func (uc *ItemUseCase) Update(tenant domain.TenantContext, actorID, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.SiteID != tenant.SiteID {
		return nil, domain.ErrNotFound
	}
	priceChanged := false
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		if in.Price.Sub(item.Price).Abs().GreaterThan(priceEpsilon) {
			priceChanged = true
		}
		item.Price = *in.Price
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Reference != nil {
		item.Reference = *in.Reference
	}
	if in.Currency != nil {
		item.Currency = *in.Currency
	}
	if in.SupplierID != nil {
		item.SupplierID = in.SupplierID
	}
	if in.WarningEnabled != nil {
		item.WarningEnabled = *in.WarningEnabled
	}
	if in.WarningThreshold != nil {
		item.WarningThreshold = *in.WarningThreshold
	}
	if in.CriticalEnabled != nil {
		item.CriticalEnabled = *in.CriticalEnabled
	}
	if in.CriticalThreshold != nil {
		item.CriticalThreshold = *in.CriticalThreshold
	}
	if in.AlertRecipients != nil {
		item.AlertRecipients = *in.AlertRecipients
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	if priceChanged {
		// El snapshot no bloquea la respuesta: si falla solo se pierde
		// una entrada del historial, nunca el precio vigente.
		go uc.recordPrice(item, actorID)
	}
	return toItemResponse(item), nil
}

// List lista los artículos de la sede. La búsqueda por nombre o
// referencia ignora acentos.
func (uc *ItemUseCase) List(tenant domain.TenantContext, searchTerm string, limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.repo.ListBySite(tenant.SiteID, search.Fold(searchTerm), limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un artículo. Se rechaza si tiene movimientos: el
// historial del ledger nunca queda huérfano.
func (uc *ItemUseCase) Delete(tenant domain.TenantContext, id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil || item.SiteID != tenant.SiteID {
		return domain.ErrNotFound
	}
	count, err := uc.movRepo.CountByItem(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrItemHasMovements
	}
	return uc.repo.Delete(id)
}

// PriceHistory devuelve el historial de precios de un artículo.
func (uc *ItemUseCase) PriceHistory(tenant domain.TenantContext, itemID string, limit, offset int) (*dto.PriceHistoryResponse, error) {
	item, err := uc.repo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.SiteID != tenant.SiteID {
		return nil, domain.ErrNotFound
	}
	list, err := uc.priceRepo.ListByItem(itemID, limit, offset)
	if err != nil {
		return nil, err
	}
	prices := make([]dto.ItemPriceResponse, 0, len(list))
	for _, p := range list {
		prices = append(prices, dto.ItemPriceResponse{
			ID:            p.ID,
			ItemID:        p.ItemID,
			Price:         p.Price,
			SupplierID:    p.SupplierID,
			EffectiveDate: p.EffectiveDate,
			Notes:         p.Notes,
			CreatedAt:     p.CreatedAt,
		})
	}
	return &dto.PriceHistoryResponse{
		ItemID: itemID,
		Prices: prices,
		Page:   dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *ItemUseCase) recordPrice(item *entity.Item, actorID string) {
	now := time.Now()
	price := &entity.ItemPrice{
		ID:            uuid.New().String(),
		ItemID:        item.ID,
		SupplierID:    item.SupplierID,
		Price:         item.Price,
		EffectiveDate: now,
		CreatedBy:     actorID,
		CreatedAt:     now,
	}
	if err := uc.priceRepo.Create(price); err != nil {
		uc.logger.Error().Err(err).Str("item_id", item.ID).Msg("no se pudo registrar el snapshot de precio")
	}
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:                i.ID,
		SiteID:            i.SiteID,
		Name:              i.Name,
		Reference:         i.Reference,
		Price:             i.Price,
		Currency:          i.Currency,
		SupplierID:        i.SupplierID,
		EntryTotal:        i.EntryTotal,
		ExitTotal:         i.ExitTotal,
		CurrentStock:      i.CurrentStock(),
		WarningEnabled:    i.WarningEnabled,
		WarningThreshold:  i.WarningThreshold,
		CriticalEnabled:   i.CriticalEnabled,
		CriticalThreshold: i.CriticalThreshold,
		AlertRecipients:   i.AlertRecipients,
		CreatedAt:         i.CreatedAt,
		UpdatedAt:         i.UpdatedAt,
	}
}
