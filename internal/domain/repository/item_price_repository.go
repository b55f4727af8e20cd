package repository

import "github.com/jhoicas/Gmao-api/internal/domain/entity"

// ItemPriceRepository define el puerto para el historial de precios (append-only).
type ItemPriceRepository interface {
	Create(price *entity.ItemPrice) error
	ListByItem(itemID string, limit, offset int) ([]*entity.ItemPrice, error)
}
