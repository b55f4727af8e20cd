package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gmao-api/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item.
// Los acumulados entry_total/exit_total se ajustan SIEMPRE con incrementos
// relativos atómicos (AddToEntryTotal/AddToExitTotal), nunca reescribiendo un
// valor leído, para que escritores concurrentes serialicen sus ajustes.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	// GetForUpdate bloquea la fila del item para update (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Item, error)
	ListBySite(siteID, search string, limit, offset int) ([]*entity.Item, error)
	Update(item *entity.Item) error
	// UpdatePrice sobrescribe precio y proveedor actuales del item.
	UpdatePrice(id string, price decimal.Decimal, supplierID *string) error
	// AddToEntryTotal aplica entry_total = entry_total + delta (delta puede ser negativo).
	AddToEntryTotal(id string, delta int) error
	// AddToExitTotal aplica exit_total = exit_total + delta (delta puede ser negativo).
	AddToExitTotal(id string, delta int) error
	Delete(id string) error
}
