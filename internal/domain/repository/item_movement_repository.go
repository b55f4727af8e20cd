package repository

import (
	"time"

	"github.com/jhoicas/Gmao-api/internal/domain/entity"
)

// ItemMovementRepository define el puerto de persistencia para movimientos de stock.
type ItemMovementRepository interface {
	Create(movement *entity.ItemMovement) error
	GetByID(id string) (*entity.ItemMovement, error)
	Update(movement *entity.ItemMovement) error
	Delete(id string) error
	ListByItem(itemID string, from, to *time.Time, limit, offset int) ([]*entity.ItemMovement, error)
	// ListAllByItem devuelve todos los movimientos del item en orden cronológico
	// ascendente (para el kardex con saldo acumulado).
	ListAllByItem(itemID string) ([]*entity.ItemMovement, error)
	CountByItem(itemID string) (int, error)
}
