package repository

import (
	"time"

	"github.com/jhoicas/Gmao-api/internal/domain/entity"
)

// CleaningRepository define el puerto de persistencia para registros de limpieza.
type CleaningRepository interface {
	Create(cleaning *entity.Cleaning) error
	GetByID(id string) (*entity.Cleaning, error)
	ListByZone(zoneID string, from, to *time.Time, limit, offset int) ([]*entity.Cleaning, error)
	Delete(id string) error
}
