package repository

import (
	"time"

	"github.com/jhoicas/Gmao-api/internal/domain/entity"
)

// CalendarEventRepository define el puerto de persistencia para eventos de calendario.
type CalendarEventRepository interface {
	Create(event *entity.CalendarEvent) error
	GetByID(id string) (*entity.CalendarEvent, error)
	ListBySite(siteID string, from, to *time.Time, limit, offset int) ([]*entity.CalendarEvent, error)
	Update(event *entity.CalendarEvent) error
	Delete(id string) error
}
