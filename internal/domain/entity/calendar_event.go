package entity

import "time"

// Tipos de evento de calendario.
const (
	EventKindMaintenance = "maintenance"
	EventKindCleaning    = "cleaning"
	EventKindOther       = "other"
)

// CalendarEvent representa un evento del calendario de la sede
// (mantenimiento programado, jornada de limpieza, visita de proveedor...).
type CalendarEvent struct {
	ID          string
	SiteID      string
	Title       string
	Description string
	Kind        string // maintenance, cleaning, other
	StartsAt    time.Time
	EndsAt      time.Time
	RelatedType *string // opcional: entidad origen del evento
	RelatedID   *string
	CreatedBy   string // UserID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
