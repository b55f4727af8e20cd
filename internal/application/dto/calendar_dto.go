package dto

import "time"

// CreateCalendarEventRequest entrada para crear un evento de calendario.
type CreateCalendarEventRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description"`
	Kind        string     `json:"kind" validate:"required,oneof=maintenance cleaning other"`
	StartsAt    time.Time  `json:"starts_at" validate:"required"`
	EndsAt      time.Time  `json:"ends_at" validate:"required"`
	RelatedType *string    `json:"related_type"`
	RelatedID   *string    `json:"related_id"`
}

// UpdateCalendarEventRequest entrada para actualizar un evento.
type UpdateCalendarEventRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description"`
	Kind        *string    `json:"kind" validate:"omitempty,oneof=maintenance cleaning other"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

// CalendarEventResponse salida de un evento de calendario.
type CalendarEventResponse struct {
	ID          string    `json:"id"`
	SiteID      string    `json:"site_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Kind        string    `json:"kind"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	RelatedType *string   `json:"related_type"`
	RelatedID   *string   `json:"related_id"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CalendarEventListResponse eventos dentro de un rango de fechas.
type CalendarEventListResponse struct {
	Items []CalendarEventResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
