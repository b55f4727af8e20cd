package dto

import "time"

// CreateZoneRequest entrada para crear una zona.
type CreateZoneRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Floor       string `json:"floor"`
	Description string `json:"description"`
}

// UpdateZoneRequest entrada para actualizar una zona.
type UpdateZoneRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Floor       *string `json:"floor"`
	Description *string `json:"description"`
}

// ZoneResponse salida de una zona.
type ZoneResponse struct {
	ID          string    `json:"id"`
	SiteID      string    `json:"site_id"`
	Name        string    `json:"name"`
	Floor       string    `json:"floor"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ZoneListResponse lista paginada de zonas.
type ZoneListResponse struct {
	Items []ZoneResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
