package dto

import "time"

// CreateSiteRequest entrada para crear una sede.
type CreateSiteRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// UpdateSiteRequest entrada para actualizar una sede.
type UpdateSiteRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	Status  *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// SiteResponse salida de una sede.
type SiteResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SiteListResponse lista paginada de sedes.
type SiteListResponse struct {
	Items []SiteResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
