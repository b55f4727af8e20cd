package dto

import "time"

// CreateCleaningRequest entrada para registrar una limpieza de zona.
type CreateCleaningRequest struct {
	ZoneID    string     `json:"zone_id" validate:"required,uuid"`
	Notes     string     `json:"notes"`
	CleanedAt *time.Time `json:"cleaned_at"` // default: ahora
}

// CleaningResponse salida de un registro de limpieza.
type CleaningResponse struct {
	ID          string    `json:"id"`
	SiteID      string    `json:"site_id"`
	ZoneID      string    `json:"zone_id"`
	PerformedBy string    `json:"performed_by"`
	Notes       string    `json:"notes"`
	CleanedAt   time.Time `json:"cleaned_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// CleaningListResponse lista paginada de limpiezas.
type CleaningListResponse struct {
	Items []CleaningResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
