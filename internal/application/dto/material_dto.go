package dto

import "time"

// CreateMaterialRequest entrada para dar de alta un material en una zona.
type CreateMaterialRequest struct {
	ZoneID       string     `json:"zone_id" validate:"required,uuid"`
	Name         string     `json:"name" validate:"required,min=1,max=200"`
	SerialNumber string     `json:"serial_number"`
	Brand        string     `json:"brand"`
	InstalledAt  *time.Time `json:"installed_at"`
}

// UpdateMaterialRequest entrada para actualizar un material.
type UpdateMaterialRequest struct {
	Name         *string    `json:"name" validate:"omitempty,min=1,max=200"`
	SerialNumber *string    `json:"serial_number"`
	Brand        *string    `json:"brand"`
	Status       *string    `json:"status" validate:"omitempty,oneof=operational under_repair decommissioned"`
	InstalledAt  *time.Time `json:"installed_at"`
}

// MaterialResponse salida de un material.
type MaterialResponse struct {
	ID           string     `json:"id"`
	SiteID       string     `json:"site_id"`
	ZoneID       string     `json:"zone_id"`
	Name         string     `json:"name"`
	SerialNumber string     `json:"serial_number"`
	Brand        string     `json:"brand"`
	Status       string     `json:"status"`
	InstalledAt  *time.Time `json:"installed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// MaterialListResponse lista paginada de materiales.
type MaterialListResponse struct {
	Items []MaterialResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
