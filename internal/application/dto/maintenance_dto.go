package dto

import "time"

// CreateMaintenanceRequest entrada para programar un mantenimiento.
type CreateMaintenanceRequest struct {
	MaterialID   *string   `json:"material_id" validate:"omitempty,uuid"`
	ZoneID       *string   `json:"zone_id" validate:"omitempty,uuid"`
	Title        string    `json:"title" validate:"required,min=1,max=200"`
	Description  string    `json:"description"`
	Kind         string    `json:"kind" validate:"required,oneof=preventive corrective"`
	ScheduledFor time.Time `json:"scheduled_for" validate:"required"`
	AssignedTo   *string   `json:"assigned_to" validate:"omitempty,uuid"`
}

// UpdateMaintenanceRequest entrada para actualizar un mantenimiento.
type UpdateMaintenanceRequest struct {
	Title        *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description  *string    `json:"description"`
	Status       *string    `json:"status" validate:"omitempty,oneof=scheduled in_progress done"`
	ScheduledFor *time.Time `json:"scheduled_for"`
	CompletedAt  *time.Time `json:"completed_at"`
	AssignedTo   *string    `json:"assigned_to" validate:"omitempty,uuid"`
}

// MaintenanceResponse salida de un mantenimiento.
type MaintenanceResponse struct {
	ID           string     `json:"id"`
	SiteID       string     `json:"site_id"`
	MaterialID   *string    `json:"material_id,omitempty"`
	ZoneID       *string    `json:"zone_id,omitempty"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Kind         string     `json:"kind"`
	Status       string     `json:"status"`
	ScheduledFor time.Time  `json:"scheduled_for"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	AssignedTo   *string    `json:"assigned_to,omitempty"`
	CreatedBy    string     `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// MaintenanceListResponse lista paginada de mantenimientos.
type MaintenanceListResponse struct {
	Items []MaintenanceResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
