package dto

import "time"

// CreateIncidentRequest entrada para reportar una incidencia.
type CreateIncidentRequest struct {
	ZoneID      *string `json:"zone_id" validate:"omitempty,uuid"`
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description string  `json:"description"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// UpdateIncidentRequest entrada para actualizar una incidencia.
// La presencia de ResolvedAt alterna el estado: con fecha pasa a resolved,
// con null explícito vuelve a open.
type UpdateIncidentRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	ResolvedAt  *time.Time `json:"resolved_at"`
	ClearResolved bool     `json:"clear_resolved,omitempty"` // true: reabrir (resolved_at = null)
}

// IncidentResponse salida de una incidencia.
type IncidentResponse struct {
	ID          string     `json:"id"`
	SiteID      string     `json:"site_id"`
	ZoneID      *string    `json:"zone_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	ReportedBy  string     `json:"reported_by"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IncidentListResponse lista paginada de incidencias.
type IncidentListResponse struct {
	Items []IncidentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
