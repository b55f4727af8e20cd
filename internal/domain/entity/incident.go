package entity

import "time"

// Estados y prioridades de una incidencia.
const (
	IncidentStatusOpen     = "open"
	IncidentStatusResolved = "resolved"

	IncidentPriorityLow    = "low"
	IncidentPriorityMedium = "medium"
	IncidentPriorityHigh   = "high"
)

// Incident representa una incidencia reportada en una sede (avería, daño,
// problema de seguridad...). El estado deriva de ResolvedAt: con fecha de
// resolución la incidencia pasa a resolved, sin ella vuelve a open.
type Incident struct {
	ID          string
	SiteID      string
	ZoneID      *string // opcional: zona afectada
	Title       string
	Description string
	Priority    string // low, medium, high
	Status      string // open, resolved
	ReportedBy  string // UserID
	ResolvedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
