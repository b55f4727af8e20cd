package entity

import "time"

// Tipos y estados de mantenimiento.
const (
	MaintenanceKindPreventive = "preventive"
	MaintenanceKindCorrective = "corrective"

	MaintenanceStatusScheduled  = "scheduled"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusDone       = "done"
)

// Maintenance representa una intervención de mantenimiento (preventiva o
// correctiva) sobre un material o una zona de la sede. Las salidas de
// repuestos del almacén pueden referenciar el mantenimiento que las consumió.
type Maintenance struct {
	ID           string
	SiteID       string
	MaterialID   *string // opcional: equipo intervenido
	ZoneID       *string // opcional: zona intervenida
	Title        string
	Description  string
	Kind         string // preventive, corrective
	Status       string // scheduled, in_progress, done
	ScheduledFor time.Time
	CompletedAt  *time.Time
	AssignedTo   *string // UserID del técnico
	CreatedBy    string  // UserID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
