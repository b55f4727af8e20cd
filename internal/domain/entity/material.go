package entity

import "time"

// Estados de un material instalado.
const (
	MaterialStatusOperational    = "operational"
	MaterialStatusUnderRepair    = "under_repair"
	MaterialStatusDecommissioned = "decommissioned"
)

// Material representa un equipo fijo instalado en una zona (caldera, ascensor,
// extractor...). Es el objeto típico de los mantenimientos.
type Material struct {
	ID           string
	SiteID       string
	ZoneID       string
	Name         string
	SerialNumber string
	Brand        string
	Status       string // ver constantes MaterialStatus*
	InstalledAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
