package entity

import "time"

// Site representa una sede/instalación gestionada (tenant del sistema).
// Toda entidad operativa (zonas, items, incidencias...) pertenece a un Site.
type Site struct {
	ID        string
	Name      string
	Address   string
	City      string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
