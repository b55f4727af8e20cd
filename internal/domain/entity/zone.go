package entity

import "time"

// Zone representa una zona física dentro de una sede (planta, ala, sala...).
type Zone struct {
	ID          string
	SiteID      string
	Name        string
	Floor       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
