package entity

import "time"

// Cleaning representa un registro de limpieza realizado sobre una zona.
type Cleaning struct {
	ID          string
	SiteID      string
	ZoneID      string
	PerformedBy string // UserID
	Notes       string
	CleanedAt   time.Time
	CreatedAt   time.Time
}
