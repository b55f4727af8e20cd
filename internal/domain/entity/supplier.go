package entity

import "time"

// Supplier representa un proveedor de repuestos/servicios de la sede.
type Supplier struct {
	ID          string
	SiteID      string
	Name        string
	TaxID       string
	ContactName string
	Email       string
	Phone       string
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
