package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeEntry = "entry" // entrada al almacén
	MovementTypeExit  = "exit"  // salida/consumo
)

// Tipos de entidad relacionable en salidas (consumo de repuestos).
const (
	RelatedTypeMaintenance = "maintenance"
	RelatedTypeIncident    = "incident"
)

// ItemMovement representa un movimiento histórico de stock de un item.
// Las entradas llevan metadatos de factura/proveedor; las salidas pueden
// referenciar la entidad que consumió el repuesto (mantenimiento, incidencia).
type ItemMovement struct {
	ID         string
	ItemID     string
	Type       string // entry, exit
	Quantity   int    // siempre positivo
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal // Quantity × UnitPrice

	SupplierID    *string
	InvoiceNumber *string
	InvoiceDate   *time.Time

	RelatedType *string // maintenance, incident (solo salidas)
	RelatedID   *string

	Notes        string
	MovementDate time.Time
	CreatedBy    string // UserID
	CreatedAt    time.Time
}
