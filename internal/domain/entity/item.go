package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un repuesto/consumible del almacén de la sede.
// EntryTotal y ExitTotal son acumulados mantenidos por el ledger de
// movimientos; el stock actual siempre se calcula, nunca se persiste.
type Item struct {
	ID         string
	SiteID     string
	Name       string
	Reference  string // referencia externa opcional (código de fabricante)
	Price      decimal.Decimal
	Currency   string
	SupplierID *string

	EntryTotal int
	ExitTotal  int

	WarningEnabled    bool
	WarningThreshold  int
	CriticalEnabled   bool
	CriticalThreshold int
	AlertRecipients   []string // UserIDs a notificar cuando el stock cae bajo umbral

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CurrentStock devuelve el stock actual derivado de los acumulados.
func (i *Item) CurrentStock() int {
	return i.EntryTotal - i.ExitTotal
}
