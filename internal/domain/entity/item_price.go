package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemPrice es un registro histórico del precio de un item en un momento dado.
// Solo se crean registros, nunca se actualizan ni eliminan en flujos normales.
type ItemPrice struct {
	ID            string
	ItemID        string
	SupplierID    *string
	Price         decimal.Decimal
	EffectiveDate time.Time
	Notes         string
	CreatedBy     string // UserID
	CreatedAt     time.Time
}
