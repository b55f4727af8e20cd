package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest entrada para registrar un movimiento de stock.
type RegisterMovementRequest struct {
	ItemID        string           `json:"item_id" validate:"required"`
	Type          string           `json:"type" validate:"required,oneof=entry exit"`
	Quantity      int              `json:"quantity" validate:"required,min=1"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	SupplierID    *string          `json:"supplier_id"`
	InvoiceNumber *string          `json:"invoice_number"`
	InvoiceDate   *time.Time       `json:"invoice_date"`
	RelatedType   *string          `json:"related_type" validate:"omitempty,oneof=maintenance incident"`
	RelatedID     *string          `json:"related_id"`
	Notes         string           `json:"notes"`
	MovementDate  *time.Time       `json:"movement_date"`
}

// UpdateMovementRequest entrada para corregir un movimiento ya
// registrado. Los campos nil no se tocan.
type UpdateMovementRequest struct {
	Quantity      *int             `json:"quantity" validate:"omitempty,min=1"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	SupplierID    *string          `json:"supplier_id"`
	InvoiceNumber *string          `json:"invoice_number"`
	InvoiceDate   *time.Time       `json:"invoice_date"`
	Notes         *string          `json:"notes"`
	MovementDate  *time.Time       `json:"movement_date"`
}

// MovementItemSummary resumen del artículo asociado a un movimiento.
type MovementItemSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Reference    string `json:"reference"`
	CurrentStock int    `json:"current_stock"`
}

// MovementUserSummary resumen del usuario que registró el movimiento.
type MovementUserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MovementResponse salida de un movimiento de stock.
type MovementResponse struct {
	ID            string               `json:"id"`
	ItemID        string               `json:"item_id"`
	Type          string               `json:"type"`
	Quantity      int                  `json:"quantity"`
	UnitPrice     decimal.Decimal      `json:"unit_price"`
	TotalPrice    decimal.Decimal      `json:"total_price"`
	SupplierID    *string              `json:"supplier_id"`
	InvoiceNumber *string              `json:"invoice_number"`
	InvoiceDate   *time.Time           `json:"invoice_date"`
	RelatedType   *string              `json:"related_type"`
	RelatedID     *string              `json:"related_id"`
	Notes         string               `json:"notes"`
	MovementDate  time.Time            `json:"movement_date"`
	CreatedAt     time.Time            `json:"created_at"`
	Item          *MovementItemSummary `json:"item,omitempty"`
	CreatedBy     *MovementUserSummary `json:"created_by,omitempty"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// RegisterPriceChangeRequest entrada para registrar un cambio de precio
// sin movimiento de stock asociado.
type RegisterPriceChangeRequest struct {
	ItemID        string          `json:"item_id" validate:"required"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	SupplierID    *string         `json:"supplier_id"`
	EffectiveDate *time.Time      `json:"effective_date"`
	Notes         string          `json:"notes"`
}

// ItemPriceResponse un precio histórico de un artículo.
type ItemPriceResponse struct {
	ID            string          `json:"id"`
	ItemID        string          `json:"item_id"`
	Price         decimal.Decimal `json:"price"`
	SupplierID    *string         `json:"supplier_id"`
	EffectiveDate time.Time       `json:"effective_date"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
}

// PriceHistoryResponse historial de precios de un artículo.
type PriceHistoryResponse struct {
	ItemID string              `json:"item_id"`
	Prices []ItemPriceResponse `json:"prices"`
	Page   PageResponse        `json:"page"`
}
