package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un artículo de inventario.
type CreateItemRequest struct {
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	Reference         string          `json:"reference"`
	Price             decimal.Decimal `json:"price"`
	Currency          string          `json:"currency" validate:"omitempty,len=3"`
	SupplierID        *string         `json:"supplier_id"`
	WarningEnabled    bool            `json:"warning_enabled"`
	WarningThreshold  int             `json:"warning_threshold" validate:"omitempty,min=0"`
	CriticalEnabled   bool            `json:"critical_enabled"`
	CriticalThreshold int             `json:"critical_threshold" validate:"omitempty,min=0"`
	AlertRecipients   []string        `json:"alert_recipients"`
}

// UpdateItemRequest entrada para actualizar un artículo. Los campos nil
// no se tocan.
type UpdateItemRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Reference         *string          `json:"reference"`
	Price             *decimal.Decimal `json:"price"`
	Currency          *string          `json:"currency" validate:"omitempty,len=3"`
	SupplierID        *string          `json:"supplier_id"`
	WarningEnabled    *bool            `json:"warning_enabled"`
	WarningThreshold  *int             `json:"warning_threshold" validate:"omitempty,min=0"`
	CriticalEnabled   *bool            `json:"critical_enabled"`
	CriticalThreshold *int             `json:"critical_threshold" validate:"omitempty,min=0"`
	AlertRecipients   *[]string        `json:"alert_recipients"`
}

// ItemResponse salida de un artículo. CurrentStock se calcula siempre
// a partir de los acumulados, nunca se persiste.
type ItemResponse struct {
	ID                string          `json:"id"`
	SiteID            string          `json:"site_id"`
	Name              string          `json:"name"`
	Reference         string          `json:"reference"`
	Price             decimal.Decimal `json:"price"`
	Currency          string          `json:"currency"`
	SupplierID        *string         `json:"supplier_id"`
	EntryTotal        int             `json:"entry_total"`
	ExitTotal         int             `json:"exit_total"`
	CurrentStock      int             `json:"current_stock"`
	WarningEnabled    bool            `json:"warning_enabled"`
	WarningThreshold  int             `json:"warning_threshold"`
	CriticalEnabled   bool            `json:"critical_enabled"`
	CriticalThreshold int             `json:"critical_threshold"`
	AlertRecipients   []string        `json:"alert_recipients"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ItemListResponse lista paginada de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
