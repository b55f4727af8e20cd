package entity

import (
	"encoding/json"
	"time"
)

// Tipos de notificación in-app.
const (
	NotificationStockWarning  = "stock_warning"
	NotificationStockCritical = "stock_critical"
)

// Notification representa una notificación in-app dirigida a un usuario.
// Las de stock las escribe el worker a partir de las alertas encoladas.
type Notification struct {
	ID        string
	SiteID    string
	UserID    string
	Kind      string // ver constantes Notification*
	Title     string
	Body      string
	Data      json.RawMessage // payload adicional (item_id, stock actual...)
	ReadAt    *time.Time
	CreatedAt time.Time
}
