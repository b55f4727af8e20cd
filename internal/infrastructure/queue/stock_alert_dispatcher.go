package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Gmao-api/internal/application/inventory"
)

var _ inventory.NotificationDispatcher = (*StockAlertDispatcher)(nil)

// StockAlertDispatcher encola alertas de stock en una lista Redis.
type StockAlertDispatcher struct {
	rdb *redis.Client
}

// NewStockAlertDispatcher construye el dispatcher sobre el cliente Redis.
func NewStockAlertDispatcher(rdb *redis.Client) *StockAlertDispatcher {
	return &StockAlertDispatcher{rdb: rdb}
}

// Enqueue serializa la alerta a JSON y la empuja a la lista (LPUSH).
func (d *StockAlertDispatcher) Enqueue(ctx context.Context, alert inventory.StockAlert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("serializar alerta: %w", err)
	}
	if err := d.rdb.LPush(ctx, StockAlertKey, payload).Err(); err != nil {
		return fmt.Errorf("encolar alerta: %w", err)
	}
	return nil
}
