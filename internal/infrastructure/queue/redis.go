// Package queue implementa la cola de alertas de stock sobre Redis.
// El API encola (LPUSH) y el worker consume (BRPOP) para convertir las
// alertas en notificaciones in-app sin bloquear el registro de movimientos.
package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Gmao-api/pkg/config"
)

// StockAlertKey lista Redis donde se encolan las alertas de stock.
const StockAlertKey = "gmao:stock_alerts"

// NewClient crea un cliente Redis y verifica la conexión.
func NewClient(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("conectar a Redis: %w", err)
	}
	return rdb, nil
}
