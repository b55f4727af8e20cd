package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Gmao-api/internal/application/inventory"
	"github.com/jhoicas/Gmao-api/internal/domain/entity"
	invdomain "github.com/jhoicas/Gmao-api/internal/domain/inventory"
	"github.com/jhoicas/Gmao-api/internal/domain/repository"
)

// StockAlertConsumer consume alertas de la lista Redis (BRPOP) y las
// convierte en notificaciones in-app, una por destinatario.
type StockAlertConsumer struct {
	rdb       *redis.Client
	notifRepo repository.NotificationRepository
	logger    zerolog.Logger
}

// NewStockAlertConsumer construye el consumidor.
func NewStockAlertConsumer(rdb *redis.Client, notifRepo repository.NotificationRepository, logger zerolog.Logger) *StockAlertConsumer {
	return &StockAlertConsumer{rdb: rdb, notifRepo: notifRepo, logger: logger}
}

// Run bloquea consumiendo alertas hasta que el contexto se cancele.
func (c *StockAlertConsumer) Run(ctx context.Context) error {
	c.logger.Info().Str("queue", StockAlertKey).Msg("consumidor de alertas de stock arrancado")
	for {
		res, err := c.rdb.BRPop(ctx, 5*time.Second, StockAlertKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue // timeout sin elementos
			}
			if ctx.Err() != nil {
				c.logger.Info().Msg("consumidor de alertas detenido")
				return nil
			}
			c.logger.Error().Err(err).Msg("error leyendo la cola de alertas")
			time.Sleep(time.Second)
			continue
		}
		// res[0] es la clave, res[1] el payload
		if len(res) < 2 {
			continue
		}
		if err := c.handle(res[1]); err != nil {
			c.logger.Error().Err(err).Msg("alerta de stock descartada")
		}
	}
}

func (c *StockAlertConsumer) handle(payload string) error {
	var alert inventory.StockAlert
	if err := json.Unmarshal([]byte(payload), &alert); err != nil {
		return fmt.Errorf("deserializar alerta: %w", err)
	}

	kind := entity.NotificationStockWarning
	title := fmt.Sprintf("Stock bajo: %s", alert.ItemName)
	if alert.Severity == invdomain.AlertCritical {
		kind = entity.NotificationStockCritical
		title = fmt.Sprintf("Stock crítico: %s", alert.ItemName)
	}
	body := fmt.Sprintf("El stock de %q es %d (umbral %d).", alert.ItemName, alert.CurrentStock, alert.Threshold)

	data, err := json.Marshal(map[string]any{
		"item_id":       alert.ItemID,
		"current_stock": alert.CurrentStock,
		"threshold":     alert.Threshold,
		"severity":      alert.Severity,
	})
	if err != nil {
		return fmt.Errorf("serializar data: %w", err)
	}

	for _, userID := range alert.Recipients {
		n := &entity.Notification{
			ID:        uuid.New().String(),
			SiteID:    alert.SiteID,
			UserID:    userID,
			Kind:      kind,
			Title:     title,
			Body:      body,
			Data:      data,
			CreatedAt: time.Now(),
		}
		if err := c.notifRepo.Create(n); err != nil {
			c.logger.Error().Err(err).Str("user_id", userID).Msg("no se pudo crear la notificación")
		}
	}
	return nil
}
