package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/Gmao-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Gmao-api/internal/infrastructure/queue"
	"github.com/jhoicas/Gmao-api/pkg/config"
	"github.com/jhoicas/Gmao-api/pkg/logger"
)

// Worker de alertas de stock: consume la cola de Redis y materializa una
// notificación por destinatario. Se ejecuta como proceso separado de la API.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().Str("env", cfg.App.Env).Msg("iniciando worker de alertas de stock")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	rdb, err := queue.NewClient(cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer rdb.Close()

	notificationRepo := postgres.NewNotificationRepository(pool)
	consumer := queue.NewStockAlertConsumer(rdb, notificationRepo, log.Zerolog())

	if err := consumer.Run(ctx); err != nil {
		log.Error().Err(err).Msg("consumidor finalizado con error")
	}

	log.Info().Msg("worker detenido")
}
