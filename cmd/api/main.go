package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Gmao-api/internal/application/auth"
	"github.com/jhoicas/Gmao-api/internal/application/inventory"
	"github.com/jhoicas/Gmao-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Gmao-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Gmao-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Gmao-api/internal/infrastructure/queue"
	httpRouter "github.com/jhoicas/Gmao-api/internal/interfaces/http"
	"github.com/jhoicas/Gmao-api/pkg/config"
	"github.com/jhoicas/Gmao-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
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

	siteRepo := postgres.NewSiteRepository(pool)
	zoneRepo := postgres.NewZoneRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	cleaningRepo := postgres.NewCleaningRepository(pool)
	incidentRepo := postgres.NewIncidentRepository(pool)
	maintenanceRepo := postgres.NewMaintenanceRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	movementRepo := postgres.NewItemMovementRepository(pool)
	priceRepo := postgres.NewItemPriceRepository(pool)
	calendarRepo := postgres.NewCalendarEventRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)

	txRunner := postgres.NewTxRunner(pool)
	dispatcher := queue.NewStockAlertDispatcher(rdb)

	ledgerUC := inventory.NewLedgerUseCase(
		txRunner, itemRepo, movementRepo, priceRepo,
		userRepo, maintenanceRepo, incidentRepo, dispatcher,
	)
	kardexUC := inventory.NewKardexUseCase(itemRepo, movementRepo, infrapdf.NewMarotoPDFGenerator())

	siteUC := usecase.NewSiteUseCase(siteRepo)
	zoneUC := usecase.NewZoneUseCase(zoneRepo)
	materialUC := usecase.NewMaterialUseCase(materialRepo, zoneRepo)
	cleaningUC := usecase.NewCleaningUseCase(cleaningRepo, zoneRepo)
	incidentUC := usecase.NewIncidentUseCase(incidentRepo, zoneRepo)
	maintenanceUC := usecase.NewMaintenanceUseCase(maintenanceRepo, materialRepo, zoneRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	itemUC := usecase.NewItemUseCase(itemRepo, movementRepo, priceRepo, log.Zerolog())
	calendarUC := usecase.NewCalendarUseCase(calendarRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	authUC := auth.NewAuthUseCase(userRepo, siteRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GMAO Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SiteUC:         siteUC,
		ZoneUC:         zoneUC,
		MaterialUC:     materialUC,
		CleaningUC:     cleaningUC,
		IncidentUC:     incidentUC,
		MaintenanceUC:  maintenanceUC,
		SupplierUC:     supplierUC,
		ItemUC:         itemUC,
		LedgerUC:       ledgerUC,
		KardexUC:       kardexUC,
		CalendarUC:     calendarUC,
		NotificationUC: notificationUC,
		UserUC:         userUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
