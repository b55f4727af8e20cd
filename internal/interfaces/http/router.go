package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gmao-api/internal/application/auth"
	"github.com/jhoicas/Gmao-api/internal/application/inventory"
	"github.com/jhoicas/Gmao-api/internal/application/usecase"
	"github.com/jhoicas/Gmao-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SiteUC         *usecase.SiteUseCase
	ZoneUC         *usecase.ZoneUseCase
	MaterialUC     *usecase.MaterialUseCase
	CleaningUC     *usecase.CleaningUseCase
	IncidentUC     *usecase.IncidentUseCase
	MaintenanceUC  *usecase.MaintenanceUseCase
	SupplierUC     *usecase.SupplierUseCase
	ItemUC         *usecase.ItemUseCase
	LedgerUC       *inventory.LedgerUseCase
	KardexUC       *inventory.KardexUseCase
	CalendarUC     *usecase.CalendarUseCase
	NotificationUC *usecase.NotificationUseCase
	UserUC         *usecase.UserUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)
	// Movimientos de stock: admin y almacenista
	stockRoles := RequireRole(entity.RoleAdmin, entity.RoleAlmacenista)

	// Sites (solo admin)
	sites := protected.Group("/sites", adminOnly)
	siteHandler := NewSiteHandler(deps.SiteUC)
	sites.Post("/", siteHandler.Create)
	sites.Get("/", siteHandler.List)
	sites.Get("/:id", siteHandler.GetByID)
	sites.Put("/:id", siteHandler.Update)

	// Zones
	zones := protected.Group("/zones")
	zoneHandler := NewZoneHandler(deps.ZoneUC)
	zones.Post("/", zoneHandler.Create)
	zones.Get("/", zoneHandler.List)
	zones.Get("/:id", zoneHandler.GetByID)
	zones.Put("/:id", zoneHandler.Update)
	zones.Delete("/:id", adminOnly, zoneHandler.Delete)

	// Cleanings (historial colgado de la zona)
	cleaningHandler := NewCleaningHandler(deps.CleaningUC)
	zones.Get("/:zoneId/cleanings", cleaningHandler.ListByZone)
	cleanings := protected.Group("/cleanings")
	cleanings.Post("/", cleaningHandler.Create)
	cleanings.Delete("/:id", adminOnly, cleaningHandler.Delete)

	// Materials
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", adminOnly, materialHandler.Delete)

	// Incidents
	incidents := protected.Group("/incidents")
	incidentHandler := NewIncidentHandler(deps.IncidentUC)
	incidents.Post("/", incidentHandler.Create)
	incidents.Get("/", incidentHandler.List)
	incidents.Get("/:id", incidentHandler.GetByID)
	incidents.Put("/:id", incidentHandler.Update)
	incidents.Delete("/:id", adminOnly, incidentHandler.Delete)

	// Maintenances
	maintenances := protected.Group("/maintenances")
	maintenanceHandler := NewMaintenanceHandler(deps.MaintenanceUC)
	maintenances.Post("/", maintenanceHandler.Create)
	maintenances.Get("/", maintenanceHandler.List)
	maintenances.Get("/:id", maintenanceHandler.GetByID)
	maintenances.Put("/:id", maintenanceHandler.Update)
	maintenances.Delete("/:id", adminOnly, maintenanceHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", stockRoles, supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", stockRoles, supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)

	// Items (catálogo de inventario)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	inventoryHandler := NewInventoryHandler(deps.LedgerUC, deps.KardexUC)
	items.Post("/", stockRoles, itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", stockRoles, itemHandler.Update)
	items.Delete("/:id", adminOnly, itemHandler.Delete)
	items.Get("/:id/prices", itemHandler.PriceHistory)
	items.Get("/:itemId/movements", inventoryHandler.ListMovements)
	items.Get("/:itemId/kardex", inventoryHandler.DownloadKardex)

	// Inventory (ledger de movimientos)
	invGroup := protected.Group("/inventory")
	invGroup.Post("/movements", stockRoles, inventoryHandler.RegisterMovement)
	invGroup.Put("/movements/:id", stockRoles, inventoryHandler.UpdateMovement)
	invGroup.Delete("/movements/:id", stockRoles, inventoryHandler.DeleteMovement)
	invGroup.Post("/prices", stockRoles, inventoryHandler.RegisterPriceChange)

	// Calendar
	calendar := protected.Group("/calendar")
	calendarHandler := NewCalendarHandler(deps.CalendarUC)
	calendar.Post("/events", calendarHandler.Create)
	calendar.Get("/events", calendarHandler.List)
	calendar.Put("/events/:id", calendarHandler.Update)
	calendar.Delete("/events/:id", calendarHandler.Delete)

	// Notifications (del usuario autenticado)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/:id/read", notificationHandler.MarkRead)

	// Users (gestión, solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
