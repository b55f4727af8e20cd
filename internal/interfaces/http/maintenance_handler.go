package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gmao-api/internal/application/dto"
	"github.com/jhoicas/Gmao-api/internal/application/usecase"
)

// MaintenanceHandler maneja las peticiones HTTP para mantenimientos.
type MaintenanceHandler struct {
	uc *usecase.MaintenanceUseCase
}

// NewMaintenanceHandler construye el handler.
func NewMaintenanceHandler(uc *usecase.MaintenanceUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{uc: uc}
}

// Create godoc
// @Summary      Programar mantenimiento
// @Tags         maintenances
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaintenanceRequest  true  "Datos del mantenimiento"
// @Success      201   {object}  dto.MaintenanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/maintenances [post]
func (h *MaintenanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaintenanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" || in.Kind == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title y kind son requeridos"})
	}
	out, err := h.uc.Create(GetTenant(c), GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener mantenimiento por ID
// @Tags         maintenances
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del mantenimiento"
// @Success      200  {object}  dto.MaintenanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/maintenances/{id} [get]
func (h *MaintenanceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(GetTenant(c), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar mantenimiento
// @Tags         maintenances
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID del mantenimiento"
// @Param        body  body  dto.UpdateMaintenanceRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MaintenanceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/maintenances/{id} [put]
func (h *MaintenanceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateMaintenanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetTenant(c), id, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar mantenimientos de la sede
// @Tags         maintenances
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado (scheduled|in_progress|done)"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.MaintenanceListResponse
// @Router       /api/maintenances [get]
func (h *MaintenanceHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.uc.List(GetTenant(c), c.Query("status"), limit, offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar mantenimiento
// @Tags         maintenances
// @Security     Bearer
// @Param        id  path  string  true  "ID del mantenimiento"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/maintenances/{id} [delete]
func (h *MaintenanceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(GetTenant(c), id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
