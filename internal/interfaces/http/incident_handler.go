package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gmao-api/internal/application/dto"
	"github.com/jhoicas/Gmao-api/internal/application/usecase"
)

// IncidentHandler maneja las peticiones HTTP para incidencias.
type IncidentHandler struct {
	uc *usecase.IncidentUseCase
}

// NewIncidentHandler construye el handler.
func NewIncidentHandler(uc *usecase.IncidentUseCase) *IncidentHandler {
	return &IncidentHandler{uc: uc}
}

// Create godoc
// @Summary      Reportar incidencia
// @Tags         incidents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIncidentRequest  true  "Datos de la incidencia"
// @Success      201   {object}  dto.IncidentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/incidents [post]
func (h *IncidentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIncidentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title es requerido"})
	}
	out, err := h.uc.Create(GetTenant(c), GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener incidencia por ID
// @Tags         incidents
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la incidencia"
// @Success      200  {object}  dto.IncidentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/incidents/{id} [get]
func (h *IncidentHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar incidencia (resolver o reabrir incluido)
// @Tags         incidents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la incidencia"
// @Param        body  body  dto.UpdateIncidentRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.IncidentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/incidents/{id} [put]
func (h *IncidentHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateIncidentRequest
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
// @Summary      Listar incidencias de la sede
// @Tags         incidents
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado (open|resolved)"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.IncidentListResponse
// @Router       /api/incidents [get]
func (h *IncidentHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.uc.List(GetTenant(c), c.Query("status"), limit, offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar incidencia
// @Tags         incidents
// @Security     Bearer
// @Param        id  path  string  true  "ID de la incidencia"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/incidents/{id} [delete]
func (h *IncidentHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(GetTenant(c), id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
