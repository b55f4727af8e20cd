package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gmao-api/internal/application/dto"
	"github.com/jhoicas/Gmao-api/internal/application/usecase"
)

// CalendarHandler maneja el calendario de intervenciones de la sede.
type CalendarHandler struct {
	uc *usecase.CalendarUseCase
}

// NewCalendarHandler construye el handler.
func NewCalendarHandler(uc *usecase.CalendarUseCase) *CalendarHandler {
	return &CalendarHandler{uc: uc}
}

// Create godoc
// @Summary      Crear evento de calendario
// @Tags         calendar
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCalendarEventRequest  true  "Datos del evento"
// @Success      201   {object}  dto.CalendarEventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/calendar/events [post]
func (h *CalendarHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCalendarEventRequest
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

// Update godoc
// @Summary      Actualizar evento de calendario
// @Tags         calendar
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID del evento"
// @Param        body  body  dto.UpdateCalendarEventRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CalendarEventResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/calendar/events/{id} [put]
func (h *CalendarHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateCalendarEventRequest
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
// @Summary      Eventos de la sede dentro de un rango de fechas
// @Tags         calendar
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "Desde (RFC3339)"
// @Param        to      query  string  false  "Hasta (RFC3339)"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.CalendarEventListResponse
// @Router       /api/calendar/events [get]
func (h *CalendarHandler) List(c *fiber.Ctx) error {
	from, err := queryTime(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser RFC3339"})
	}
	to, err := queryTime(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser RFC3339"})
	}
	limit, offset := pagination(c)
	out, err := h.uc.List(GetTenant(c), from, to, limit, offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar evento de calendario
// @Tags         calendar
// @Security     Bearer
// @Param        id  path  string  true  "ID del evento"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/calendar/events/{id} [delete]
func (h *CalendarHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(GetTenant(c), id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
