package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gmao-api/internal/application/dto"
	"github.com/jhoicas/Gmao-api/internal/application/usecase"
)

// CleaningHandler maneja el registro de limpiezas de zonas.
type CleaningHandler struct {
	uc *usecase.CleaningUseCase
}

// NewCleaningHandler construye el handler.
func NewCleaningHandler(uc *usecase.CleaningUseCase) *CleaningHandler {
	return &CleaningHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar limpieza de una zona
// @Tags         cleanings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCleaningRequest  true  "zone_id, notes, cleaned_at"
// @Success      201   {object}  dto.CleaningResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cleanings [post]
func (h *CleaningHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCleaningRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ZoneID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "zone_id es requerido"})
	}
	out, err := h.uc.Create(GetTenant(c), GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByZone godoc
// @Summary      Historial de limpiezas de una zona
// @Tags         cleanings
// @Security     Bearer
// @Produce      json
// @Param        zoneId  path   string  true   "ID de la zona"
// @Param        from    query  string  false  "Desde (RFC3339)"
// @Param        to      query  string  false  "Hasta (RFC3339)"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.CleaningListResponse
// @Router       /api/zones/{zoneId}/cleanings [get]
func (h *CleaningHandler) ListByZone(c *fiber.Ctx) error {
	zoneID := c.Params("zoneId")
	if zoneID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "zoneId es requerido"})
	}
	from, err := queryTime(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser RFC3339"})
	}
	to, err := queryTime(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser RFC3339"})
	}
	limit, offset := pagination(c)
	out, err := h.uc.ListByZone(GetTenant(c), zoneID, from, to, limit, offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro de limpieza
// @Tags         cleanings
// @Security     Bearer
// @Param        id  path  string  true  "ID del registro"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cleanings/{id} [delete]
func (h *CleaningHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(GetTenant(c), id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
