package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gmao-api/internal/application/dto"
	"github.com/jhoicas/Gmao-api/internal/application/inventory"
)

// InventoryHandler maneja los movimientos de stock, el historial de precios
// y la exportación del kardex.
type InventoryHandler struct {
	ledger *inventory.LedgerUseCase
	kardex *inventory.KardexUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger *inventory.LedgerUseCase, kardex *inventory.KardexUseCase) *InventoryHandler {
	return &InventoryHandler{ledger: ledger, kardex: kardex}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  Las entradas suman al acumulado y pueden actualizar el precio del
// @Description  artículo; las salidas validan stock suficiente y disparan alertas
// @Description  de umbral tras confirmarse.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "item_id, type (entry|exit), quantity, unit_price..."
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.ledger.RecordMovement(c.Context(), GetTenant(c), GetUserID(c), inventory.MovementInput{
		ItemID:        in.ItemID,
		Type:          in.Type,
		Quantity:      in.Quantity,
		UnitPrice:     in.UnitPrice,
		SupplierID:    in.SupplierID,
		InvoiceNumber: in.InvoiceNumber,
		InvoiceDate:   in.InvoiceDate,
		RelatedType:   in.RelatedType,
		RelatedID:     in.RelatedID,
		Notes:         in.Notes,
		MovementDate:  in.MovementDate,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(result))
}

// UpdateMovement godoc
// @Summary      Corregir un movimiento registrado
// @Description  Ajusta el acumulado del artículo con el delta de cantidad.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del movimiento"
// @Param        body  body  dto.UpdateMovementRequest  true  "Campos a corregir"
// @Success      200   {object}  dto.MovementResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{id} [put]
func (h *InventoryHandler) UpdateMovement(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.ledger.UpdateMovement(c.Context(), GetTenant(c), id, inventory.UpdateMovementInput{
		Quantity:      in.Quantity,
		UnitPrice:     in.UnitPrice,
		SupplierID:    in.SupplierID,
		InvoiceNumber: in.InvoiceNumber,
		InvoiceDate:   in.InvoiceDate,
		Notes:         in.Notes,
		MovementDate:  in.MovementDate,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(toMovementResponse(result))
}

// DeleteMovement godoc
// @Summary      Eliminar movimiento
// @Description  Revierte su efecto sobre el acumulado correspondiente.
// @Tags         inventory
// @Security     Bearer
// @Param        id  path  string  true  "ID del movimiento"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{id} [delete]
func (h *InventoryHandler) DeleteMovement(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.ledger.DeleteMovement(c.Context(), GetTenant(c), id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListMovements godoc
// @Summary      Historial de movimientos de un artículo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        itemId  path   string  true   "ID del artículo"
// @Param        from    query  string  false  "Desde (RFC3339)"
// @Param        to      query  string  false  "Hasta (RFC3339)"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.MovementListResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/items/{itemId}/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	itemID := c.Params("itemId")
	if itemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "itemId es requerido"})
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
	results, err := h.ledger.ListMovements(c.Context(), GetTenant(c), itemID, from, to, limit, offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	items := make([]dto.MovementResponse, 0, len(results))
	for _, r := range results {
		items = append(items, toMovementResponse(r))
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	})
}

// RegisterPriceChange godoc
// @Summary      Registrar cambio de precio sin movimiento
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterPriceChangeRequest  true  "item_id, price..."
// @Success      201   {object}  dto.ItemPriceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/prices [post]
func (h *InventoryHandler) RegisterPriceChange(c *fiber.Ctx) error {
	var in dto.RegisterPriceChangeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	snapshot, err := h.ledger.RecordPriceChange(c.Context(), GetTenant(c), GetUserID(c), inventory.PriceChangeInput{
		ItemID:        in.ItemID,
		Price:         in.Price,
		SupplierID:    in.SupplierID,
		Notes:         in.Notes,
		EffectiveDate: in.EffectiveDate,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ItemPriceResponse{
		ID:            snapshot.ID,
		ItemID:        snapshot.ItemID,
		Price:         snapshot.Price,
		SupplierID:    snapshot.SupplierID,
		EffectiveDate: snapshot.EffectiveDate,
		Notes:         snapshot.Notes,
		CreatedAt:     snapshot.CreatedAt,
	})
}

// DownloadKardex godoc
// @Summary      Descargar kardex de un artículo en PDF
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Param        itemId  path  string  true  "ID del artículo"
// @Success      200     {file}    file
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/items/{itemId}/kardex [get]
func (h *InventoryHandler) DownloadKardex(c *fiber.Ctx) error {
	itemID := c.Params("itemId")
	if itemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "itemId es requerido"})
	}
	pdfBytes, err := h.kardex.GenerateKardex(c.Context(), GetTenant(c), itemID)
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="kardex-%s-%s.pdf"`, itemID, time.Now().Format("20060102")))
	return c.Send(pdfBytes)
}

// toMovementResponse mapea el resultado del ledger a la respuesta HTTP con
// las asociaciones que se hayan podido resolver.
func toMovementResponse(r *inventory.MovementResult) dto.MovementResponse {
	m := r.Movement
	out := dto.MovementResponse{
		ID:            m.ID,
		ItemID:        m.ItemID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		UnitPrice:     m.UnitPrice,
		TotalPrice:    m.TotalPrice,
		SupplierID:    m.SupplierID,
		InvoiceNumber: m.InvoiceNumber,
		InvoiceDate:   m.InvoiceDate,
		RelatedType:   m.RelatedType,
		RelatedID:     m.RelatedID,
		Notes:         m.Notes,
		MovementDate:  m.MovementDate,
		CreatedAt:     m.CreatedAt,
	}
	if r.Item != nil {
		out.Item = &dto.MovementItemSummary{
			ID:           r.Item.ID,
			Name:         r.Item.Name,
			Reference:    r.Item.Reference,
			CurrentStock: r.Item.CurrentStock(),
		}
	}
	if r.Creator != nil {
		out.CreatedBy = &dto.MovementUserSummary{ID: r.Creator.ID, Name: r.Creator.Name}
	}
	return out
}
