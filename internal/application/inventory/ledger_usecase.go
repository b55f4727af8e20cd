package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gmao-api/internal/domain"
	"github.com/jhoicas/Gmao-api/internal/domain/entity"
	invdomain "github.com/jhoicas/Gmao-api/internal/domain/inventory"
	"github.com/jhoicas/Gmao-api/internal/domain/repository"
)

// LedgerUseCase mantiene el stock y el historial de precios de los items del
// almacén: registra entradas/salidas de forma transaccional (fila del item
// bloqueada con SELECT FOR UPDATE, acumulados ajustados con incrementos
// relativos atómicos) y emite alertas cuando el stock cruza los umbrales
// configurados.
type LedgerUseCase struct {
	txRunner        TxRunner
	itemRepo        repository.ItemRepository // atado al pool: lecturas fuera de tx
	movRepo         repository.ItemMovementRepository
	priceRepo       repository.ItemPriceRepository
	userRepo        repository.UserRepository
	maintenanceRepo repository.MaintenanceRepository
	incidentRepo    repository.IncidentRepository
	dispatcher      NotificationDispatcher
}

// NewLedgerUseCase construye el caso de uso del ledger.
func NewLedgerUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	movRepo repository.ItemMovementRepository,
	priceRepo repository.ItemPriceRepository,
	userRepo repository.UserRepository,
	maintenanceRepo repository.MaintenanceRepository,
	incidentRepo repository.IncidentRepository,
	dispatcher NotificationDispatcher,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:        txRunner,
		itemRepo:        itemRepo,
		movRepo:         movRepo,
		priceRepo:       priceRepo,
		userRepo:        userRepo,
		maintenanceRepo: maintenanceRepo,
		incidentRepo:    incidentRepo,
		dispatcher:      dispatcher,
	}
}

// MovementInput entrada para registrar un movimiento de stock.
// Quantity siempre positivo; UnitPrice opcional (entrada: default 0,
// salida: default precio actual del item); RelatedType/RelatedID opcionales
// solo en salidas.
type MovementInput struct {
	ItemID        string
	Type          string // entry, exit
	Quantity      int
	UnitPrice     *decimal.Decimal
	SupplierID    *string
	InvoiceNumber *string
	InvoiceDate   *time.Time
	RelatedType   *string
	RelatedID     *string
	Notes         string
	MovementDate  *time.Time // default: ahora
}

// MovementResult movimiento persistido con sus asociaciones resueltas.
type MovementResult struct {
	Movement *entity.ItemMovement
	Item     *entity.Item
	Creator  *entity.User
}

// RecordMovement valida la entrada, inicia una transacción, bloquea la fila
// del item y aplica la lógica según tipo (entry/exit). Tras confirmar una
// salida, recarga los acumulados y encola las alertas de umbral que apliquen.
func (uc *LedgerUseCase) RecordMovement(ctx context.Context, tenant domain.TenantContext, actorID string, input MovementInput) (*MovementResult, error) {
	// Validar antes de cualquier persistencia
	if input.ItemID == "" || input.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if input.Type != entity.MovementTypeEntry && input.Type != entity.MovementTypeExit {
		return nil, domain.ErrInvalidInput
	}
	if input.UnitPrice != nil && input.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if input.RelatedType != nil && input.Type != entity.MovementTypeExit {
		return nil, domain.ErrInvalidInput
	}

	// Resolver la entidad relacionada de la salida (mantenimiento, incidencia)
	if input.RelatedType != nil {
		if input.RelatedID == nil || *input.RelatedID == "" {
			return nil, domain.ErrInvalidInput
		}
		if err := uc.resolveRelated(tenant, *input.RelatedType, *input.RelatedID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	movementDate := now
	if input.MovementDate != nil {
		movementDate = *input.MovementDate
	}

	var movement *entity.ItemMovement
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		movRepo repository.ItemMovementRepository,
		priceRepo repository.ItemPriceRepository,
	) error {
		// Bloquea la fila del item: la comprobación de stock y el ajuste de
		// acumulados leen y escriben dentro de la misma transacción
		item, err := itemRepo.GetForUpdate(input.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.SiteID != tenant.SiteID {
			return domain.ErrForbidden
		}

		switch input.Type {
		case entity.MovementTypeEntry:
			movement, err = uc.doEntry(itemRepo, movRepo, priceRepo, item, input, actorID, movementDate, now)
		case entity.MovementTypeExit:
			movement, err = uc.doExit(itemRepo, movRepo, item, input, actorID, movementDate, now)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	// Post-commit, solo salidas: recalcular stock con acumulados recargados y
	// encolar alertas. El encolado es best-effort: su fallo no deshace nada.
	if input.Type == entity.MovementTypeExit {
		uc.checkThresholds(ctx, tenant, input.ItemID)
	}

	return uc.resolveResult(movement)
}

// doEntry: precio unitario default 0, suma entry_total y, si el precio difiere
// del actual del item (igualdad exacta), crea un snapshot de precio y
// sobrescribe precio/proveedor del item.
func (uc *LedgerUseCase) doEntry(
	itemRepo repository.ItemRepository,
	movRepo repository.ItemMovementRepository,
	priceRepo repository.ItemPriceRepository,
	item *entity.Item,
	input MovementInput,
	actorID string,
	movementDate, now time.Time,
) (*entity.ItemMovement, error) {
	unitPrice := decimal.Zero
	if input.UnitPrice != nil {
		unitPrice = *input.UnitPrice
	}
	movement := &entity.ItemMovement{
		ID:            uuid.New().String(),
		ItemID:        item.ID,
		Type:          entity.MovementTypeEntry,
		Quantity:      input.Quantity,
		UnitPrice:     unitPrice,
		TotalPrice:    decimal.NewFromInt(int64(input.Quantity)).Mul(unitPrice),
		SupplierID:    input.SupplierID,
		InvoiceNumber: input.InvoiceNumber,
		InvoiceDate:   input.InvoiceDate,
		Notes:         input.Notes,
		MovementDate:  movementDate,
		CreatedBy:     actorID,
		CreatedAt:     now,
	}
	if err := movRepo.Create(movement); err != nil {
		return nil, err
	}
	if err := itemRepo.AddToEntryTotal(item.ID, input.Quantity); err != nil {
		return nil, err
	}
	// Comparación exacta a propósito: el flujo de edición de item usa epsilon.
	// La inconsistencia viene del sistema original y se conserva.
	if !unitPrice.Equal(item.Price) {
		snapshot := &entity.ItemPrice{
			ID:            uuid.New().String(),
			ItemID:        item.ID,
			SupplierID:    input.SupplierID,
			Price:         unitPrice,
			EffectiveDate: movementDate,
			CreatedBy:     actorID,
			CreatedAt:     now,
		}
		if err := priceRepo.Create(snapshot); err != nil {
			return nil, err
		}
		if err := itemRepo.UpdatePrice(item.ID, unitPrice, input.SupplierID); err != nil {
			return nil, err
		}
	}
	return movement, nil
}

// doExit: verifica stock suficiente con los acumulados leídos en esta misma
// transacción, toma el precio actual del item si no viene explícito y suma
// exit_total.
func (uc *LedgerUseCase) doExit(
	itemRepo repository.ItemRepository,
	movRepo repository.ItemMovementRepository,
	item *entity.Item,
	input MovementInput,
	actorID string,
	movementDate, now time.Time,
) (*entity.ItemMovement, error) {
	if input.Quantity > item.CurrentStock() {
		return nil, domain.ErrInsufficientStock
	}
	unitPrice := item.Price
	if input.UnitPrice != nil {
		unitPrice = *input.UnitPrice
	}
	movement := &entity.ItemMovement{
		ID:           uuid.New().String(),
		ItemID:       item.ID,
		Type:         entity.MovementTypeExit,
		Quantity:     input.Quantity,
		UnitPrice:    unitPrice,
		TotalPrice:   decimal.NewFromInt(int64(input.Quantity)).Mul(unitPrice),
		RelatedType:  input.RelatedType,
		RelatedID:    input.RelatedID,
		Notes:        input.Notes,
		MovementDate: movementDate,
		CreatedBy:    actorID,
		CreatedAt:    now,
	}
	if err := movRepo.Create(movement); err != nil {
		return nil, err
	}
	if err := itemRepo.AddToExitTotal(item.ID, input.Quantity); err != nil {
		return nil, err
	}
	return movement, nil
}

// UpdateMovementInput cambios parciales sobre un movimiento existente.
type UpdateMovementInput struct {
	Quantity      *int
	UnitPrice     *decimal.Decimal
	SupplierID    *string
	InvoiceNumber *string
	InvoiceDate   *time.Time
	Notes         *string
	MovementDate  *time.Time
}

// UpdateMovement aplica cambios parciales a un movimiento. Si cambia la
// cantidad, recalcula el precio total y ajusta el acumulado del item con el
// delta (new − old). No se re-valida la suficiencia de stock: una edición
// correctiva puede dejar el stock calculado en negativo (hueco conocido del
// sistema original, conservado a propósito).
func (uc *LedgerUseCase) UpdateMovement(ctx context.Context, tenant domain.TenantContext, movementID string, input UpdateMovementInput) (*MovementResult, error) {
	if input.Quantity != nil && *input.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if input.UnitPrice != nil && input.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	var movement *entity.ItemMovement
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		movRepo repository.ItemMovementRepository,
		_ repository.ItemPriceRepository,
	) error {
		var err error
		movement, err = movRepo.GetByID(movementID)
		if err != nil {
			return err
		}
		if movement == nil {
			return domain.ErrNotFound
		}
		item, err := itemRepo.GetForUpdate(movement.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.SiteID != tenant.SiteID {
			return domain.ErrForbidden
		}

		oldQuantity := movement.Quantity
		if input.Quantity != nil {
			movement.Quantity = *input.Quantity
		}
		if input.UnitPrice != nil {
			movement.UnitPrice = *input.UnitPrice
		}
		if input.SupplierID != nil {
			movement.SupplierID = input.SupplierID
		}
		if input.InvoiceNumber != nil {
			movement.InvoiceNumber = input.InvoiceNumber
		}
		if input.InvoiceDate != nil {
			movement.InvoiceDate = input.InvoiceDate
		}
		if input.Notes != nil {
			movement.Notes = *input.Notes
		}
		if input.MovementDate != nil {
			movement.MovementDate = *input.MovementDate
		}
		if input.Quantity != nil || input.UnitPrice != nil {
			movement.TotalPrice = decimal.NewFromInt(int64(movement.Quantity)).Mul(movement.UnitPrice)
		}
		if err := movRepo.Update(movement); err != nil {
			return err
		}

		if delta := movement.Quantity - oldQuantity; delta != 0 {
			if movement.Type == entity.MovementTypeEntry {
				return itemRepo.AddToEntryTotal(item.ID, delta)
			}
			return itemRepo.AddToExitTotal(item.ID, delta)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.resolveResult(movement)
}

// DeleteMovement elimina un movimiento y descuenta su cantidad del acumulado
// correspondiente (inverso exacto de la creación). No re-evalúa umbrales.
func (uc *LedgerUseCase) DeleteMovement(ctx context.Context, tenant domain.TenantContext, movementID string) error {
	return uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		movRepo repository.ItemMovementRepository,
		_ repository.ItemPriceRepository,
	) error {
		movement, err := movRepo.GetByID(movementID)
		if err != nil {
			return err
		}
		if movement == nil {
			return domain.ErrNotFound
		}
		item, err := itemRepo.GetForUpdate(movement.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.SiteID != tenant.SiteID {
			return domain.ErrForbidden
		}
		if err := movRepo.Delete(movement.ID); err != nil {
			return err
		}
		if movement.Type == entity.MovementTypeEntry {
			return itemRepo.AddToEntryTotal(item.ID, -movement.Quantity)
		}
		return itemRepo.AddToExitTotal(item.ID, -movement.Quantity)
	})
}

// ListMovements devuelve el historial de movimientos de un item, más reciente
// primero, con filtro opcional por rango de fechas. Los movimientos se
// devuelven con el creador resuelto.
func (uc *LedgerUseCase) ListMovements(ctx context.Context, tenant domain.TenantContext, itemID string, from, to *time.Time, limit, offset int) ([]*MovementResult, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.SiteID != tenant.SiteID {
		return nil, domain.ErrForbidden
	}
	movements, err := uc.movRepo.ListByItem(itemID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	results := make([]*MovementResult, 0, len(movements))
	for _, m := range movements {
		creator, _ := uc.userRepo.GetByID(m.CreatedBy)
		results = append(results, &MovementResult{Movement: m, Item: item, Creator: creator})
	}
	return results, nil
}

// PriceChangeInput entrada para registrar un cambio de precio a nivel de item.
type PriceChangeInput struct {
	ItemID        string
	Price         decimal.Decimal
	SupplierID    *string
	Notes         string
	EffectiveDate *time.Time // default: ahora
}

// RecordPriceChange añade un snapshot al historial de precios. Nunca muta el
// item: quien invoca ya actualizó precio/proveedor actuales.
func (uc *LedgerUseCase) RecordPriceChange(ctx context.Context, tenant domain.TenantContext, actorID string, input PriceChangeInput) (*entity.ItemPrice, error) {
	if input.ItemID == "" || input.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(input.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.SiteID != tenant.SiteID {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	effective := now
	if input.EffectiveDate != nil {
		effective = *input.EffectiveDate
	}
	snapshot := &entity.ItemPrice{
		ID:            uuid.New().String(),
		ItemID:        item.ID,
		SupplierID:    input.SupplierID,
		Price:         input.Price,
		EffectiveDate: effective,
		Notes:         input.Notes,
		CreatedBy:     actorID,
		CreatedAt:     now,
	}
	if err := uc.priceRepo.Create(snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// resolveRelated verifica que la entidad consumidora de la salida exista y
// pertenezca a la sede.
func (uc *LedgerUseCase) resolveRelated(tenant domain.TenantContext, relatedType, relatedID string) error {
	switch relatedType {
	case entity.RelatedTypeMaintenance:
		m, err := uc.maintenanceRepo.GetByID(relatedID)
		if err != nil {
			return err
		}
		if m == nil || m.SiteID != tenant.SiteID {
			return domain.ErrNotFound
		}
	case entity.RelatedTypeIncident:
		in, err := uc.incidentRepo.GetByID(relatedID)
		if err != nil {
			return err
		}
		if in == nil || in.SiteID != tenant.SiteID {
			return domain.ErrNotFound
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

// checkThresholds recarga el item con acumulados frescos y encola las alertas
// que disparen los umbrales. Warning y critical son independientes: ambas
// pueden dispararse por el mismo movimiento.
func (uc *LedgerUseCase) checkThresholds(ctx context.Context, tenant domain.TenantContext, itemID string) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil || item == nil {
		return
	}
	stock := item.CurrentStock()
	for _, severity := range invdomain.EvaluateThresholds(item) {
		threshold := item.WarningThreshold
		if severity == invdomain.AlertCritical {
			threshold = item.CriticalThreshold
		}
		// Best-effort: un fallo del dispatcher es problema del worker/cola,
		// nunca del movimiento ya confirmado
		_ = uc.dispatcher.Enqueue(ctx, StockAlert{
			Severity:     severity,
			SiteID:       tenant.SiteID,
			ItemID:       item.ID,
			ItemName:     item.Name,
			CurrentStock: stock,
			Threshold:    threshold,
			Recipients:   item.AlertRecipients,
			QueuedAt:     time.Now(),
		})
	}
}

// resolveResult carga item y creador del movimiento para dar la respuesta
// con asociaciones resueltas.
func (uc *LedgerUseCase) resolveResult(movement *entity.ItemMovement) (*MovementResult, error) {
	if movement == nil {
		return nil, domain.ErrNotFound
	}
	item, err := uc.itemRepo.GetByID(movement.ItemID)
	if err != nil {
		return nil, err
	}
	creator, _ := uc.userRepo.GetByID(movement.CreatedBy)
	return &MovementResult{Movement: movement, Item: item, Creator: creator}, nil
}
