package inventory

import (
	"context"

	"github.com/jhoicas/Gmao-api/internal/domain"
	"github.com/jhoicas/Gmao-api/internal/domain/entity"
	"github.com/jhoicas/Gmao-api/internal/domain/repository"
)

// KardexUseCase genera el kardex de un item: su historial completo de
// movimientos con el saldo acumulado tras cada uno, renderizado como PDF.
type KardexUseCase struct {
	itemRepo repository.ItemRepository
	movRepo  repository.ItemMovementRepository
	pdf      KardexPDFGenerator
}

// NewKardexUseCase construye el caso de uso del kardex.
func NewKardexUseCase(
	itemRepo repository.ItemRepository,
	movRepo repository.ItemMovementRepository,
	pdf KardexPDFGenerator,
) *KardexUseCase {
	return &KardexUseCase{itemRepo: itemRepo, movRepo: movRepo, pdf: pdf}
}

// GenerateKardex devuelve los bytes del PDF con el kardex del item.
func (uc *KardexUseCase) GenerateKardex(ctx context.Context, tenant domain.TenantContext, itemID string) ([]byte, error) {
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

	movements, err := uc.movRepo.ListAllByItem(itemID)
	if err != nil {
		return nil, err
	}

	rows := BuildKardexRows(movements)
	return uc.pdf.GenerateKardexPDF(ctx, item, rows)
}

// BuildKardexRows calcula el saldo acumulado movimiento a movimiento
// (entradas suman, salidas restan). Los movimientos llegan en orden
// cronológico ascendente.
func BuildKardexRows(movements []*entity.ItemMovement) []KardexRow {
	rows := make([]KardexRow, 0, len(movements))
	balance := 0
	for _, m := range movements {
		if m.Type == entity.MovementTypeEntry {
			balance += m.Quantity
		} else {
			balance -= m.Quantity
		}
		rows = append(rows, KardexRow{Movement: m, Balance: balance})
	}
	return rows
}
