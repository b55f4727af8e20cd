package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Gmao-api/internal/application/dto"
	"github.com/jhoicas/Gmao-api/internal/domain"
	"github.com/jhoicas/Gmao-api/internal/domain/entity"
	"github.com/jhoicas/Gmao-api/internal/domain/repository"
)

// CleaningUseCase casos de uso para registros de limpieza de zonas.
type CleaningUseCase struct {
	repo     repository.CleaningRepository
	zoneRepo repository.ZoneRepository
}

// NewCleaningUseCase construye el caso de uso.
func NewCleaningUseCase(repo repository.CleaningRepository, zoneRepo repository.ZoneRepository) *CleaningUseCase {
	return &CleaningUseCase{repo: repo, zoneRepo: zoneRepo}
}

// Create registra una limpieza realizada por el actor sobre una zona de
// la sede. Si no se indica fecha se usa el momento actual.
func (uc *CleaningUseCase) Create(tenant domain.TenantContext, actorID string, in dto.CreateCleaningRequest) (*dto.CleaningResponse, error) {
	zone, err := uc.zoneRepo.GetByID(in.ZoneID)
	if err != nil {
		return nil, err
	}
	if zone == nil || zone.SiteID != tenant.SiteID {
		return nil, domain.ErrNotFound
	}
	cleanedAt := time.Now()
	if in.CleanedAt != nil {
		cleanedAt = *in.CleanedAt
	}
	cleaning := &entity.Cleaning{
		ID:          uuid.New().String(),
		SiteID:      tenant.SiteID,
		ZoneID:      in.ZoneID,
		PerformedBy: actorID,
		Notes:       in.Notes,
		CleanedAt:   cleanedAt,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(cleaning); err != nil {
		return nil, err
	}
	return toCleaningResponse(cleaning), nil
}

// ListByZone lista las limpiezas de una zona, con rango de fechas opcional.
func (uc *CleaningUseCase) ListByZone(tenant domain.TenantContext, zoneID string, from, to *time.Time, limit, offset int) (*dto.CleaningListResponse, error) {
	zone, err := uc.zoneRepo.GetByID(zoneID)
	if err != nil {
		return nil, err
	}
	if zone == nil || zone.SiteID != tenant.SiteID {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListByZone(zoneID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CleaningResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCleaningResponse(c))
	}
	return &dto.CleaningListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un registro de limpieza de la sede.
func (uc *CleaningUseCase) Delete(tenant domain.TenantContext, id string) error {
	cleaning, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cleaning == nil || cleaning.SiteID != tenant.SiteID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toCleaningResponse(c *entity.Cleaning) *dto.CleaningResponse {
	if c == nil {
		return nil
	}
	return &dto.CleaningResponse{
		ID:          c.ID,
		SiteID:      c.SiteID,
		ZoneID:      c.ZoneID,
		PerformedBy: c.PerformedBy,
		Notes:       c.Notes,
		CleanedAt:   c.CleanedAt,
		CreatedAt:   c.CreatedAt,
	}
}
