package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Gmao-api/internal/application/dto"
	"github.com/jhoicas/Gmao-api/internal/domain"
	"github.com/jhoicas/Gmao-api/internal/domain/entity"
	"github.com/jhoicas/Gmao-api/internal/domain/repository"
)

// ZoneUseCase casos de uso CRUD para zonas de una sede.
type ZoneUseCase struct {
	repo repository.ZoneRepository
}

// NewZoneUseCase construye el caso de uso.
func NewZoneUseCase(repo repository.ZoneRepository) *ZoneUseCase {
	return &ZoneUseCase{repo: repo}
}

// Create crea una zona en la sede del tenant.
func (uc *ZoneUseCase) Create(tenant domain.TenantContext, in dto.CreateZoneRequest) (*dto.ZoneResponse, error) {
	now := time.Now()
	zone := &entity.Zone{
		ID:          uuid.New().String(),
		SiteID:      tenant.SiteID,
		Name:        in.Name,
		Floor:       in.Floor,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(zone); err != nil {
		return nil, err
	}
	return toZoneResponse(zone), nil
}

// GetByID obtiene una zona verificando que pertenece a la sede.
func (uc *ZoneUseCase) GetByID(tenant domain.TenantContext, id string) (*dto.ZoneResponse, error) {
	zone, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if zone == nil || zone.SiteID != tenant.SiteID {
		return nil, domain.ErrNotFound
	}
	return toZoneResponse(zone), nil
}

// Update actualiza una zona de la sede.
func (uc *ZoneUseCase) Update(tenant domain.TenantContext, id string, in dto.UpdateZoneRequest) (*dto.ZoneResponse, error) {
	zone, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if zone == nil || zone.SiteID != tenant.SiteID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		zone.Name = *in.Name
	}
	if in.Floor != nil {
		zone.Floor = *in.Floor
	}
	if in.Description != nil {
		zone.Description = *in.Description
	}
	zone.UpdatedAt = time.Now()
	if err := uc.repo.Update(zone); err != nil {
		return nil, err
	}
	return toZoneResponse(zone), nil
}

// List lista las zonas de la sede con paginación.
func (uc *ZoneUseCase) List(tenant domain.TenantContext, limit, offset int) (*dto.ZoneListResponse, error) {
	list, err := uc.repo.ListBySite(tenant.SiteID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ZoneResponse, 0, len(list))
	for _, z := range list {
		items = append(items, *toZoneResponse(z))
	}
	return &dto.ZoneListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una zona de la sede.
func (uc *ZoneUseCase) Delete(tenant domain.TenantContext, id string) error {
	zone, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if zone == nil || zone.SiteID != tenant.SiteID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toZoneResponse(z *entity.Zone) *dto.ZoneResponse {
	if z == nil {
		return nil
	}
	return &dto.ZoneResponse{
		ID:          z.ID,
		SiteID:      z.SiteID,
		Name:        z.Name,
		Floor:       z.Floor,
		Description: z.Description,
		CreatedAt:   z.CreatedAt,
		UpdatedAt:   z.UpdatedAt,
	}
}
