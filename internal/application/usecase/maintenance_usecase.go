package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Gmao-api/internal/application/dto"
	"github.com/jhoicas/Gmao-api/internal/domain"
	"github.com/jhoicas/Gmao-api/internal/domain/entity"
	"github.com/jhoicas/Gmao-api/internal/domain/repository"
)

// MaintenanceUseCase casos de uso para mantenimientos preventivos y
// correctivos.
type MaintenanceUseCase struct {
	repo         repository.MaintenanceRepository
	materialRepo repository.MaterialRepository
	zoneRepo     repository.ZoneRepository
}

// NewMaintenanceUseCase construye el caso de uso.
func NewMaintenanceUseCase(repo repository.MaintenanceRepository, materialRepo repository.MaterialRepository, zoneRepo repository.ZoneRepository) *MaintenanceUseCase {
	return &MaintenanceUseCase{repo: repo, materialRepo: materialRepo, zoneRepo: zoneRepo}
}

// Create programa un mantenimiento. Material y zona son opcionales pero,
// si vienen, deben pertenecer a la sede.
func (uc *MaintenanceUseCase) Create(tenant domain.TenantContext, actorID string, in dto.CreateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	if in.MaterialID != nil {
		material, err := uc.materialRepo.GetByID(*in.MaterialID)
		if err != nil {
			return nil, err
		}
		if material == nil || material.SiteID != tenant.SiteID {
			return nil, domain.ErrNotFound
		}
	}
	if in.ZoneID != nil {
		zone, err := uc.zoneRepo.GetByID(*in.ZoneID)
		if err != nil {
			return nil, err
		}
		if zone == nil || zone.SiteID != tenant.SiteID {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	maintenance := &entity.Maintenance{
		ID:           uuid.New().String(),
		SiteID:       tenant.SiteID,
		MaterialID:   in.MaterialID,
		ZoneID:       in.ZoneID,
		Title:        in.Title,
		Description:  in.Description,
		Kind:         in.Kind,
		Status:       entity.MaintenanceStatusScheduled,
		ScheduledFor: in.ScheduledFor,
		AssignedTo:   in.AssignedTo,
		CreatedBy:    actorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(maintenance); err != nil {
		return nil, err
	}
	return toMaintenanceResponse(maintenance), nil
}

// GetByID obtiene un mantenimiento verificando la sede.
func (uc *MaintenanceUseCase) GetByID(tenant domain.TenantContext, id string) (*dto.MaintenanceResponse, error) {
	maintenance, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if maintenance == nil || maintenance.SiteID != tenant.SiteID {
		return nil, domain.ErrNotFound
	}
	return toMaintenanceResponse(maintenance), nil
}

// Update actualiza un mantenimiento. Al marcarlo done sin fecha de
// finalización explícita, se usa el momento actual.
func (uc *MaintenanceUseCase) Update(tenant domain.TenantContext, id string, in dto.UpdateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	maintenance, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if maintenance == nil || maintenance.SiteID != tenant.SiteID {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		maintenance.Title = *in.Title
	}
	if in.Description != nil {
		maintenance.Description = *in.Description
	}
	if in.ScheduledFor != nil {
		maintenance.ScheduledFor = *in.ScheduledFor
	}
	if in.AssignedTo != nil {
		maintenance.AssignedTo = in.AssignedTo
	}
	if in.CompletedAt != nil {
		maintenance.CompletedAt = in.CompletedAt
	}
	if in.Status != nil {
		maintenance.Status = *in.Status
		if *in.Status == entity.MaintenanceStatusDone && maintenance.CompletedAt == nil {
			now := time.Now()
			maintenance.CompletedAt = &now
		}
	}
	maintenance.UpdatedAt = time.Now()
	if err := uc.repo.Update(maintenance); err != nil {
		return nil, err
	}
	return toMaintenanceResponse(maintenance), nil
}

// List lista los mantenimientos de la sede, con filtro opcional por estado.
func (uc *MaintenanceUseCase) List(tenant domain.TenantContext, status string, limit, offset int) (*dto.MaintenanceListResponse, error) {
	list, err := uc.repo.ListBySite(tenant.SiteID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaintenanceResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMaintenanceResponse(m))
	}
	return &dto.MaintenanceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un mantenimiento de la sede.
func (uc *MaintenanceUseCase) Delete(tenant domain.TenantContext, id string) error {
	maintenance, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if maintenance == nil || maintenance.SiteID != tenant.SiteID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toMaintenanceResponse(m *entity.Maintenance) *dto.MaintenanceResponse {
	if m == nil {
		return nil
	}
	return &dto.MaintenanceResponse{
		ID:           m.ID,
		SiteID:       m.SiteID,
		MaterialID:   m.MaterialID,
		ZoneID:       m.ZoneID,
		Title:        m.Title,
		Description:  m.Description,
		Kind:         m.Kind,
		Status:       m.Status,
		ScheduledFor: m.ScheduledFor,
		CompletedAt:  m.CompletedAt,
		AssignedTo:   m.AssignedTo,
		CreatedBy:    m.CreatedBy,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
