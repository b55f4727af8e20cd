package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Gmao-api/internal/application/dto"
	"github.com/jhoicas/Gmao-api/internal/domain"
	"github.com/jhoicas/Gmao-api/internal/domain/entity"
	"github.com/jhoicas/Gmao-api/internal/domain/repository"
)

// IncidentUseCase casos de uso para incidencias de la sede.
type IncidentUseCase struct {
	repo     repository.IncidentRepository
	zoneRepo repository.ZoneRepository
}

// NewIncidentUseCase construye el caso de uso.
func NewIncidentUseCase(repo repository.IncidentRepository, zoneRepo repository.ZoneRepository) *IncidentUseCase {
	return &IncidentUseCase{repo: repo, zoneRepo: zoneRepo}
}

// Create reporta una incidencia. Nace siempre en estado open con
// prioridad medium si no se indica otra.
func (uc *IncidentUseCase) Create(tenant domain.TenantContext, actorID string, in dto.CreateIncidentRequest) (*dto.IncidentResponse, error) {
	if in.ZoneID != nil {
		zone, err := uc.zoneRepo.GetByID(*in.ZoneID)
		if err != nil {
			return nil, err
		}
		if zone == nil || zone.SiteID != tenant.SiteID {
			return nil, domain.ErrNotFound
		}
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.IncidentPriorityMedium
	}
	now := time.Now()
	incident := &entity.Incident{
		ID:          uuid.New().String(),
		SiteID:      tenant.SiteID,
		ZoneID:      in.ZoneID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    priority,
		Status:      entity.IncidentStatusOpen,
		ReportedBy:  actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(incident); err != nil {
		return nil, err
	}
	return toIncidentResponse(incident), nil
}

// GetByID obtiene una incidencia verificando la sede.
func (uc *IncidentUseCase) GetByID(tenant domain.TenantContext, id string) (*dto.IncidentResponse, error) {
	incident, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if incident == nil || incident.SiteID != tenant.SiteID {
		return nil, domain.ErrNotFound
	}
	return toIncidentResponse(incident), nil
}

// Update actualiza una incidencia. El estado deriva de la fecha de
// resolución: fijarla pasa la incidencia a resolved, limpiarla con
// ClearResolved la reabre.
func (uc *IncidentUseCase) Update(tenant domain.TenantContext, id string, in dto.UpdateIncidentRequest) (*dto.IncidentResponse, error) {
	incident, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if incident == nil || incident.SiteID != tenant.SiteID {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		incident.Title = *in.Title
	}
	if in.Description != nil {
		incident.Description = *in.Description
	}
	if in.Priority != nil {
		incident.Priority = *in.Priority
	}
	if in.ClearResolved {
		incident.ResolvedAt = nil
		incident.Status = entity.IncidentStatusOpen
	} else if in.ResolvedAt != nil {
		incident.ResolvedAt = in.ResolvedAt
		incident.Status = entity.IncidentStatusResolved
	}
	incident.UpdatedAt = time.Now()
	if err := uc.repo.Update(incident); err != nil {
		return nil, err
	}
	return toIncidentResponse(incident), nil
}

// List lista las incidencias de la sede, con filtro opcional por estado.
func (uc *IncidentUseCase) List(tenant domain.TenantContext, status string, limit, offset int) (*dto.IncidentListResponse, error) {
	list, err := uc.repo.ListBySite(tenant.SiteID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IncidentResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toIncidentResponse(i))
	}
	return &dto.IncidentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una incidencia de la sede.
func (uc *IncidentUseCase) Delete(tenant domain.TenantContext, id string) error {
	incident, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if incident == nil || incident.SiteID != tenant.SiteID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toIncidentResponse(i *entity.Incident) *dto.IncidentResponse {
	if i == nil {
		return nil
	}
	return &dto.IncidentResponse{
		ID:          i.ID,
		SiteID:      i.SiteID,
		ZoneID:      i.ZoneID,
		Title:       i.Title,
		Description: i.Description,
		Priority:    i.Priority,
		Status:      i.Status,
		ReportedBy:  i.ReportedBy,
		ResolvedAt:  i.ResolvedAt,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
