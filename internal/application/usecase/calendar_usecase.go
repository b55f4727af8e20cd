package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Gmao-api/internal/application/dto"
	"github.com/jhoicas/Gmao-api/internal/domain"
	"github.com/jhoicas/Gmao-api/internal/domain/entity"
	"github.com/jhoicas/Gmao-api/internal/domain/repository"
)

// CalendarUseCase casos de uso para el calendario de la sede.
type CalendarUseCase struct {
	repo repository.CalendarEventRepository
}

// NewCalendarUseCase construye el caso de uso.
func NewCalendarUseCase(repo repository.CalendarEventRepository) *CalendarUseCase {
	return &CalendarUseCase{repo: repo}
}

// Create crea un evento de calendario. El fin debe ser posterior al inicio.
func (uc *CalendarUseCase) Create(tenant domain.TenantContext, actorID string, in dto.CreateCalendarEventRequest) (*dto.CalendarEventResponse, error) {
	if !in.EndsAt.After(in.StartsAt) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	event := &entity.CalendarEvent{
		ID:          uuid.New().String(),
		SiteID:      tenant.SiteID,
		Title:       in.Title,
		Description: in.Description,
		Kind:        in.Kind,
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
		RelatedType: in.RelatedType,
		RelatedID:   in.RelatedID,
		CreatedBy:   actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(event); err != nil {
		return nil, err
	}
	return toCalendarEventResponse(event), nil
}

// Update actualiza un evento de la sede.
func (uc *CalendarUseCase) Update(tenant domain.TenantContext, id string, in dto.UpdateCalendarEventRequest) (*dto.CalendarEventResponse, error) {
	event, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil || event.SiteID != tenant.SiteID {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		event.Title = *in.Title
	}
	if in.Description != nil {
		event.Description = *in.Description
	}
	if in.Kind != nil {
		event.Kind = *in.Kind
	}
	if in.StartsAt != nil {
		event.StartsAt = *in.StartsAt
	}
	if in.EndsAt != nil {
		event.EndsAt = *in.EndsAt
	}
	if !event.EndsAt.After(event.StartsAt) {
		return nil, domain.ErrInvalidInput
	}
	event.UpdatedAt = time.Now()
	if err := uc.repo.Update(event); err != nil {
		return nil, err
	}
	return toCalendarEventResponse(event), nil
}

// List lista los eventos de la sede dentro de un rango de fechas opcional.
func (uc *CalendarUseCase) List(tenant domain.TenantContext, from, to *time.Time, limit, offset int) (*dto.CalendarEventListResponse, error) {
	list, err := uc.repo.ListBySite(tenant.SiteID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CalendarEventResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toCalendarEventResponse(e))
	}
	return &dto.CalendarEventListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un evento de la sede.
func (uc *CalendarUseCase) Delete(tenant domain.TenantContext, id string) error {
	event, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if event == nil || event.SiteID != tenant.SiteID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toCalendarEventResponse(e *entity.CalendarEvent) *dto.CalendarEventResponse {
	if e == nil {
		return nil
	}
	return &dto.CalendarEventResponse{
		ID:          e.ID,
		SiteID:      e.SiteID,
		Title:       e.Title,
		Description: e.Description,
		Kind:        e.Kind,
		StartsAt:    e.StartsAt,
		EndsAt:      e.EndsAt,
		RelatedType: e.RelatedType,
		RelatedID:   e.RelatedID,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
