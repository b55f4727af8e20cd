package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Gmao-api/internal/application/dto"
	"github.com/jhoicas/Gmao-api/internal/domain"
	"github.com/jhoicas/Gmao-api/internal/domain/entity"
	"github.com/jhoicas/Gmao-api/internal/domain/repository"
)

// SiteUseCase casos de uso CRUD para sedes.
type SiteUseCase struct {
	repo repository.SiteRepository
}

// NewSiteUseCase construye el caso de uso.
func NewSiteUseCase(repo repository.SiteRepository) *SiteUseCase {
	return &SiteUseCase{repo: repo}
}

// Create crea una nueva sede.
func (uc *SiteUseCase) Create(in dto.CreateSiteRequest) (*dto.SiteResponse, error) {
	now := time.Now()
	site := &entity.Site{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		City:      in.City,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(site); err != nil {
		return nil, err
	}
	return toSiteResponse(site), nil
}

// GetByID obtiene una sede por ID.
func (uc *SiteUseCase) GetByID(id string) (*dto.SiteResponse, error) {
	site, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, domain.ErrNotFound
	}
	return toSiteResponse(site), nil
}

// Update actualiza una sede.
func (uc *SiteUseCase) Update(id string, in dto.UpdateSiteRequest) (*dto.SiteResponse, error) {
	site, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		site.Name = *in.Name
	}
	if in.Address != nil {
		site.Address = *in.Address
	}
	if in.City != nil {
		site.City = *in.City
	}
	if in.Status != nil {
		site.Status = *in.Status
	}
	site.UpdatedAt = time.Now()
	if err := uc.repo.Update(site); err != nil {
		return nil, err
	}
	return toSiteResponse(site), nil
}

// List lista sedes con paginación.
func (uc *SiteUseCase) List(limit, offset int) (*dto.SiteListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SiteResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSiteResponse(s))
	}
	return &dto.SiteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toSiteResponse(s *entity.Site) *dto.SiteResponse {
	if s == nil {
		return nil
	}
	return &dto.SiteResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		City:      s.City,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
