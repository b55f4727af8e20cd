package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Gmao-api/internal/application/dto"
	"github.com/jhoicas/Gmao-api/internal/domain"
	"github.com/jhoicas/Gmao-api/internal/domain/entity"
	"github.com/jhoicas/Gmao-api/internal/domain/repository"
)

// MaterialUseCase casos de uso CRUD para materiales instalados.
type MaterialUseCase struct {
	repo     repository.MaterialRepository
	zoneRepo repository.ZoneRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(repo repository.MaterialRepository, zoneRepo repository.ZoneRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo, zoneRepo: zoneRepo}
}

// Create da de alta un material en una zona de la sede. La zona debe
// pertenecer a la sede del tenant.
func (uc *MaterialUseCase) Create(tenant domain.TenantContext, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	zone, err := uc.zoneRepo.GetByID(in.ZoneID)
	if err != nil {
		return nil, err
	}
	if zone == nil || zone.SiteID != tenant.SiteID {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	material := &entity.Material{
		ID:           uuid.New().String(),
		SiteID:       tenant.SiteID,
		ZoneID:       in.ZoneID,
		Name:         in.Name,
		SerialNumber: in.SerialNumber,
		Brand:        in.Brand,
		Status:       entity.MaterialStatusOperational,
		InstalledAt:  in.InstalledAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// GetByID obtiene un material verificando la sede.
func (uc *MaterialUseCase) GetByID(tenant domain.TenantContext, id string) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil || material.SiteID != tenant.SiteID {
		return nil, domain.ErrNotFound
	}
	return toMaterialResponse(material), nil
}

// Update actualiza un material de la sede.
func (uc *MaterialUseCase) Update(tenant domain.TenantContext, id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil || material.SiteID != tenant.SiteID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		material.Name = *in.Name
	}
	if in.SerialNumber != nil {
		material.SerialNumber = *in.SerialNumber
	}
	if in.Brand != nil {
		material.Brand = *in.Brand
	}
	if in.Status != nil {
		material.Status = *in.Status
	}
	if in.InstalledAt != nil {
		material.InstalledAt = in.InstalledAt
	}
	material.UpdatedAt = time.Now()
	if err := uc.repo.Update(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// ListBySite lista los materiales de la sede.
func (uc *MaterialUseCase) ListBySite(tenant domain.TenantContext, limit, offset int) (*dto.MaterialListResponse, error) {
	list, err := uc.repo.ListBySite(tenant.SiteID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMaterialList(list, limit, offset), nil
}

// ListByZone lista los materiales de una zona de la sede.
func (uc *MaterialUseCase) ListByZone(tenant domain.TenantContext, zoneID string, limit, offset int) (*dto.MaterialListResponse, error) {
	zone, err := uc.zoneRepo.GetByID(zoneID)
	if err != nil {
		return nil, err
	}
	if zone == nil || zone.SiteID != tenant.SiteID {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListByZone(zoneID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMaterialList(list, limit, offset), nil
}

// Delete elimina un material de la sede.
func (uc *MaterialUseCase) Delete(tenant domain.TenantContext, id string) error {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if material == nil || material.SiteID != tenant.SiteID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toMaterialList(list []*entity.Material, limit, offset int) *dto.MaterialListResponse {
	items := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMaterialResponse(m))
	}
	return &dto.MaterialListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	if m == nil {
		return nil
	}
	return &dto.MaterialResponse{
		ID:           m.ID,
		SiteID:       m.SiteID,
		ZoneID:       m.ZoneID,
		Name:         m.Name,
		SerialNumber: m.SerialNumber,
		Brand:        m.Brand,
		Status:       m.Status,
		InstalledAt:  m.InstalledAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
