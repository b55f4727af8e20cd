package repository

import "github.com/jhoicas/Gmao-api/internal/domain/entity"

// MaterialRepository define el puerto de persistencia para Material.
type MaterialRepository interface {
	Create(material *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	ListByZone(zoneID string, limit, offset int) ([]*entity.Material, error)
	ListBySite(siteID string, limit, offset int) ([]*entity.Material, error)
	Update(material *entity.Material) error
	Delete(id string) error
}
