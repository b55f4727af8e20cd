package repository

import "github.com/jhoicas/Gmao-api/internal/domain/entity"

// ZoneRepository define el puerto de persistencia para Zone.
type ZoneRepository interface {
	Create(zone *entity.Zone) error
	GetByID(id string) (*entity.Zone, error)
	ListBySite(siteID string, limit, offset int) ([]*entity.Zone, error)
	Update(zone *entity.Zone) error
	Delete(id string) error
}
