package repository

import "github.com/jhoicas/Gmao-api/internal/domain/entity"

// SiteRepository define el puerto de persistencia para Site.
type SiteRepository interface {
	Create(site *entity.Site) error
	GetByID(id string) (*entity.Site, error)
	List(limit, offset int) ([]*entity.Site, error)
	Update(site *entity.Site) error
}
