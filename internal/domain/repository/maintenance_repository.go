package repository

import "github.com/jhoicas/Gmao-api/internal/domain/entity"

// MaintenanceRepository define el puerto de persistencia para Maintenance.
type MaintenanceRepository interface {
	Create(maintenance *entity.Maintenance) error
	GetByID(id string) (*entity.Maintenance, error)
	ListBySite(siteID, status string, limit, offset int) ([]*entity.Maintenance, error)
	Update(maintenance *entity.Maintenance) error
	Delete(id string) error
}
