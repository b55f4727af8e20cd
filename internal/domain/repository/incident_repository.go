package repository

import "github.com/jhoicas/Gmao-api/internal/domain/entity"

// IncidentRepository define el puerto de persistencia para Incident.
type IncidentRepository interface {
	Create(incident *entity.Incident) error
	GetByID(id string) (*entity.Incident, error)
	ListBySite(siteID, status string, limit, offset int) ([]*entity.Incident, error)
	Update(incident *entity.Incident) error
	Delete(id string) error
}
