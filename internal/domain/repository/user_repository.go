package repository

import "github.com/jhoicas/Gmao-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmailAndSite(email, siteID string) (*entity.User, error)
	Update(user *entity.User) error
	ListBySite(siteID string, limit, offset int) ([]*entity.User, error)
	Delete(id string) error
	// FindByEmail alias semántico para uso en auth.
	FindByEmail(email string) (*entity.User, error)
}
