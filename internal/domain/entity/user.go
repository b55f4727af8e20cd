package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin       = "admin"
	RoleTecnico     = "tecnico"
	RoleAlmacenista = "almacenista"
)

// User representa un usuario del sistema (pertenece a un Site).
type User struct {
	ID           string
	SiteID       string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, tecnico, almacenista
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
