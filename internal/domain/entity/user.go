package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleUser     = "user"
	RoleSupplier = "supplier"
)

// User representa un usuario del sistema (blog y comercio).
// Points es el saldo de puntos transferibles; nunca negativo.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, user, supplier
	Points       int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
