package repository

import "github.com/jhoicas/Mercado-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.User, error)
	// GetForUpdate bloquea la fila del usuario (SELECT FOR UPDATE).
	// Usar solo dentro de una transacción (transferencia de puntos).
	GetForUpdate(id string) (*entity.User, error)
	// AddPoints suma delta (puede ser negativo) al saldo de puntos.
	AddPoints(id string, delta int64) error
	// GetByIDs obtiene varios usuarios por ID (enriquecimiento de agregaciones).
	GetByIDs(ids []string) (map[string]*entity.User, error)
}
