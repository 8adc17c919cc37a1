package repository

import "github.com/jhoicas/Mercado-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByUserID(userID string) (*entity.Supplier, error)
	// ExistingIDs devuelve el subconjunto de ids que existen (set-membership).
	ExistingIDs(ids []string) (map[string]bool, error)
}
