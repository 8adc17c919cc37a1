package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Mercado-api/internal/domain/entity"
)

// Criterios de ordenamiento para el listado de productos.
const (
	ProductSortID    = "id"
	ProductSortPrice = "price"
	ProductSortStock = "stock"
)

// ProductFilter filtros del listado público de productos.
// Los punteros en nil significan "sin filtro". El stock se compara contra el
// total derivado (SUM de product_stocks).
type ProductFilter struct {
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	MinStock *int64
	MaxStock *int64
	SortBy   string // id | price | stock
	Desc     bool
	Limit    int
	Offset   int
}

// ProductWithStock producto más su stock total derivado.
type ProductWithStock struct {
	Product    entity.Product
	TotalStock int64
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateImagePath(id, imagePath string) error
	Delete(id string) error
	// List aplica filtros de precio/stock, ordenamiento y paginación sobre el
	// stock total derivado.
	List(filter ProductFilter) ([]ProductWithStock, error)
	// GetWithStock obtiene un producto con su stock total; nil si no existe.
	GetWithStock(id string) (*ProductWithStock, error)
	// ExistingIDs devuelve el subconjunto de ids que existen (set-membership).
	ExistingIDs(ids []string) (map[string]bool, error)
	// GetByIDs obtiene varios productos por ID (enriquecimiento de agregaciones).
	GetByIDs(ids []string) (map[string]*entity.Product, error)
}
