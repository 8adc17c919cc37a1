package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto (solo proveedores).
// El producto nace con una fila de stock inicial del proveedor que lo crea.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required,min=3,max=200"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	InitialStock int64           `json:"initialStock" validate:"required,gt=0"`
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=3,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

// ProductResponse salida pública de un producto. TotalStock es derivado
// (suma de las filas de stock); el desglose por proveedor no se expone aquí.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImagePath   string          `json:"image_path,omitempty"`
	TotalStock  int64           `json:"totalStock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Message string            `json:"message"`
	Data    []ProductResponse `json:"data"`
	Page    PageResponse      `json:"pagination"`
}

// SupplierStockItem cantidad aportada por un proveedor a un producto.
type SupplierStockItem struct {
	SupplierID   string `json:"supplierId"`
	SupplierName string `json:"supplierName"`
	Quantity     int64  `json:"quantity"`
}

// SupplierProductResponse producto con desglose de stock por proveedor
// (visible solo para proveedores).
type SupplierProductResponse struct {
	ProductResponse
	Suppliers []SupplierStockItem `json:"suppliers"`
}

// SupplierProductListResponse catálogo con desglose para proveedores.
type SupplierProductListResponse struct {
	Status  string                    `json:"status"`
	Message string                    `json:"message"`
	Data    []SupplierProductResponse `json:"data"`
}

// ProductFilterRequest query params del listado público de productos.
type ProductFilterRequest struct {
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	MinStock *int64
	MaxStock *int64
	SortBy   string
	Order    string
	Limit    int
	Offset   int
}
