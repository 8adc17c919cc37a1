package repository

import "github.com/jhoicas/Mercado-api/internal/domain/entity"

// StockWithSupplier fila de stock con los datos del proveedor (desglose por producto).
type StockWithSupplier struct {
	SupplierID   string
	SupplierName string
	Quantity     int64
}

// StockRepository define el puerto para consultar/actualizar las filas de
// stock (producto, proveedor). Usado dentro de transacciones para garantizar
// consistencia.
type StockRepository interface {
	// Get obtiene la fila de stock; nil si no existe.
	Get(productID, supplierID string) (*entity.ProductStock, error)
	// IncrementUpsert suma quantity a la fila (producto, proveedor), creándola
	// si no existe. Llamadas repetidas sobre el mismo par acumulan.
	IncrementUpsert(productID, supplierID string, quantity int64) error
	// TotalByProduct devuelve el stock total derivado de un producto.
	TotalByProduct(productID string) (int64, error)
	// ListByProduct desglose de stock por proveedor para un producto.
	ListByProduct(productID string) ([]StockWithSupplier, error)
}
