package dto

// StockItemRequest un (producto, proveedor, cantidad) del lote de conciliación.
type StockItemRequest struct {
	ProductID  string `json:"productId" validate:"required,uuid"`
	SupplierID string `json:"supplierId" validate:"required,uuid"`
	Quantity   int64  `json:"quantity" validate:"required,gt=0"`
}

// UpdateStockRequest lote de conciliación de stock. Pares duplicados dentro
// del mismo lote acumulan.
type UpdateStockRequest struct {
	Stocks []StockItemRequest `json:"stocks" validate:"required,min=1,dive"`
}

// UpdateStockResponse confirmación del lote aplicado.
type UpdateStockResponse struct {
	Status        string             `json:"status"`
	Message       string             `json:"message"`
	UpdatedStocks []StockItemRequest `json:"updatedStocks"`
}
