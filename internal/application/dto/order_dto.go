package dto

// OrderProductSummary producto dentro del resumen de un usuario.
type OrderProductSummary struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
}

// UserOrderSummary resumen de pedidos de un usuario: totales más desglose por producto.
type UserOrderSummary struct {
	UserID        string                `json:"userId"`
	Name          string                `json:"name"`
	Email         string                `json:"email"`
	TotalOrders   int64                 `json:"totalOrders"`
	TotalQuantity int64                 `json:"totalQuantity"`
	Products      []OrderProductSummary `json:"products"`
}

// OrderSummaryResponse resumen de pedidos por usuario, paginado por filas agrupadas.
type OrderSummaryResponse struct {
	Message    string             `json:"message"`
	Pagination PageResponse       `json:"pagination"`
	Data       []UserOrderSummary `json:"data"`
}
