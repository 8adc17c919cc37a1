package entity

import "time"

// ProductStock es la fila de stock por (producto, proveedor).
// Única por par; Quantity nunca negativa.
type ProductStock struct {
	ProductID  string
	SupplierID string
	Quantity   int64
	UpdatedAt  time.Time
}
