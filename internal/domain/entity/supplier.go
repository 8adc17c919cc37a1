package entity

import "time"

// Supplier representa un proveedor; pertenece a exactamente un User con rol supplier.
type Supplier struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
}
