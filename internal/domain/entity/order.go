package entity

import "time"

// Order referencia un User y un Product con una cantidad.
type Order struct {
	ID        string
	UserID    string
	ProductID string
	Quantity  int64
	CreatedAt time.Time
}
