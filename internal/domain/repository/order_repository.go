package repository

import (
	"context"

	"github.com/jhoicas/Mercado-api/internal/domain/entity"
)

// OrderGroup fila agregada del resumen de pedidos: GROUP BY (user_id, product_id).
type OrderGroup struct {
	UserID        string
	ProductID     string
	OrdersCount   int64
	TotalQuantity int64
}

// OrderRepository define el puerto de persistencia y agregación para Order.
type OrderRepository interface {
	Create(order *entity.Order) error
	// Summary agrupa pedidos por (usuario, producto) con SUM(quantity) y
	// COUNT(*), ordenado por user_id ascendente, paginado sobre las filas
	// agrupadas.
	Summary(ctx context.Context, limit, offset int) ([]OrderGroup, error)
	// SummaryCount total de filas agrupadas (estable entre páginas).
	SummaryCount(ctx context.Context) (int64, error)
}
