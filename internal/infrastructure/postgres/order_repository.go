package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste un nuevo pedido.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, user_id, product_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.UserID, order.ProductID, order.Quantity, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// Summary agrupa pedidos por (usuario, producto): COUNT(*) y SUM(quantity),
// orden primario user_id ascendente (desempate por product_id para salida
// estable), LIMIT/OFFSET sobre las filas agrupadas.
func (r *OrderRepo) Summary(ctx context.Context, limit, offset int) ([]repository.OrderGroup, error) {
	const query = `
		SELECT user_id, product_id, COUNT(*) AS orders_count, SUM(quantity) AS total_quantity
		FROM orders
		GROUP BY user_id, product_id
		ORDER BY user_id ASC, product_id ASC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("orders.Summary: %w", err)
	}
	defer rows.Close()
	var groups []repository.OrderGroup
	for rows.Next() {
		var g repository.OrderGroup
		if err := rows.Scan(&g.UserID, &g.ProductID, &g.OrdersCount, &g.TotalQuantity); err != nil {
			return nil, fmt.Errorf("orders.Summary scan: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// SummaryCount total de filas agrupadas; estable mientras no cambien los pedidos.
func (r *OrderRepo) SummaryCount(ctx context.Context) (int64, error) {
	const query = `
		SELECT COUNT(*) FROM (
			SELECT 1 FROM orders GROUP BY user_id, product_id
		) grouped`
	var total int64
	if err := r.q.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("orders.SummaryCount: %w", err)
	}
	return total, nil
}
