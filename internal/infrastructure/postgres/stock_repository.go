package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene la fila de stock de un producto con un proveedor; nil si no existe.
func (r *StockRepo) Get(productID, supplierID string) (*entity.ProductStock, error) {
	query := `
		SELECT product_id, supplier_id, quantity, updated_at
		FROM product_stocks WHERE product_id = $1 AND supplier_id = $2`
	var s entity.ProductStock
	err := r.q.QueryRow(context.Background(), query, productID, supplierID).Scan(
		&s.ProductID, &s.SupplierID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// IncrementUpsert suma quantity a la fila (producto, proveedor), creándola si
// no existe. ON CONFLICT toma el lock de fila, por lo que upserts concurrentes
// sobre el mismo par se serializan sin lost updates.
func (r *StockRepo) IncrementUpsert(productID, supplierID string, quantity int64) error {
	query := `
		INSERT INTO product_stocks (product_id, supplier_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, supplier_id)
		DO UPDATE SET quantity = product_stocks.quantity + EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, productID, supplierID, quantity)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// TotalByProduct devuelve el stock total derivado de un producto.
func (r *StockRepo) TotalByProduct(productID string) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM product_stocks WHERE product_id = $1`,
		productID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total stock: %w", err)
	}
	return total, nil
}

// ListByProduct desglose de stock por proveedor para un producto, ordenado por proveedor.
func (r *StockRepo) ListByProduct(productID string) ([]repository.StockWithSupplier, error) {
	query := `
		SELECT s.id, s.name, ps.quantity
		FROM product_stocks ps
		JOIN suppliers s ON s.id = ps.supplier_id
		WHERE ps.product_id = $1
		ORDER BY s.name ASC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock by product: %w", err)
	}
	defer rows.Close()
	var list []repository.StockWithSupplier
	for rows.Next() {
		var row repository.StockWithSupplier
		if err := rows.Scan(&row.SupplierID, &row.SupplierName, &row.Quantity); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
