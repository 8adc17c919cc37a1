package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, image_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.ImagePath,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, description, price, image_path, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.ImagePath, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetWithStock obtiene un producto con su stock total derivado; nil si no existe.
func (r *ProductRepo) GetWithStock(id string) (*repository.ProductWithStock, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price, p.image_path, p.created_at, p.updated_at,
		       COALESCE(SUM(ps.quantity), 0) AS total_stock
		FROM products p
		LEFT JOIN product_stocks ps ON ps.product_id = p.id
		WHERE p.id = $1
		GROUP BY p.id`
	var out repository.ProductWithStock
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&out.Product.ID, &out.Product.Name, &out.Product.Description, &out.Product.Price,
		&out.Product.ImagePath, &out.Product.CreatedAt, &out.Product.UpdatedAt, &out.TotalStock,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product with stock: %w", err)
	}
	return &out, nil
}

// Update actualiza nombre, descripción y precio de un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateImagePath actualiza solo la ruta de la imagen del producto.
func (r *ProductRepo) UpdateImagePath(id, imagePath string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET image_path = $2, updated_at = now() WHERE id = $1`,
		id, imagePath,
	)
	if err != nil {
		return fmt.Errorf("update product image: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID. Retorna ErrNotFound si no existía.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List aplica filtros de precio y de stock total derivado, ordenamiento y
// paginación. Los filtros de precio van en WHERE; los de stock en HAVING
// porque operan sobre el agregado.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]repository.ProductWithStock, error) {
	var (
		where  []string
		having []string
		args   []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.MinPrice != nil {
		where = append(where, "p.price >= "+arg(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		where = append(where, "p.price <= "+arg(*filter.MaxPrice))
	}
	if filter.MinStock != nil {
		having = append(having, "COALESCE(SUM(ps.quantity), 0) >= "+arg(*filter.MinStock))
	}
	if filter.MaxStock != nil {
		having = append(having, "COALESCE(SUM(ps.quantity), 0) <= "+arg(*filter.MaxStock))
	}

	query := `
		SELECT p.id, p.name, p.description, p.price, p.image_path, p.created_at, p.updated_at,
		       COALESCE(SUM(ps.quantity), 0) AS total_stock
		FROM products p
		LEFT JOIN product_stocks ps ON ps.product_id = p.id`
	if len(where) > 0 {
		query += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	query += "\n\t\tGROUP BY p.id"
	if len(having) > 0 {
		query += "\n\t\tHAVING " + strings.Join(having, " AND ")
	}

	// Columna de orden con lista blanca: nunca interpolar entrada del cliente.
	orderCol := "p.id"
	switch filter.SortBy {
	case repository.ProductSortPrice:
		orderCol = "p.price"
	case repository.ProductSortStock:
		orderCol = "total_stock"
	}
	direction := "ASC"
	if filter.Desc {
		direction = "DESC"
	}
	query += fmt.Sprintf("\n\t\tORDER BY %s %s, p.id ASC", orderCol, direction)
	query += fmt.Sprintf("\n\t\tLIMIT %s OFFSET %s", arg(filter.Limit), arg(filter.Offset))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductWithStock
	for rows.Next() {
		var item repository.ProductWithStock
		if err := rows.Scan(&item.Product.ID, &item.Product.Name, &item.Product.Description,
			&item.Product.Price, &item.Product.ImagePath, &item.Product.CreatedAt,
			&item.Product.UpdatedAt, &item.TotalStock); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// ExistingIDs devuelve el subconjunto de ids que existen en products.
func (r *ProductRepo) ExistingIDs(ids []string) (map[string]bool, error) {
	result := make(map[string]bool, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	rows, err := r.q.Query(context.Background(), `SELECT id FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("existing product ids: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan product id: %w", err)
		}
		result[id] = true
	}
	return result, rows.Err()
}

// GetByIDs obtiene varios productos por ID, como mapa id -> producto.
func (r *ProductRepo) GetByIDs(ids []string) (map[string]*entity.Product, error) {
	result := make(map[string]*entity.Product, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	query := `
		SELECT id, name, description, price, image_path, created_at, updated_at
		FROM products WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("get products by ids: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImagePath, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		result[p.ID] = &p
	}
	return result, rows.Err()
}
