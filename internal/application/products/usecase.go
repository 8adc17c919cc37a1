package products

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/application/stock"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

// UseCase aplica reglas de negocio para el catálogo de productos: listado
// filtrado, alta con stock inicial, mutaciones autorizadas y desglose por
// proveedor.
type UseCase struct {
	txRunner     stock.TxRunner
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	stockRepo    repository.StockRepository
}

// NewUseCase construye el caso de uso con los puertos de persistencia.
func NewUseCase(txRunner stock.TxRunner, productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository, stockRepo repository.StockRepository) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		stockRepo:    stockRepo,
	}
}

// List lista productos con filtros de precio y de stock total derivado,
// ordenamiento con lista blanca y paginación.
func (uc *UseCase) List(req *dto.ProductFilterRequest) (*dto.ProductListResponse, error) {
	filter := repository.ProductFilter{
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		MinStock: req.MinStock,
		MaxStock: req.MaxStock,
		Desc:     req.Order == "desc",
		Limit:    req.Limit,
		Offset:   req.Offset,
	}
	switch req.SortBy {
	case repository.ProductSortPrice, repository.ProductSortStock:
		filter.SortBy = req.SortBy
	default:
		filter.SortBy = repository.ProductSortID
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	list, err := uc.productRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("listando productos: %w", err)
	}
	data := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		data = append(data, toProductResponse(&p))
	}
	return &dto.ProductListResponse{
		Message: "Products list",
		Data:    data,
		Page:    dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// GetByID obtiene un producto con su stock total; nil si no existe.
func (uc *UseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetWithStock(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// Create crea un producto junto con la fila de stock inicial del proveedor
// que lo crea, en una sola transacción.
func (uc *UseCase) Create(ctx context.Context, supplierUserID string, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	supplier, err := uc.supplierRepo.GetByUserID(supplierUserID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}
	if req.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, productRepo repository.ProductRepository) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		return stockRepo.IncrementUpsert(product.ID, supplier.ID, req.InitialStock)
	})
	if err != nil {
		return nil, fmt.Errorf("creando producto con stock inicial: %w", err)
	}
	return &dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		TotalStock:  req.InitialStock,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}, nil
}

// Update actualiza un producto. Autorizado para admin o para el proveedor
// que suministra el producto (tiene al menos una fila de stock).
func (uc *UseCase) Update(id, principalID, principalRole string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if err := uc.authorizeMutation(id, principalID, principalRole); err != nil {
		return nil, err
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *req.Price
	}
	product.UpdatedAt = time.Now().UTC()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, fmt.Errorf("actualizando producto: %w", err)
	}
	total, err := uc.stockRepo.TotalByProduct(id)
	if err != nil {
		return nil, err
	}
	return &dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImagePath:   product.ImagePath,
		TotalStock:  total,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}, nil
}

// Delete elimina un producto. Misma regla de autorización que Update.
func (uc *UseCase) Delete(id, principalID, principalRole string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	if err := uc.authorizeMutation(id, principalID, principalRole); err != nil {
		return err
	}
	return uc.productRepo.Delete(id)
}

// SetImage persiste la ruta de la imagen subida. Solo el proveedor que
// suministra el producto puede cambiarla.
func (uc *UseCase) SetImage(id, principalID, imagePath string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	supplier, err := uc.supplierRepo.GetByUserID(principalID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrForbidden
	}
	row, err := uc.stockRepo.Get(id, supplier.ID)
	if err != nil {
		return err
	}
	if row == nil {
		return domain.ErrNotProductSupplier
	}
	return uc.productRepo.UpdateImagePath(id, imagePath)
}

// SupplierCatalog lista todos los productos con stock total y desglose por
// proveedor. Visible solo para proveedores.
func (uc *UseCase) SupplierCatalog() (*dto.SupplierProductListResponse, error) {
	list, err := uc.productRepo.List(repository.ProductFilter{Limit: 100})
	if err != nil {
		return nil, fmt.Errorf("listando catálogo: %w", err)
	}
	data := make([]dto.SupplierProductResponse, 0, len(list))
	for _, p := range list {
		breakdown, err := uc.stockRepo.ListByProduct(p.Product.ID)
		if err != nil {
			return nil, fmt.Errorf("desglose de stock: %w", err)
		}
		item := dto.SupplierProductResponse{
			ProductResponse: toProductResponse(&p),
			Suppliers:       []dto.SupplierStockItem{},
		}
		for _, s := range breakdown {
			item.Suppliers = append(item.Suppliers, dto.SupplierStockItem{
				SupplierID:   s.SupplierID,
				SupplierName: s.SupplierName,
				Quantity:     s.Quantity,
			})
		}
		data = append(data, item)
	}
	return &dto.SupplierProductListResponse{
		Status:  "success",
		Message: "Products with supplier breakdown",
		Data:    data,
	}, nil
}

// authorizeMutation permite mutar a un admin o al proveedor que tiene al
// menos una fila de stock sobre el producto.
func (uc *UseCase) authorizeMutation(productID, principalID, principalRole string) error {
	if principalRole == entity.RoleAdmin {
		return nil
	}
	if principalRole != entity.RoleSupplier {
		return domain.ErrForbidden
	}
	supplier, err := uc.supplierRepo.GetByUserID(principalID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrForbidden
	}
	row, err := uc.stockRepo.Get(productID, supplier.ID)
	if err != nil {
		return err
	}
	if row == nil {
		return domain.ErrNotProductSupplier
	}
	return nil
}

func toProductResponse(p *repository.ProductWithStock) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.Product.ID,
		Name:        p.Product.Name,
		Description: p.Product.Description,
		Price:       p.Product.Price,
		ImagePath:   p.Product.ImagePath,
		TotalStock:  p.TotalStock,
		CreatedAt:   p.Product.CreatedAt,
		UpdatedAt:   p.Product.UpdatedAt,
	}
}
