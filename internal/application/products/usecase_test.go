package products_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/application/products"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

const (
	productID      = "11111111-1111-1111-1111-111111111111"
	supplierID     = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	supplierUserID = "00000000-0000-0000-0000-000000000001"
	adminUserID    = "00000000-0000-0000-0000-000000000002"
	strangerUserID = "00000000-0000-0000-0000-000000000003"
)

type fakeProductRepo struct {
	repository.ProductRepository
	products map[string]*entity.Product
	deleted  []string
	created  *entity.Product
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if p := r.products[id]; p != nil {
		copied := *p
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.created = p
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeSupplierRepo struct {
	repository.SupplierRepository
	byUser map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) GetByUserID(userID string) (*entity.Supplier, error) {
	return r.byUser[userID], nil
}

type fakeStockRepo struct {
	repository.StockRepository
	rows     map[[2]string]int64
	upserted [][2]string
}

func (r *fakeStockRepo) Get(productID, supplierID string) (*entity.ProductStock, error) {
	if qty, ok := r.rows[[2]string{productID, supplierID}]; ok {
		return &entity.ProductStock{ProductID: productID, SupplierID: supplierID, Quantity: qty}, nil
	}
	return nil, nil
}

func (r *fakeStockRepo) IncrementUpsert(productID, supplierID string, quantity int64) error {
	if r.rows == nil {
		r.rows = make(map[[2]string]int64)
	}
	r.rows[[2]string{productID, supplierID}] += quantity
	r.upserted = append(r.upserted, [2]string{productID, supplierID})
	return nil
}

type fakeTxRunner struct {
	stockRepo   *fakeStockRepo
	productRepo *fakeProductRepo
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(repository.StockRepository, repository.ProductRepository) error) error {
	return fn(tx.stockRepo, tx.productRepo)
}

func newFixture() (*products.UseCase, *fakeProductRepo, *fakeStockRepo) {
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		productID: {ID: productID, Name: "Café", Price: decimal.NewFromInt(32000)},
	}}
	stockRepo := &fakeStockRepo{rows: map[[2]string]int64{
		{productID, supplierID}: 100,
	}}
	supplierRepo := &fakeSupplierRepo{byUser: map[string]*entity.Supplier{
		supplierUserID: {ID: supplierID, UserID: supplierUserID, Name: "Acme"},
	}}
	uc := products.NewUseCase(&fakeTxRunner{stockRepo: stockRepo, productRepo: productRepo},
		productRepo, supplierRepo, stockRepo)
	return uc, productRepo, stockRepo
}

func TestDelete_AdminPuedeEliminar(t *testing.T) {
	uc, productRepo, _ := newFixture()

	require.NoError(t, uc.Delete(productID, adminUserID, entity.RoleAdmin))
	assert.Equal(t, []string{productID}, productRepo.deleted)
}

func TestDelete_ProveedorConStockPuedeEliminar(t *testing.T) {
	uc, productRepo, _ := newFixture()

	require.NoError(t, uc.Delete(productID, supplierUserID, entity.RoleSupplier))
	assert.Equal(t, []string{productID}, productRepo.deleted)
}

func TestDelete_UsuarioComunProhibido(t *testing.T) {
	uc, productRepo, _ := newFixture()

	err := uc.Delete(productID, strangerUserID, entity.RoleUser)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, productRepo.deleted)
}

func TestDelete_ProveedorSinStockProhibido(t *testing.T) {
	uc, productRepo, stockRepo := newFixture()
	delete(stockRepo.rows, [2]string{productID, supplierID})

	err := uc.Delete(productID, supplierUserID, entity.RoleSupplier)
	assert.ErrorIs(t, err, domain.ErrNotProductSupplier)
	assert.Empty(t, productRepo.deleted)
}

func TestDelete_ProductoInexistente(t *testing.T) {
	uc, _, _ := newFixture()

	err := uc.Delete("22222222-2222-2222-2222-222222222222", adminUserID, entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCreate_CreaProductoYStockInicialJuntos(t *testing.T) {
	uc, productRepo, stockRepo := newFixture()

	out, err := uc.Create(context.Background(), supplierUserID, &dto.CreateProductRequest{
		Name:         "Molino manual",
		Description:  "Muelas cónicas",
		Price:        decimal.NewFromInt(145000),
		InitialStock: 25,
	})
	require.NoError(t, err)
	require.NotNil(t, productRepo.created)
	assert.Equal(t, "Molino manual", productRepo.created.Name)
	assert.Equal(t, int64(25), out.TotalStock)
	assert.Equal(t, int64(25), stockRepo.rows[[2]string{productRepo.created.ID, supplierID}],
		"el stock inicial debe quedar a nombre del proveedor creador")
}

func TestCreate_PrecioNegativoRechazado(t *testing.T) {
	uc, productRepo, _ := newFixture()

	_, err := uc.Create(context.Background(), supplierUserID, &dto.CreateProductRequest{
		Name:         "Inválido",
		Price:        decimal.NewFromInt(-1),
		InitialStock: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, productRepo.created)
}

func TestCreate_UsuarioSinProveedorRechazado(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.Create(context.Background(), strangerUserID, &dto.CreateProductRequest{
		Name:         "Tetera",
		Price:        decimal.NewFromInt(98000),
		InitialStock: 5,
	})
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
}
