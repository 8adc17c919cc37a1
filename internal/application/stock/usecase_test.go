package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/application/stock"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

const (
	productA  = "11111111-1111-1111-1111-111111111111"
	productB  = "22222222-2222-2222-2222-222222222222"
	supplierX = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	supplierY = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
)

// Los fakes embeben la interfaz para no implementar los métodos que la
// conciliación no usa.

type fakeProductRepo struct {
	repository.ProductRepository
	existing map[string]bool
}

func (r *fakeProductRepo) ExistingIDs(ids []string) (map[string]bool, error) {
	out := make(map[string]bool)
	for _, id := range ids {
		if r.existing[id] {
			out[id] = true
		}
	}
	return out, nil
}

type fakeSupplierRepo struct {
	repository.SupplierRepository
	existing map[string]bool
}

func (r *fakeSupplierRepo) ExistingIDs(ids []string) (map[string]bool, error) {
	out := make(map[string]bool)
	for _, id := range ids {
		if r.existing[id] {
			out[id] = true
		}
	}
	return out, nil
}

// fakeStockRepo acumula las cantidades por par (producto, proveedor),
// como el upsert con incremento real.
type fakeStockRepo struct {
	repository.StockRepository
	quantities map[[2]string]int64
}

func (r *fakeStockRepo) IncrementUpsert(productID, supplierID string, quantity int64) error {
	if r.quantities == nil {
		r.quantities = make(map[[2]string]int64)
	}
	r.quantities[[2]string{productID, supplierID}] += quantity
	return nil
}

type fakeTxRunner struct {
	stockRepo *fakeStockRepo
	runs      int
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(repository.StockRepository, repository.ProductRepository) error) error {
	tx.runs++
	return fn(tx.stockRepo, nil)
}

func newReconcileUseCase(products, suppliers []string) (*stock.ReconcileUseCase, *fakeTxRunner) {
	toSet := func(ids []string) map[string]bool {
		m := make(map[string]bool)
		for _, id := range ids {
			m[id] = true
		}
		return m
	}
	tx := &fakeTxRunner{stockRepo: &fakeStockRepo{}}
	uc := stock.NewReconcileUseCase(tx,
		&fakeProductRepo{existing: toSet(products)},
		&fakeSupplierRepo{existing: toSet(suppliers)},
	)
	return uc, tx
}

func TestReconcile_LoteVacio(t *testing.T) {
	uc, tx := newReconcileUseCase([]string{productA}, []string{supplierX})

	err := uc.Reconcile(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrEmptyStockBatch)
	assert.Zero(t, tx.runs, "no debe abrirse transacción")
}

func TestReconcile_CantidadNoPositiva(t *testing.T) {
	uc, tx := newReconcileUseCase([]string{productA}, []string{supplierX})

	err := uc.Reconcile(context.Background(), []dto.StockItemRequest{
		{ProductID: productA, SupplierID: supplierX, Quantity: 0},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Zero(t, tx.runs)
}

func TestReconcile_ProductoInexistenteAbortaTodo(t *testing.T) {
	uc, tx := newReconcileUseCase([]string{productA}, []string{supplierX})

	err := uc.Reconcile(context.Background(), []dto.StockItemRequest{
		{ProductID: productA, SupplierID: supplierX, Quantity: 5},
		{ProductID: productB, SupplierID: supplierX, Quantity: 3},
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Zero(t, tx.runs, "ninguna entrada del lote debe aplicarse")
}

func TestReconcile_ProveedorInexistenteAbortaTodo(t *testing.T) {
	uc, tx := newReconcileUseCase([]string{productA}, []string{supplierX})

	err := uc.Reconcile(context.Background(), []dto.StockItemRequest{
		{ProductID: productA, SupplierID: supplierY, Quantity: 3},
	})
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
	assert.Zero(t, tx.runs)
}

func TestReconcile_AplicaElLoteEnUnaTransaccion(t *testing.T) {
	uc, tx := newReconcileUseCase([]string{productA}, []string{supplierX})

	require.NoError(t, uc.Reconcile(context.Background(), []dto.StockItemRequest{
		{ProductID: productA, SupplierID: supplierX, Quantity: 5},
	}))
	assert.Equal(t, 1, tx.runs)
	assert.Equal(t, int64(5), tx.stockRepo.quantities[[2]string{productA, supplierX}])
}

func TestReconcile_ParesDuplicadosAcumulan(t *testing.T) {
	uc, tx := newReconcileUseCase([]string{productA}, []string{supplierX})

	require.NoError(t, uc.Reconcile(context.Background(), []dto.StockItemRequest{
		{ProductID: productA, SupplierID: supplierX, Quantity: 5},
		{ProductID: productA, SupplierID: supplierX, Quantity: 7},
	}))
	assert.Equal(t, int64(12), tx.stockRepo.quantities[[2]string{productA, supplierX}],
		"entradas repetidas del mismo par deben sumar")
}
