package stock

import (
	"context"

	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

// ReconcileUseCase aplica lotes de stock (producto, proveedor, cantidad) de
// forma transaccional: valida el lote completo y hace upsert con incremento
// dentro de una sola transacción (Commit o Rollback, nunca efecto parcial).
type ReconcileUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(txRunner TxRunner, productRepo repository.ProductRepository, supplierRepo repository.SupplierRepository) *ReconcileUseCase {
	return &ReconcileUseCase{txRunner: txRunner, productRepo: productRepo, supplierRepo: supplierRepo}
}

// Reconcile valida y aplica el lote.
// Validación (sin efecto parcial): lote no vacío, toda cantidad > 0, y todo
// productId/supplierId referenciado debe existir (set-membership contra los
// ids existentes). Pares (producto, proveedor) duplicados dentro del mismo
// lote acumulan: cada entrada incrementa de nuevo.
func (uc *ReconcileUseCase) Reconcile(ctx context.Context, items []dto.StockItemRequest) error {
	if len(items) == 0 {
		return domain.ErrEmptyStockBatch
	}
	productIDs := make([]string, 0, len(items))
	supplierIDs := make([]string, 0, len(items))
	seenProduct := make(map[string]bool, len(items))
	seenSupplier := make(map[string]bool, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return domain.ErrInvalidQuantity
		}
		if !seenProduct[item.ProductID] {
			seenProduct[item.ProductID] = true
			productIDs = append(productIDs, item.ProductID)
		}
		if !seenSupplier[item.SupplierID] {
			seenSupplier[item.SupplierID] = true
			supplierIDs = append(supplierIDs, item.SupplierID)
		}
	}

	existingProducts, err := uc.productRepo.ExistingIDs(productIDs)
	if err != nil {
		return err
	}
	for _, id := range productIDs {
		if !existingProducts[id] {
			return domain.ErrProductNotFound
		}
	}
	existingSuppliers, err := uc.supplierRepo.ExistingIDs(supplierIDs)
	if err != nil {
		return err
	}
	for _, id := range supplierIDs {
		if !existingSuppliers[id] {
			return domain.ErrSupplierNotFound
		}
	}

	// Todos los upserts confirman juntos o ninguno (TxRunner hace Commit/Rollback).
	return uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, _ repository.ProductRepository) error {
		for _, item := range items {
			if err := stockRepo.IncrementUpsert(item.ProductID, item.SupplierID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
}
