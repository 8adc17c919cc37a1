package orders

import (
	"context"

	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

// SummaryUseCase arma el resumen de pedidos por usuario a partir de la
// agregación (user_id, product_id) y un segundo lookup por los ids distintos
// de la página para enriquecer con nombre/email y nombre de producto.
type SummaryUseCase struct {
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(orderRepo repository.OrderRepository, userRepo repository.UserRepository, productRepo repository.ProductRepository) *SummaryUseCase {
	return &SummaryUseCase{orderRepo: orderRepo, userRepo: userRepo, productRepo: productRepo}
}

// Summary devuelve la página de filas agrupadas consolidada por usuario.
// La paginación opera sobre las filas agrupadas (nunca más de limit), no
// sobre los usuarios resultantes.
func (uc *SummaryUseCase) Summary(ctx context.Context, limit, offset int) (*dto.OrderSummaryResponse, error) {
	groups, err := uc.orderRepo.Summary(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.orderRepo.SummaryCount(ctx)
	if err != nil {
		return nil, err
	}

	// Ids distintos de la página, un lookup por tabla
	var userIDs, productIDs []string
	seenUser := make(map[string]bool)
	seenProduct := make(map[string]bool)
	for _, g := range groups {
		if !seenUser[g.UserID] {
			seenUser[g.UserID] = true
			userIDs = append(userIDs, g.UserID)
		}
		if !seenProduct[g.ProductID] {
			seenProduct[g.ProductID] = true
			productIDs = append(productIDs, g.ProductID)
		}
	}
	users, err := uc.userRepo.GetByIDs(userIDs)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.GetByIDs(productIDs)
	if err != nil {
		return nil, err
	}

	// Consolidar por usuario conservando el orden de la agregación (user_id asc)
	index := make(map[string]int)
	summaries := make([]dto.UserOrderSummary, 0, len(groups))
	for _, g := range groups {
		i, ok := index[g.UserID]
		if !ok {
			s := dto.UserOrderSummary{UserID: g.UserID}
			if u := users[g.UserID]; u != nil {
				s.Name = u.Name
				s.Email = u.Email
			}
			summaries = append(summaries, s)
			i = len(summaries) - 1
			index[g.UserID] = i
		}
		summaries[i].TotalOrders += g.OrdersCount
		summaries[i].TotalQuantity += g.TotalQuantity
		productName := ""
		if p := products[g.ProductID]; p != nil {
			productName = p.Name
		}
		summaries[i].Products = append(summaries[i].Products, dto.OrderProductSummary{
			ProductID: g.ProductID,
			Name:      productName,
			Quantity:  g.TotalQuantity,
		})
	}

	return &dto.OrderSummaryResponse{
		Message:    "Order summary per user",
		Pagination: dto.PageResponse{Limit: limit, Offset: offset, Total: total},
		Data:       summaries,
	}, nil
}
