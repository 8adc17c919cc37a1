package orders_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mercado-api/internal/application/orders"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

const (
	userA    = "00000000-0000-0000-0000-00000000000a"
	userB    = "00000000-0000-0000-0000-00000000000b"
	productX = "11111111-1111-1111-1111-111111111111"
	productY = "22222222-2222-2222-2222-222222222222"
)

type fakeOrderRepo struct {
	repository.OrderRepository
	groups []repository.OrderGroup
	total  int64
}

func (r *fakeOrderRepo) Summary(_ context.Context, limit, offset int) ([]repository.OrderGroup, error) {
	if offset >= len(r.groups) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.groups) {
		end = len(r.groups)
	}
	return r.groups[offset:end], nil
}

func (r *fakeOrderRepo) SummaryCount(context.Context) (int64, error) { return r.total, nil }

type fakeUserRepo struct {
	repository.UserRepository
	users map[string]*entity.User
}

func (r *fakeUserRepo) GetByIDs(ids []string) (map[string]*entity.User, error) {
	out := make(map[string]*entity.User)
	for _, id := range ids {
		if u := r.users[id]; u != nil {
			out[id] = u
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	repository.ProductRepository
	products map[string]*entity.Product
}

func (r *fakeProductRepo) GetByIDs(ids []string) (map[string]*entity.Product, error) {
	out := make(map[string]*entity.Product)
	for _, id := range ids {
		if p := r.products[id]; p != nil {
			out[id] = p
		}
	}
	return out, nil
}

func TestSummary_ConsolidaPorUsuarioConservandoElOrden(t *testing.T) {
	orderRepo := &fakeOrderRepo{
		groups: []repository.OrderGroup{
			{UserID: userA, ProductID: productX, OrdersCount: 2, TotalQuantity: 3},
			{UserID: userA, ProductID: productY, OrdersCount: 1, TotalQuantity: 1},
			{UserID: userB, ProductID: productX, OrdersCount: 1, TotalQuantity: 5},
		},
		total: 3,
	}
	uc := orders.NewSummaryUseCase(orderRepo,
		&fakeUserRepo{users: map[string]*entity.User{
			userA: {ID: userA, Name: "Ana", Email: "ana@mail.com"},
			userB: {ID: userB, Name: "Benito", Email: "benito@mail.com"},
		}},
		&fakeProductRepo{products: map[string]*entity.Product{
			productX: {ID: productX, Name: "Café"},
			productY: {ID: productY, Name: "Molino"},
		}},
	)

	out, err := uc.Summary(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, out.Data, 2, "las filas agrupadas deben consolidarse por usuario")

	ana := out.Data[0]
	assert.Equal(t, userA, ana.UserID, "el orden por user_id ascendente debe conservarse")
	assert.Equal(t, "Ana", ana.Name)
	assert.Equal(t, int64(3), ana.TotalOrders)
	assert.Equal(t, int64(4), ana.TotalQuantity)
	require.Len(t, ana.Products, 2)
	assert.Equal(t, "Café", ana.Products[0].Name)
	assert.Equal(t, int64(3), ana.Products[0].Quantity)

	benito := out.Data[1]
	assert.Equal(t, int64(1), benito.TotalOrders)
	assert.Equal(t, int64(5), benito.TotalQuantity)

	assert.Equal(t, int64(3), out.Pagination.Total, "el total cuenta filas agrupadas, no usuarios")
}

func TestSummary_PaginaSobreFilasAgrupadas(t *testing.T) {
	orderRepo := &fakeOrderRepo{
		groups: []repository.OrderGroup{
			{UserID: userA, ProductID: productX, OrdersCount: 1, TotalQuantity: 1},
			{UserID: userA, ProductID: productY, OrdersCount: 1, TotalQuantity: 2},
			{UserID: userB, ProductID: productX, OrdersCount: 1, TotalQuantity: 3},
		},
		total: 3,
	}
	uc := orders.NewSummaryUseCase(orderRepo,
		&fakeUserRepo{users: map[string]*entity.User{userA: {ID: userA, Name: "Ana"}}},
		&fakeProductRepo{products: map[string]*entity.Product{}},
	)

	// limit=2 corta dentro del grupo de Ana: la página contiene solo a Ana
	out, err := uc.Summary(context.Background(), 2, 0)
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.Len(t, out.Data[0].Products, 2)
}

func TestSummary_SinPedidos(t *testing.T) {
	uc := orders.NewSummaryUseCase(&fakeOrderRepo{},
		&fakeUserRepo{users: map[string]*entity.User{}},
		&fakeProductRepo{products: map[string]*entity.Product{}},
	)

	out, err := uc.Summary(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Empty(t, out.Data)
	assert.Zero(t, out.Pagination.Total)
}
