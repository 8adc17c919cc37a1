package points_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mercado-api/internal/application/points"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

const (
	aliceID = "00000000-0000-0000-0000-00000000000a"
	bobID   = "00000000-0000-0000-0000-00000000000b"
)

// fakeUserRepo implementación en memoria del puerto de usuarios, suficiente
// para ejercitar la transferencia. Registra el orden de los bloqueos.
type fakeUserRepo struct {
	users     map[string]*entity.User
	lockOrder []string
}

func newFakeUserRepo(balances map[string]int64) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for id, pts := range balances {
		r.users[id] = &entity.User{ID: id, Points: pts}
	}
	return r
}

func (r *fakeUserRepo) Create(*entity.User) error       { return nil }
func (r *fakeUserRepo) Update(*entity.User) error       { return nil }
func (r *fakeUserRepo) Delete(string) error             { return nil }
func (r *fakeUserRepo) GetByEmail(string) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) List(int, int) ([]*entity.User, error)   { return nil, nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetForUpdate(id string) (*entity.User, error) {
	r.lockOrder = append(r.lockOrder, id)
	u := r.users[id]
	if u == nil {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) AddPoints(id string, delta int64) error {
	r.users[id].Points += delta
	return nil
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

// fakeTxRunner ejecuta el callback directamente sobre el repo en memoria.
type fakeTxRunner struct {
	repo *fakeUserRepo
}

func (tx *fakeTxRunner) RunPoints(_ context.Context, fn func(repository.UserRepository) error) error {
	return fn(tx.repo)
}

func newTransferUseCase(balances map[string]int64) (*points.TransferUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo(balances)
	return points.NewTransferUseCase(&fakeTxRunner{repo: repo}), repo
}

func TestTransfer_MueveSaldoYConservaElTotal(t *testing.T) {
	uc, repo := newTransferUseCase(map[string]int64{aliceID: 100, bobID: 30})

	require.NoError(t, uc.Transfer(context.Background(), aliceID, bobID, 40))

	assert.Equal(t, int64(60), repo.users[aliceID].Points)
	assert.Equal(t, int64(70), repo.users[bobID].Points)
	assert.Equal(t, int64(130), repo.users[aliceID].Points+repo.users[bobID].Points,
		"la suma de puntos debe conservarse")
}

func TestTransfer_MontoNoPositivo(t *testing.T) {
	uc, repo := newTransferUseCase(map[string]int64{aliceID: 100, bobID: 30})

	assert.ErrorIs(t, uc.Transfer(context.Background(), aliceID, bobID, 0), domain.ErrAmountNotPositive)
	assert.ErrorIs(t, uc.Transfer(context.Background(), aliceID, bobID, -5), domain.ErrAmountNotPositive)
	assert.Empty(t, repo.lockOrder, "no debe tocarse la base de datos")
}

func TestTransfer_EmisorIgualReceptor(t *testing.T) {
	uc, _ := newTransferUseCase(map[string]int64{aliceID: 100})

	assert.ErrorIs(t, uc.Transfer(context.Background(), aliceID, aliceID, 10), domain.ErrSameSenderReceiver)
}

func TestTransfer_EmisorInexistente(t *testing.T) {
	uc, _ := newTransferUseCase(map[string]int64{bobID: 30})

	err := uc.Transfer(context.Background(), aliceID, bobID, 10)
	assert.ErrorIs(t, err, domain.ErrSenderNotFound)
}

func TestTransfer_ReceptorInexistente(t *testing.T) {
	uc, _ := newTransferUseCase(map[string]int64{aliceID: 100})

	err := uc.Transfer(context.Background(), aliceID, bobID, 10)
	assert.ErrorIs(t, err, domain.ErrReceiverNotFound)
}

func TestTransfer_SaldoInsuficienteNoCambiaSaldos(t *testing.T) {
	uc, repo := newTransferUseCase(map[string]int64{aliceID: 5, bobID: 30})

	err := uc.Transfer(context.Background(), aliceID, bobID, 10)
	assert.ErrorIs(t, err, domain.ErrInsufficientPoints)

	assert.Equal(t, int64(5), repo.users[aliceID].Points, "el saldo del emisor no debe cambiar")
	assert.Equal(t, int64(30), repo.users[bobID].Points, "el saldo del receptor no debe cambiar")
}

func TestTransfer_BloqueaEnOrdenLexicografico(t *testing.T) {
	// Transferencia de bob → alice: aun así alice (id menor) se bloquea primero.
	uc, repo := newTransferUseCase(map[string]int64{aliceID: 100, bobID: 30})

	require.NoError(t, uc.Transfer(context.Background(), bobID, aliceID, 10))
	require.Len(t, repo.lockOrder, 2)
	assert.Equal(t, []string{aliceID, bobID}, repo.lockOrder,
		"los bloqueos deben tomarse en orden lexicográfico de id")
}
