package points

import (
	"context"

	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con el repo de
// usuarios atado a esa tx. Garantiza que débito y crédito confirmen juntos.
type TxRunner interface {
	RunPoints(ctx context.Context, fn func(userRepo repository.UserRepository) error) error
}
