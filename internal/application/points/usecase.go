package points

import (
	"context"

	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

// TransferUseCase transfiere puntos entre dos usuarios de forma atómica.
// Invariante: la suma de puntos del sistema se conserva (cero-suma); un saldo
// nunca queda negativo.
type TransferUseCase struct {
	txRunner TxRunner
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(txRunner TxRunner) *TransferUseCase {
	return &TransferUseCase{txRunner: txRunner}
}

// Transfer valida y ejecuta la transferencia dentro de una transacción.
// Cada condición de rechazo es un error distinto: monto no positivo,
// emisor=receptor, emisor/receptor inexistente, saldo insuficiente.
// Ambas filas se bloquean (SELECT FOR UPDATE) antes de verificar el saldo,
// de modo que transferencias concurrentes no produzcan saldo negativo.
func (uc *TransferUseCase) Transfer(ctx context.Context, senderID, receiverID string, amount int64) error {
	if amount <= 0 {
		return domain.ErrAmountNotPositive
	}
	if senderID == receiverID {
		return domain.ErrSameSenderReceiver
	}
	return uc.txRunner.RunPoints(ctx, func(userRepo repository.UserRepository) error {
		// Bloquear siempre en orden lexicográfico de id: dos transferencias
		// concurrentes en sentidos opuestos no pueden quedar en deadlock.
		firstID, secondID := senderID, receiverID
		if secondID < firstID {
			firstID, secondID = secondID, firstID
		}
		first, err := userRepo.GetForUpdate(firstID)
		if err != nil {
			return err
		}
		second, err := userRepo.GetForUpdate(secondID)
		if err != nil {
			return err
		}
		sender, receiver := first, second
		if firstID != senderID {
			sender, receiver = second, first
		}
		if sender == nil {
			return domain.ErrSenderNotFound
		}
		if receiver == nil {
			return domain.ErrReceiverNotFound
		}
		if sender.Points < amount {
			return domain.ErrInsufficientPoints
		}
		if err := userRepo.AddPoints(senderID, -amount); err != nil {
			return err
		}
		return userRepo.AddPoints(receiverID, amount)
	})
}
