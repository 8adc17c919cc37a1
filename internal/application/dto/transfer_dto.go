package dto

// TransferPointsRequest entrada de la transferencia de puntos.
// Amount se valida en el caso de uso para reportar condiciones distintas
// (monto no positivo, emisor=receptor, saldo insuficiente).
type TransferPointsRequest struct {
	SenderID   string `json:"senderId" validate:"required,uuid"`
	ReceiverID string `json:"receiverId" validate:"required,uuid"`
	Amount     int64  `json:"amount"`
}

// TransferPointsResponse confirmación de transferencia.
type TransferPointsResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
