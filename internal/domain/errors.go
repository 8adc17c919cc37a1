package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Transferencia de puntos
	ErrAmountNotPositive   = errors.New("el monto debe ser mayor que cero")
	ErrSameSenderReceiver  = errors.New("emisor y receptor deben ser distintos")
	ErrSenderNotFound      = errors.New("emisor no encontrado")
	ErrReceiverNotFound    = errors.New("receptor no encontrado")
	ErrInsufficientPoints  = errors.New("puntos insuficientes")

	// Stock
	ErrEmptyStockBatch    = errors.New("la lista de stocks no puede estar vacía")
	ErrInvalidQuantity    = errors.New("la cantidad debe ser mayor que cero")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrSupplierNotFound   = errors.New("proveedor no encontrado")
	ErrNotProductSupplier = errors.New("el proveedor no suministra este producto")
)
