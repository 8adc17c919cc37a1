package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/application/points"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/pkg/validation"
)

// TransferHandler maneja la transferencia de puntos entre usuarios.
type TransferHandler struct {
	uc *points.TransferUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *points.TransferUseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Transfer godoc
// @Summary      Transferir puntos entre usuarios
// @Tags         points
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferPointsRequest  true  "senderId, receiverId, amount"
// @Success      200   {object}  dto.TransferPointsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/transfer-points [post]
func (h *TransferHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferPointsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida", Details: validation.Details(err)})
	}
	if err := h.uc.Transfer(c.UserContext(), in.SenderID, in.ReceiverID, in.Amount); err != nil {
		switch {
		case errors.Is(err, domain.ErrAmountNotPositive),
			errors.Is(err, domain.ErrSameSenderReceiver),
			errors.Is(err, domain.ErrInsufficientPoints):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrSenderNotFound), errors.Is(err, domain.ErrReceiverNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		default:
			return err
		}
	}
	return c.JSON(dto.TransferPointsResponse{Status: "success", Message: "Points transferred successfully"})
}
