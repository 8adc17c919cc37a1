package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/application/stock"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/pkg/validation"
)

// StockHandler maneja la conciliación de stock por lote.
type StockHandler struct {
	uc *stock.ReconcileUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.ReconcileUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// UpdateStock godoc
// @Summary      Conciliar stock por lote (proveedor o admin)
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateStockRequest  true  "Lote de stocks a incrementar"
// @Success      200   {object}  dto.UpdateStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/suppliers/stock [post]
func (h *StockHandler) UpdateStock(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida", Details: validation.Details(err)})
	}
	if err := h.uc.Reconcile(c.UserContext(), in.Stocks); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyStockBatch), errors.Is(err, domain.ErrInvalidQuantity):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrProductNotFound), errors.Is(err, domain.ErrSupplierNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		default:
			return err
		}
	}
	return c.JSON(dto.UpdateStockResponse{
		Status:        "success",
		Message:       "Stock updated successfully",
		UpdatedStocks: in.Stocks,
	})
}
