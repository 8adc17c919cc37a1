package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Mercado-api/internal/application/orders"
)

// OrderHandler maneja el resumen de pedidos.
type OrderHandler struct {
	uc *orders.SummaryUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.SummaryUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen de pedidos por usuario
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite de filas agrupadas"  default(10)
// @Param        offset  query  int  false  "Offset"                     default(0)
// @Success      200     {object}  dto.OrderSummaryResponse
// @Router       /api/v1/orders/summary [get]
func (h *OrderHandler) Summary(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.Summary(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
