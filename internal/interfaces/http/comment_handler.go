package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Mercado-api/internal/application/blog"
	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain"
)

// CommentHandler maneja listados y resumen de comentarios.
type CommentHandler struct {
	uc *blog.CommentUseCase
}

// NewCommentHandler construye el handler.
func NewCommentHandler(uc *blog.CommentUseCase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

// ListByPost godoc
// @Summary      Listar comentarios de un post
// @Tags         comments
// @Produce      json
// @Param        id     path   string  true   "ID del post"
// @Param        page   query  int     false  "Página"  default(1)
// @Param        limit  query  int     false  "Límite"  default(10)
// @Success      200    {object}  dto.CommentListResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/v1/posts/{id}/comments [get]
func (h *CommentHandler) ListByPost(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	out, err := h.uc.ListByPost(c.Params("id"), page, limit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "post no encontrado"})
		}
		return err
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen de comentarios por post
// @Tags         comments
// @Produce      json
// @Param        page         query  int  false  "Página"  default(1)
// @Param        limit        query  int  false  "Límite"  default(10)
// @Param        minComments  query  int  false  "Mínimo de comentarios por post"
// @Success      200          {object}  dto.CommentSummaryResponse
// @Router       /api/v1/comments [get]
func (h *CommentHandler) Summary(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	// -1 desactiva el filtro; minComments=0 explícito no filtra nada igual
	minComments := int64(c.QueryInt("minComments", -1))
	out, err := h.uc.Summary(c.UserContext(), minComments, page, limit)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
