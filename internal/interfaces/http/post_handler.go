package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Mercado-api/internal/application/blog"
	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/pkg/validation"
)

// PostHandler maneja las peticiones HTTP para posts del blog.
type PostHandler struct {
	uc *blog.PostUseCase
}

// NewPostHandler construye el handler.
func NewPostHandler(uc *blog.PostUseCase) *PostHandler {
	return &PostHandler{uc: uc}
}

// List godoc
// @Summary      Listar posts con autor y comentarios
// @Tags         posts
// @Produce      json
// @Param        userId  query  string  false  "Filtrar por autor"
// @Success      200     {object}  dto.PostListResponse
// @Router       /api/v1/posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("userId"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener post por ID
// @Tags         posts
// @Produce      json
// @Param        id   path  string  true  "ID del post"
// @Success      200  {object}  dto.PostDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/posts/{id} [get]
func (h *PostHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return err
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "post no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear post
// @Tags         posts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePostRequest  true  "title, content"
// @Success      201   {object}  dto.PostResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePostRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida", Details: validation.Details(err)})
	}
	out, err := h.uc.Create(GetUserID(c), &in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar post (autor o admin)
// @Tags         posts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del post"
// @Param        body  body  dto.UpdatePostRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PostResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/posts/{id} [put]
func (h *PostHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePostRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida", Details: validation.Details(err)})
	}
	out, err := h.uc.Update(c.Params("id"), GetUserID(c), GetRole(c), &in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "post no encontrado"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo el autor o un admin pueden modificar el post"})
		}
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar post (solo admin)
// @Tags         posts
// @Security     Bearer
// @Param        id   path  string  true  "ID del post"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/posts/{id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "post no encontrado"})
		}
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
