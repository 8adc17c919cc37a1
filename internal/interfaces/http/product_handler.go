package http

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/application/products"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/pkg/validation"
)

// Extensiones de imagen permitidas en la subida.
var allowedImageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
}

// ProductHandler maneja las peticiones HTTP para productos.
type ProductHandler struct {
	uc         *products.UseCase
	uploadsDir string
}

// NewProductHandler construye el handler. uploadsDir es el directorio donde
// se guardan las imágenes subidas.
func NewProductHandler(uc *products.UseCase, uploadsDir string) *ProductHandler {
	return &ProductHandler{uc: uc, uploadsDir: uploadsDir}
}

// List godoc
// @Summary      Listar productos con filtros
// @Tags         products
// @Produce      json
// @Param        minPrice  query  number  false  "Precio mínimo"
// @Param        maxPrice  query  number  false  "Precio máximo"
// @Param        minStock  query  int     false  "Stock total mínimo"
// @Param        maxStock  query  int     false  "Stock total máximo"
// @Param        sortBy    query  string  false  "id | price | stock"
// @Param        order     query  string  false  "asc | desc"
// @Param        limit     query  int     false  "Límite"  default(10)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200       {object}  dto.ProductListResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	req, err := parseProductFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.List(req)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID (con stock total)
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return err
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto con stock inicial (solo proveedor)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "name, description, price, initialStock"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida", Details: validation.Details(err)})
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), &in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el precio no puede ser negativo"})
		}
		if errors.Is(err, domain.ErrSupplierNotFound) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el usuario no tiene proveedor asociado"})
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (admin o proveedor del producto)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida", Details: validation.Details(err)})
	}
	out, err := h.uc.Update(c.Params("id"), GetUserID(c), GetRole(c), &in)
	if err != nil {
		return h.mapMutationError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto (admin o proveedor del producto)
// @Tags         products
// @Security     Bearer
// @Param        id   path  string  true  "ID del producto"
// @Success      204  "sin contenido"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), GetUserID(c), GetRole(c)); err != nil {
		return h.mapMutationError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadImage godoc
// @Summary      Subir imagen de producto (proveedor del producto)
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true  "ID del producto"
// @Param        image  formData  file    true  "Imagen (jpg, jpeg, png, webp)"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id}/image [post]
func (h *ProductHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo multipart 'image' requerido"})
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "formato de imagen no soportado"})
	}

	imagePath := filepath.Join("uploads", uuid.NewString()+ext)
	if err := c.SaveFile(file, filepath.Join(h.uploadsDir, filepath.Base(imagePath))); err != nil {
		return err
	}
	if err := h.uc.SetImage(c.Params("id"), GetUserID(c), imagePath); err != nil {
		return h.mapMutationError(c, err)
	}
	return c.JSON(fiber.Map{"message": "imagen actualizada", "image_path": imagePath})
}

// SupplierCatalog godoc
// @Summary      Listar productos con desglose por proveedor (solo proveedores)
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SupplierProductListResponse
// @Router       /api/v1/suppliers/products [get]
func (h *ProductHandler) SupplierCatalog(c *fiber.Ctx) error {
	out, err := h.uc.SupplierCatalog()
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *ProductHandler) mapMutationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrProductNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrNotProductSupplier):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el proveedor no suministra este producto"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operación no permitida para este rol"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el precio no puede ser negativo"})
	default:
		return err
	}
}

// parseProductFilter interpreta los query params del listado de productos.
func parseProductFilter(c *fiber.Ctx) (*dto.ProductFilterRequest, error) {
	req := &dto.ProductFilterRequest{
		SortBy: c.Query("sortBy"),
		Order:  c.Query("order"),
		Limit:  c.QueryInt("limit", 10),
		Offset: c.QueryInt("offset", 0),
	}
	parseDecimal := func(name string) (*decimal.Decimal, error) {
		raw := c.Query(name)
		if raw == "" {
			return nil, nil
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, errors.New(name + " debe ser numérico")
		}
		return &d, nil
	}
	parseInt := func(name string) (*int64, error) {
		raw := c.Query(name)
		if raw == "" {
			return nil, nil
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.New(name + " debe ser entero")
		}
		return &n, nil
	}

	var err error
	if req.MinPrice, err = parseDecimal("minPrice"); err != nil {
		return nil, err
	}
	if req.MaxPrice, err = parseDecimal("maxPrice"); err != nil {
		return nil, err
	}
	if req.MinStock, err = parseInt("minStock"); err != nil {
		return nil, err
	}
	if req.MaxStock, err = parseInt("maxStock"); err != nil {
		return nil, err
	}
	return req, nil
}
