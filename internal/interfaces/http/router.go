package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Mercado-api/internal/application/auth"
	"github.com/jhoicas/Mercado-api/internal/application/blog"
	"github.com/jhoicas/Mercado-api/internal/application/orders"
	"github.com/jhoicas/Mercado-api/internal/application/points"
	"github.com/jhoicas/Mercado-api/internal/application/products"
	"github.com/jhoicas/Mercado-api/internal/application/stock"
	"github.com/jhoicas/Mercado-api/internal/application/users"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *users.UseCase
	PostUC     *blog.PostUseCase
	CommentUC  *blog.CommentUseCase
	ProductUC  *products.UseCase
	StockUC    *stock.ReconcileUseCase
	TransferUC *points.TransferUseCase
	OrderUC    *orders.SummaryUseCase
	JWTSecret  string
	UploadsDir string
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")
	authRequired := AuthMiddleware(deps.JWTSecret)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/suppliers/login", authHandler.SupplierLogin)

	// Users. /users/points va antes de /users/:id para que no lo capture el parámetro.
	userHandler := NewUserHandler(deps.UserUC)
	api.Get("/users/points", authRequired, userHandler.ListPoints)
	api.Get("/users", userHandler.List)
	api.Get("/users/:id", userHandler.GetByID)
	api.Put("/users/:id", authRequired, RequireRole(entity.RoleAdmin), userHandler.Update)
	api.Delete("/users/:id", authRequired, RequireRole(entity.RoleAdmin), userHandler.Delete)

	// Blog
	postHandler := NewPostHandler(deps.PostUC)
	commentHandler := NewCommentHandler(deps.CommentUC)
	api.Get("/posts", postHandler.List)
	api.Get("/posts/:id", postHandler.GetByID)
	api.Get("/posts/:id/comments", commentHandler.ListByPost)
	api.Post("/posts", authRequired, postHandler.Create)
	api.Put("/posts/:id", authRequired, postHandler.Update)
	api.Delete("/posts/:id", authRequired, RequireRole(entity.RoleAdmin), postHandler.Delete)
	api.Get("/comments", commentHandler.Summary)

	// Products
	productHandler := NewProductHandler(deps.ProductUC, deps.UploadsDir)
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.GetByID)
	api.Post("/products", authRequired, RequireRole(entity.RoleSupplier), productHandler.Create)
	api.Put("/products/:id", authRequired, RequireRole(entity.RoleAdmin, entity.RoleSupplier), productHandler.Update)
	api.Delete("/products/:id", authRequired, RequireRole(entity.RoleAdmin, entity.RoleSupplier), productHandler.Delete)
	api.Post("/products/:id/image", authRequired, RequireRole(entity.RoleSupplier), productHandler.UploadImage)

	// Suppliers
	stockHandler := NewStockHandler(deps.StockUC)
	api.Get("/suppliers/products", authRequired, RequireRole(entity.RoleSupplier), productHandler.SupplierCatalog)
	api.Post("/suppliers/stock", authRequired, RequireRole(entity.RoleAdmin, entity.RoleSupplier), stockHandler.UpdateStock)

	// Points
	transferHandler := NewTransferHandler(deps.TransferUC)
	api.Post("/transfer-points", authRequired, transferHandler.Transfer)

	// Orders
	orderHandler := NewOrderHandler(deps.OrderUC)
	api.Get("/orders/summary", authRequired, orderHandler.Summary)
}
