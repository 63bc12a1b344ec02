package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/order"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	StockUC    *usecase.StockUseCase
	SupplierUC *usecase.SupplierUseCase
	CustomerUC *usecase.CustomerUseCase
	IncomingUC *order.IncomingOrderUseCase
	OutgoingUC *order.OutgoingOrderUseCase
	JWTSecret  string
	Blocklist  auth.TokenBlocklist
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	// Rutas protegidas (requieren Bearer Token no revocado)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Blocklist))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	adminOnly := RequireRole(entity.RoleAdmin)

	// Categories (solo admin)
	categories := protected.Group("/categories", adminOnly)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Products (solo admin)
	products := protected.Group("/products", adminOnly)
	productHandler := NewProductHandler(deps.ProductUC)
	stockHandler := NewStockHandler(deps.StockUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:productId/stock", stockHandler.GetByProduct)

	// Stocks (solo admin; se crean y eliminan con el producto)
	stocks := protected.Group("/stocks", adminOnly)
	stocks.Get("/", stockHandler.List)
	stocks.Get("/:id", stockHandler.GetByID)
	stocks.Put("/:id", stockHandler.Update)

	// Incoming orders (admin y supplier; propiedad verificada en el caso de uso)
	incoming := protected.Group("/incoming-orders", RequireRole(entity.RoleAdmin, entity.RoleSupplier))
	incomingHandler := NewIncomingOrderHandler(deps.IncomingUC)
	incoming.Post("/", incomingHandler.Create)
	incoming.Get("/", incomingHandler.List)
	incoming.Get("/:id", incomingHandler.Get)
	incoming.Put("/:id", incomingHandler.Update)
	incoming.Delete("/:id", incomingHandler.Delete)

	// Outgoing orders (admin y customer)
	outgoing := protected.Group("/outgoing-orders", RequireRole(entity.RoleAdmin, entity.RoleCustomer))
	outgoingHandler := NewOutgoingOrderHandler(deps.OutgoingUC)
	outgoing.Post("/", outgoingHandler.Create)
	outgoing.Get("/", outgoingHandler.List)
	outgoing.Get("/:id", outgoingHandler.Get)
	outgoing.Put("/:id", outgoingHandler.Update)
	outgoing.Delete("/:id", outgoingHandler.Delete)

	// Suppliers (admin y supplier dueño)
	suppliers := protected.Group("/suppliers", RequireRole(entity.RoleAdmin, entity.RoleSupplier))
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Customers (admin y customer dueño)
	customers := protected.Group("/customers", RequireRole(entity.RoleAdmin, entity.RoleCustomer))
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
}
