package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ecommerce-api/internal/application/auth"
	apporder "github.com/jhoicas/Ecommerce-api/internal/application/order"
	"github.com/jhoicas/Ecommerce-api/internal/application/usecase"
	"github.com/jhoicas/Ecommerce-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CompanyUC  *usecase.CompanyUseCase
	ProductUC  *usecase.ProductUseCase
	CartUC     *apporder.CartUseCase
	CheckoutUC *apporder.CheckoutUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authRequired := AuthMiddleware(deps.JWTSecret)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", authRequired, authHandler.Me)

	// Companies: lectura pública, mutación solo admin
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.AuthUC)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Post("/", authRequired, RequireRole(entity.RoleAdmin), companyHandler.Create)
	companies.Put("/:id", authRequired, RequireRole(entity.RoleAdmin), companyHandler.Update)
	companies.Delete("/:id", authRequired, RequireRole(entity.RoleAdmin), companyHandler.Delete)
	companies.Post("/:id/users", authRequired, RequireRole(entity.RoleAdmin), companyHandler.CreateUser)

	// Products: lectura pública, mutación solo empresa (la política de
	// propiedad se aplica en el caso de uso)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", authRequired, RequireRole(entity.RoleEmpresa), productHandler.Create)
	products.Put("/:id", authRequired, RequireRole(entity.RoleEmpresa), productHandler.Update)
	products.Delete("/:id", authRequired, RequireRole(entity.RoleEmpresa), productHandler.Delete)

	// Orders: carrito y checkout, solo clientes
	orders := api.Group("/orders", authRequired, RequireRole(entity.RoleCliente))
	orderHandler := NewOrderHandler(deps.CartUC, deps.CheckoutUC)
	orders.Get("/cart", orderHandler.GetCart)
	orders.Post("/cart/items", orderHandler.AddItem)
	orders.Delete("/cart/items/:itemId", orderHandler.RemoveItem)
	orders.Post("/cart/checkout", orderHandler.Checkout)
}
