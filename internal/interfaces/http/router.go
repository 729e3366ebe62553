package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/auth"
	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/pkg/validation"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CustomerUC *crm.CustomerUseCase
	Validate   *validation.Validator
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Validate)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Customers (protegido, Bearer Token). Si alguna ruta necesita gate por rol,
	// encadenar RequireRole("admin") después del AuthMiddleware.
	customers := app.Group("/customers", AuthMiddleware(deps.JWTSecret))
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Validate)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
}
