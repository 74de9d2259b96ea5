package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-role-service/internal/api/http/handlers"
	"github.com/spec-kit/hospital-role-service/internal/auth"
	"github.com/spec-kit/hospital-role-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Employees      *handlers.EmployeesHandler
	Hierarchy      *handlers.HierarchyHandler
	Menu           *handlers.MenuHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	authProtected.Post("/logout", cfg.Auth.Logout)
	authProtected.Post("/password/change", cfg.Auth.ChangePassword)

	// Catalog endpoints are public: the table is fixed configuration, not
	// employee data.
	app.Get("/hierarchy/cargos", cfg.Hierarchy.ListCargos)
	app.Get("/hierarchy/cargos/:cargo/reports", cfg.Hierarchy.DirectReports)

	protected := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	protected.Post("/employees", auth.RequireNivel(domain.NivelN9), cfg.Employees.Create)
	protected.Get("/employees", auth.RequireNivel(domain.NivelN6), cfg.Employees.List)
	protected.Get("/employees/me", cfg.Employees.Me)
	protected.Get("/employees/:id", cfg.Employees.Get)
	protected.Get("/employees/:id/evaluation/:subordinate_id", cfg.Employees.CanEvaluate)
	protected.Post("/hierarchy/evaluate", cfg.Hierarchy.Evaluate)
	protected.Get("/menu", cfg.Menu.Entries)
	protected.Get("/evaluations/audit", auth.RequireNivel(domain.NivelN7), cfg.Hierarchy.Audit)
	protected.Get("/diagnostics/metrics", auth.RequireNivel(domain.NivelN9), cfg.Health.Metrics)
}
