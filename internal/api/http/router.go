package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hablalab/academy-service/internal/api/http/handlers"
	"github.com/hablalab/academy-service/internal/auth"
	"github.com/hablalab/academy-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Catalog   *handlers.CatalogHandler
	Alumno    *handlers.AlumnoHandler
	Admin     *handlers.AdminHandler
	Receipts  *handlers.ReceiptsHandler
	Dashboard *handlers.DashboardHandler
	Extractor *auth.Extractor
}

// RegisterRoutes wires HTTP routes. Dashboard paths sit behind the coarse
// RouteGuard plus the fine-grained identity middleware; /api authorization
// is per-group.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Use(auth.RouteGuard())

	app.Get("/login", cfg.Dashboard.Login)
	app.Get("/alumno", auth.RequireIdentity(cfg.Extractor), cfg.Dashboard.Alumno)
	app.Get("/admin",
		auth.RequireIdentity(cfg.Extractor),
		auth.RequireRole(domain.RoleAdmin),
		cfg.Dashboard.Admin,
	)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/me", cfg.Auth.Me)

	api.Get("/cursos", cfg.Catalog.ListCursos)
	api.Get("/cursos/:id", cfg.Catalog.GetCurso)
	api.Get("/cursos/:id/lecciones", auth.RequireIdentity(cfg.Extractor), cfg.Catalog.ListLecciones)

	api.Get("/recibos/:token", cfg.Receipts.View)

	alumno := api.Group("/alumno", auth.RequireIdentity(cfg.Extractor))
	alumno.Get("/inscripciones", cfg.Alumno.MisInscripciones)
	alumno.Get("/pagos", cfg.Alumno.MisPagos)
	alumno.Post("/recibos/token", cfg.Alumno.ReceiptToken)

	admin := api.Group("/admin",
		auth.RequireIdentity(cfg.Extractor),
		auth.RequireRole(domain.RoleAdmin),
	)
	admin.Get("/alumnos", cfg.Admin.ListAlumnos)
	admin.Get("/inscripciones", cfg.Admin.ListInscripciones)
	admin.Get("/pagos", cfg.Admin.ListPagos)
	admin.Post("/recibos/token", cfg.Admin.ReceiptToken)
}
