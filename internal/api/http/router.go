package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/api/http/handlers"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Auth          *handlers.AuthHandler
	Business      *handlers.BusinessHandler
	Events        *handlers.EventHandler
	Temples       *handlers.TempleHandler
	AdminAuth     *handlers.AdminAuthHandler
	AdminBusiness *handlers.AdminBusinessHandler
	AdminEvents   *handlers.AdminEventHandler
	Session       *auth.SessionMiddleware
	Admin         *auth.AdminMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	// Browser page guard: presence-only cookie check with login redirect.
	app.Use(cfg.Session.PageGuard)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/me", cfg.Session.RequireDevotee, cfg.Auth.Me)
	authGroup.Put("/me", cfg.Session.RequireDevotee, cfg.Auth.UpdateMe)

	business := api.Group("/business")
	business.Post("/register", cfg.Business.Register)
	business.Get("/approved", cfg.Business.ListApproved)
	business.Get("/:id", cfg.Business.Get)

	events := api.Group("/events")
	events.Get("/upcoming", cfg.Events.Upcoming)
	events.Post("/", cfg.Session.RequireDevotee, cfg.Events.Submit)

	temples := api.Group("/temples")
	temples.Get("/", cfg.Temples.List)
	temples.Get("/:id", cfg.Temples.Get)

	admin := api.Group("/admin")
	admin.Post("/auth", cfg.AdminAuth.Authenticate)

	moderation := admin.Group("", cfg.Admin.RequireAdmin)
	moderation.Get("/business-submissions", cfg.AdminBusiness.ListSubmissions)
	moderation.Patch("/business-submissions/:id", cfg.AdminBusiness.ReviewSubmission)
	moderation.Patch("/businesses/:id", cfg.AdminBusiness.UpdateBusiness)
	moderation.Delete("/businesses/:id", cfg.AdminBusiness.DelistBusiness)
	moderation.Get("/event-submissions", cfg.AdminEvents.List)
	moderation.Get("/event-submissions/:id", cfg.AdminEvents.Get)
	moderation.Put("/event-submissions/:id", cfg.AdminEvents.Act)
	moderation.Delete("/event-submissions/:id", cfg.AdminEvents.Delete)
}
