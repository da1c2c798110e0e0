package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-booking/internal/api/http/handlers"
	"github.com/spec-kit/event-booking/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Accounts       *handlers.AccountsHandler
	Events         *handlers.EventsHandler
	Bookings       *handlers.BookingsHandler
	Comments       *handlers.CommentsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/", cfg.Events.List)
	app.Get("/events/:id", cfg.Events.Detail)

	app.Post("/auth/register", cfg.Accounts.Register)
	app.Post("/auth/login", cfg.Accounts.Login)

	authed := app.Group("", cfg.AuthMiddleware.Handle)
	authed.Post("/auth/logout", cfg.Accounts.Logout)
	authed.Post("/events", cfg.Events.Create)
	authed.Post("/events/:id/comments", cfg.Comments.Post)
	authed.Post("/events/:id/book", cfg.Bookings.Book)
	authed.Get("/me", cfg.Accounts.Me)
	authed.Get("/me/bookings", cfg.Bookings.History)
}
