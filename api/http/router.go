package http

import (
	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	"github.com/PJRenu/LegaLuna/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. Middlewares in
// apiMW run in order before every /api handler.
func Register(app *fiber.App, health *handlers.HealthHandler, chat *handlers.ChatHandler, docs *handlers.DocumentsHandler, apiMW ...fiber.Handler) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	api := app.Group("/api", apiMW...)
	api.Post("/chat", chat.Chat)
	api.Get("/documents", docs.List)

	app.Get("/swagger/*", swagger.HandlerDefault)
}
