package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mkhalfin/accounts/api/graphql"
	"github.com/mkhalfin/accounts/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. identity resolves the
// caller from the access token cookie before GraphQL execution.
func Register(app *fiber.App, gql *graphql.Handler, health *handlers.HealthHandler, identity fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	app.Get("/graphql", gql.Playground)
	app.Post("/graphql", identity, gql.Execute)
}
