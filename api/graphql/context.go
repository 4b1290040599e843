package graphql

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type requestKey struct{}

// withRequest stashes the Fiber request context so resolvers can reach the
// response (login sets the access token cookie).
func withRequest(ctx context.Context, c *fiber.Ctx) context.Context {
	return context.WithValue(ctx, requestKey{}, c)
}

func requestFrom(ctx context.Context) (*fiber.Ctx, bool) {
	c, ok := ctx.Value(requestKey{}).(*fiber.Ctx)
	return c, ok
}
