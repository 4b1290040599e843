package jwt

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mkhalfin/accounts/pkg/auth"
)

// AccessTokenCookie is the cookie carrying the session token.
const AccessTokenCookie = "accessToken"

// NewIdentityMiddleware returns a Fiber middleware that resolves the caller's
// identity from the access token cookie. A missing, expired, or otherwise
// invalid token leaves the request anonymous; it never fails the request.
// The resolved identity is trusted from the token's claims verbatim, no
// store lookup happens per request.
func NewIdentityMiddleware(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies(AccessTokenCookie)
		if tokenStr == "" {
			return c.Next()
		}
		claims, err := svc.Verify(tokenStr)
		if err != nil {
			return c.Next()
		}
		id, err := uuid.Parse(claims.Subject)
		if err != nil {
			return c.Next()
		}
		user := auth.User{ID: id, Name: claims.Name, Email: claims.Email}
		c.SetUserContext(auth.WithUser(c.UserContext(), user))
		return c.Next()
	}
}
