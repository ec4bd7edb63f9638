package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AdminAuth guards the content-editing routes with a static bearer token.
// With no token configured the admin surface does not exist and every request
// gets 404.
func AdminAuth(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token == "" {
			return fiber.ErrNotFound
		}

		auth := c.Get(fiber.HeaderAuthorization)
		given, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(strings.TrimSpace(given)), []byte(token)) != 1 {
			c.Set(fiber.HeaderWWWAuthenticate, `Bearer realm="admin"`)
			return fiber.ErrUnauthorized
		}
		return c.Next()
	}
}
