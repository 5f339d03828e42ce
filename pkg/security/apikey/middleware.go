package apikey

import (
	"crypto/subtle"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Header carries the shared key.
const Header = "X-API-Key"

// NewMiddleware returns a Fiber middleware that admits requests whose
// X-API-Key header equals key.
func NewMiddleware(key string) fiber.Handler {
	expected := []byte(key)
	return func(c *fiber.Ctx) error {
		got := []byte(c.Get(Header))
		if len(got) == 0 || subtle.ConstantTimeCompare(got, expected) != 1 {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		return c.Next()
	}
}
