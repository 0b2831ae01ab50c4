package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LoginPath is the fixed redirect target for unauthenticated dashboard
// traffic. No return-path is preserved.
const LoginPath = "/login"

// protectedPrefixes lists the path families behind the login wall. The
// classification is static; everything else always passes.
var protectedPrefixes = []string{"/alumno", "/admin"}

// RouteGuard is the coarse edge check in front of the dashboards. It only
// tests cookie presence: an expired or forged cookie still passes here and
// is caught by the Extractor inside the handler. Both tiers are deliberate;
// dropping the inner verification would let stale cookies through.
func RouteGuard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !isProtectedPath(c.Path()) {
			return c.Next()
		}
		if c.Cookies(SessionCookieName) == "" {
			return c.Redirect(LoginPath, fiber.StatusFound)
		}
		return c.Next()
	}
}

func isProtectedPath(path string) bool {
	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
