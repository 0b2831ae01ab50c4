package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SessionCookieName is the cookie carrying the session token. The edge
// guard checks its presence; handlers verify its value.
const SessionCookieName = "token"

const sessionCookieMaxAge = 86400

// SessionCookie builds the cookie that stores a freshly issued session
// token. The Secure attribute is only set in the production deployment so
// local development over plain HTTP keeps working.
func SessionCookie(token string, production bool) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HTTPOnly: true,
		Secure:   production,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

// ClearSessionCookie builds the cookie that expires the session on the
// client immediately.
func ClearSessionCookie() *fiber.Cookie {
	return &fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}
