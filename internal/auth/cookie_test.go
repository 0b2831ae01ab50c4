package auth

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestSessionCookieAttributes(t *testing.T) {
	cookie := SessionCookie("tok-value", false)

	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, "tok-value", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 86400, cookie.MaxAge)
	assert.True(t, cookie.HTTPOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, fiber.CookieSameSiteLaxMode, cookie.SameSite)
}

func TestSessionCookieSecureInProduction(t *testing.T) {
	assert.True(t, SessionCookie("tok", true).Secure)
	assert.False(t, SessionCookie("tok", false).Secure)
}

func TestClearSessionCookie(t *testing.T) {
	cookie := ClearSessionCookie()

	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Negative(t, cookie.MaxAge)
	assert.True(t, cookie.HTTPOnly)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2", 4)
	assert.NoError(t, err)
	assert.NoError(t, ComparePassword(hash, "hunter2"))
	assert.Error(t, ComparePassword(hash, "wrong"))
}
