package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/hablalab/academy-service/internal/domain"
)

// Identity is a verified identity snapshot resolved from a request.
type Identity struct {
	UserID  string
	Nombre  string
	Celular string
	Email   *string
	Rol     domain.Role
}

// Extractor resolves a verified identity from an inbound request. It is
// stateless and safe to share across requests.
type Extractor struct {
	tokens *TokenManager
}

// NewExtractor constructs an extractor over the token manager.
func NewExtractor(tokens *TokenManager) *Extractor {
	return &Extractor{tokens: tokens}
}

// Resolve checks the Authorization header first, then the session cookie.
// A present Authorization header is used exclusively: when its token fails
// verification the cookie is not consulted as a fallback. Returns nil when
// no source yields a verifiable token.
func (e *Extractor) Resolve(c *fiber.Ctx) *Identity {
	if header := c.Get(fiber.HeaderAuthorization); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return nil
		}
		return e.fromToken(parts[1])
	}

	if cookie := c.Cookies(SessionCookieName); cookie != "" {
		return e.fromToken(cookie)
	}
	return nil
}

func (e *Extractor) fromToken(tokenStr string) *Identity {
	claims, err := e.tokens.ParseSession(tokenStr)
	if err != nil {
		return nil
	}
	return &Identity{
		UserID:  claims.Subject,
		Nombre:  claims.Nombre,
		Celular: claims.Celular,
		Email:   claims.Email,
		Rol:     claims.Rol,
	}
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Rol == domain.RoleAdmin
}
