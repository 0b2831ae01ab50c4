package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hablalab/academy-service/internal/domain"
	apperrors "github.com/hablalab/academy-service/pkg/util/errorutil"
)

const identityKey = "auth_identity"

// RequireIdentity verifies the request credential and stores the identity
// snapshot in the request context. This is the fine-grained tier behind the
// edge RouteGuard.
func RequireIdentity(extractor *Extractor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := extractor.Resolve(c)
		if identity == nil {
			return apperrors.NewUnauthorized("autenticación requerida")
		}
		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// RequireRole ensures the resolved identity carries one of the allowed
// roles. Must run after RequireIdentity.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("autenticación requerida")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[identity.Rol]; !exists {
			return apperrors.NewForbidden("rol insuficiente")
		}
		return c.Next()
	}
}

// IdentityFromContext retrieves the identity stored by RequireIdentity.
func IdentityFromContext(c *fiber.Ctx) (*Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*Identity)
	return identity, ok
}
