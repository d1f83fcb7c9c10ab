package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"career-portal-api/pkg/cerror"
	"career-portal-api/pkg/jwt_generator"
)

const ContextIdentityKey = "identity"

// MessageUnauthenticated is the single client-visible message for a missing,
// malformed, badly signed or expired access token; the cases are never
// distinguished to the caller.
const MessageUnauthenticated = "not authorized, token failed"

// Identity is the authenticated principal resolved from the access token and
// attached to the request context by Protect.
type Identity struct {
	Id   string
	Role string
}

func Protect(jwtGenerator jwt_generator.JwtGenerator) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authorizationHeader := ctx.Get(fiber.HeaderAuthorization)
		rawToken := strings.TrimPrefix(authorizationHeader, "Bearer ")
		if authorizationHeader == "" || rawToken == authorizationHeader {
			return cerror.NewUnauthorizedError(MessageUnauthenticated)
		}

		claims, err := jwtGenerator.VerifyAccessToken(rawToken)
		if err != nil {
			return cerror.NewUnauthorizedError(MessageUnauthenticated)
		}

		ctx.Locals(ContextIdentityKey, &Identity{
			Id:   claims.Subject,
			Role: claims.Role,
		})

		return ctx.Next()
	}
}

func Authorize(allowedRoles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		identity := IdentityFromContext(ctx)
		if identity == nil {
			return cerror.NewUnauthorizedError(MessageUnauthenticated)
		}

		for _, role := range allowedRoles {
			if identity.Role == role {
				return ctx.Next()
			}
		}

		return cerror.NewForbiddenError()
	}
}

func IdentityFromContext(ctx *fiber.Ctx) *Identity {
	identity, isOk := ctx.Locals(ContextIdentityKey).(*Identity)
	if !isOk {
		return nil
	}

	return identity
}
