package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kwetu-stack/cbc-connect/app/models"
	"github.com/kwetu-stack/cbc-connect/app/services"
)

// loginPathFor maps a route class to the login page an anonymous caller is
// sent to.
func loginPathFor(role string) string {
	if role == models.RolePrincipal {
		return "/auth/principal"
	}
	return "/auth/login"
}

func isAPIRequest(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/")
}

// resolveSession reads the cookie (or Bearer header) and validates it.
// Anything missing or unverifiable is anonymous.
func resolveSession(c *fiber.Ctx, secret []byte) *Session {
	tokenString := c.Cookies(sessionCookie)
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}
	if tokenString == "" {
		return nil
	}

	sess, err := ValidateSessionToken(secret, tokenString)
	if err != nil {
		return nil
	}
	return sess
}

// RequireRole gates a route class. Anonymous callers are redirected to the
// matching login page (401 JSON on /api paths); an authenticated caller
// with the wrong role gets a terminal 403, never a redirect — the two
// outcomes must stay distinguishable.
func RequireRole(secret []byte, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := resolveSession(c, secret)
		if sess == nil {
			if isAPIRequest(c) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
			}
			return c.Redirect(loginPathFor(role))
		}

		if sess.Role != role {
			if isAPIRequest(c) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient permissions"})
			}
			return fiber.NewError(fiber.StatusForbidden, "insufficient permissions")
		}

		c.Locals("session", sess)
		return c.Next()
	}
}

func RequireTeacher(secret []byte) fiber.Handler {
	return RequireRole(secret, models.RoleTeacher)
}

func RequirePrincipal(secret []byte) fiber.Handler {
	return RequireRole(secret, models.RolePrincipal)
}

// SessionFromContext returns the session a Require* middleware stored.
func SessionFromContext(c *fiber.Ctx) *Session {
	if sess, ok := c.Locals("session").(*Session); ok {
		return sess
	}
	return nil
}

// SetSessionCookie installs a signed session token as an HTTP-only cookie.
func SetSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Expires:  time.Now().Add(sessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// ClearSessionCookie expires the cookie outright. The whole session record
// lives in the token, so this is the full clear logout requires.
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}

// MapServiceError translates the service taxonomy into HTTP errors for the
// app-wide error handler. ValidationError never reaches this; handlers
// redisplay forms instead.
func MapServiceError(err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "not found")
	case errors.Is(err, services.ErrForbidden):
		return fiber.NewError(fiber.StatusForbidden, "insufficient permissions")
	case errors.Is(err, services.ErrUnauthenticated):
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	default:
		return err
	}
}
