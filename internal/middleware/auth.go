// Package middleware provides authentication, logging and rate-limiting
// middleware for the application.
package middleware

import (
	"net/url"
	"strconv"
	"strings"

	"plume/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// AuthCookie is the cookie carrying the JWT for browser clients.
const AuthCookie = "plume_token"

// RequireUser enforces authentication for protected routes. Anonymous or
// invalid-token requests are redirected to the login page with a `next`
// parameter pointing back at the requested path, matching browser-flow
// semantics rather than a hard 401.
func RequireUser(c *fiber.Ctx) error {
	token := tokenFromRequest(c)
	if token == "" {
		return RedirectToLogin(c)
	}

	userID, err := parseUserID(token)
	if err != nil {
		return RedirectToLogin(c)
	}

	c.Locals("userID", userID)
	return c.Next()
}

// OptionalUser resolves the current user when a valid token is present and
// continues anonymously otherwise. Handlers read c.Locals("userID") and
// treat an absent value as an anonymous caller.
func OptionalUser(c *fiber.Ctx) error {
	if token := tokenFromRequest(c); token != "" {
		if userID, err := parseUserID(token); err == nil {
			c.Locals("userID", userID)
		}
	}
	return c.Next()
}

// RedirectToLogin issues the 302 redirect used for every unauthenticated
// access to a protected operation.
func RedirectToLogin(c *fiber.Ctx) error {
	loginPath := "/auth/login/"
	if cfg != nil && cfg.LoginPath != "" {
		loginPath = cfg.LoginPath
	}
	return c.Redirect(loginPath+"?next="+url.QueryEscape(c.Path()), fiber.StatusFound)
}

// tokenFromRequest extracts the JWT from the Authorization header or, for
// browser clients, the auth cookie.
func tokenFromRequest(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	return c.Cookies(AuthCookie)
}

// parseUserID validates the token and extracts the user ID from the "sub"
// claim (subject claim per RFC 7519).
func parseUserID(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Invalid token subject")
	}

	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
	}

	return uint(userID), nil
}
