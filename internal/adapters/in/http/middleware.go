package http

import (
	"net/http"
	"strings"

	"gamestore/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const claimsKey = "identity.claims"

// requireAuth verifies the bearer token and stores its claims on the context.
func requireAuth(identity ports.IdentityGateway) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
			}

			claims, err := identity.VerifyAccessToken(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token").SetInternal(err)
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// requireRole must run after requireAuth.
func requireRole(role ports.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(claimsKey).(ports.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
			}
			if !claims.HasRole(role) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

func currentClaims(c echo.Context) ports.Claims {
	claims, _ := c.Get(claimsKey).(ports.Claims)
	return claims
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
