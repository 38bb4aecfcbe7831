package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	httpHandlers "github.com/bookstore/core/internal/adapters/http"
	"github.com/bookstore/core/internal/application/services"
)

// authMiddleware validates the bearer token and attaches the live session,
// creating one lazily when a valid token outlives a server restart.
func (s *Server) authMiddleware(authService *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization header")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization header format")
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				s.logger.Warn("Invalid token", "error", err, "ip", c.RealIP())
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set("session", s.sessions.Get(claims.Username, claims.IsAdmin))

			return next(c)
		}
	}
}

// requireAdmin gates a route group to administrator sessions.
func (s *Server) requireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := c.Get("session").(*httpHandlers.Session)
			if !ok {
				return echo.NewHTTPError(http.StatusForbidden, "Session information not found")
			}

			if !sess.IsAdmin {
				s.logger.Warn("Admin endpoint denied",
					"username", sess.Username,
					"endpoint", c.Request().URL.Path,
				)
				return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
			}

			return next(c)
		}
	}
}
