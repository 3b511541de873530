package middleware

import (
	"net/http"
	"strings"

	"mpeshop/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// StaffAuthMiddleware guards the staff routes. Tokens are issued by the
// company identity provider; this service only verifies them.
type StaffAuthMiddleware struct {
	cfg *config.Config
}

// NewStaffAuthMiddleware is the constructor for StaffAuthMiddleware.
func NewStaffAuthMiddleware(cfg *config.Config) *StaffAuthMiddleware {
	return &StaffAuthMiddleware{cfg: cfg}
}

// Authenticate validates the bearer token and requires the staff role claim.
func (m *StaffAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.cfg.StaffAuth == nil || m.cfg.StaffAuth.Secret == "" {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Staff authentication is not configured"})
		}

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return []byte(m.cfg.StaffAuth.Secret), nil
		})
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Failed to parse token claims"})
		}
		if !hasStaffRole(claims) {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Staff role required"})
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Set("staffID", sub)
		}

		return next(c)
	}
}

func hasStaffRole(claims jwt.MapClaims) bool {
	roles, ok := claims["roles"].([]any)
	if !ok {
		return false
	}
	for _, role := range roles {
		if s, ok := role.(string); ok && s == "staff" {
			return true
		}
	}

	return false
}
