package middleware

import (
	"strings"

	"cardbox/internal/delivery/http/response"
	"cardbox/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// operatorContextKey is where Authenticate stores the operator name for
// downstream handlers.
const operatorContextKey = "operator"

// AuthMiddleware guards the management API with the operator's session
// token. The public card view and the login route never pass through it.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer token issued at login and exposes the
// operator name on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(operatorContextKey, claims.Operator)

		return next(c)
	}
}

// Operator returns the authenticated operator name set by Authenticate,
// or the empty string on unauthenticated routes.
func Operator(c echo.Context) string {
	operator, _ := c.Get(operatorContextKey).(string)

	return operator
}
