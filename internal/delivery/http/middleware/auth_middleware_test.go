package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cardbox/config"
	"cardbox/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestMiddleware(t *testing.T) (*AuthMiddleware, string) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth.TokenTTL = time.Hour

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	token, err := tokenSvc.GenerateToken("admin")
	require.NoError(t, err)

	return NewAuthMiddleware(tokenSvc), token
}

func runAuth(m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, string) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cards", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var operator string
	next := func(c echo.Context) error {
		operator = Operator(c)

		return c.NoContent(http.StatusOK)
	}
	_ = m.Authenticate(next)(c)

	return rec, operator
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	m, _ := newAuthTestMiddleware(t)

	rec, _ := runAuth(m, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	m, token := newAuthTestMiddleware(t)

	rec, _ := runAuth(m, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	m, _ := newAuthTestMiddleware(t)

	rec, _ := runAuth(m, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	m, token := newAuthTestMiddleware(t)

	rec, operator := runAuth(m, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", operator)
}
