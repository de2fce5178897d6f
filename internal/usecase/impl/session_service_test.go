package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"cardbox/config"
	domainerrors "cardbox/internal/domain/errors"
	"cardbox/internal/infra/auth"
	"cardbox/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(t *testing.T) usecase.SessionUsecase {
	t.Helper()

	hasher := auth.NewBcryptHasher()
	passwordHash, err := hasher.Hash("password")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Auth = config.AuthConfig{
		Username:     "admin",
		PasswordHash: passwordHash,
		TokenTTL:     time.Hour,
	}
	cfg.SecretKey.Access = "test-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewSessionService(cfg, hasher, tokenSvc, logger)
}

func TestSessionService_Login_Success(t *testing.T) {
	service := newTestSessionService(t)

	output, err := service.Login(context.Background(), &usecase.LoginInput{
		Username: "admin",
		Password: "password",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	service := newTestSessionService(t)

	_, err := service.Login(context.Background(), &usecase.LoginInput{
		Username: "admin",
		Password: "not-the-password",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_Login_WrongUsername(t *testing.T) {
	service := newTestSessionService(t)

	_, err := service.Login(context.Background(), &usecase.LoginInput{
		Username: "root",
		Password: "password",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
