package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"cardbox/config"
	domainerrors "cardbox/internal/domain/errors"
	"cardbox/internal/domain/service"
	"cardbox/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface. The gate is a
// static credential comparison against configuration; there is no user
// store behind it.
type sessionService struct {
	cfg      *config.Config
	hasher   service.PasswordHasher
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	cfg *config.Config,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		cfg:      cfg,
		hasher:   hasher,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// Login checks the static operator credentials and issues a session token.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(srv.cfg.Auth.Username)) == 1
	passwordOK := srv.hasher.Check(input.Password, srv.cfg.Auth.PasswordHash)
	if !usernameOK || !passwordOK {
		srv.logger.Warn("operator login rejected", "username", input.Username)

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login")
	}

	token, err := srv.tokenSvc.GenerateToken(input.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}
	srv.logger.Info("operator logged in", "username", input.Username)

	return &usecase.LoginOutput{AccessToken: token}, nil
}
