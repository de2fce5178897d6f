package usecase

import "context"

// SessionUsecase is the operator login gate. Credentials are a single
// static username/password pair from configuration; there are no user
// accounts. The public card view never goes through it.
type SessionUsecase interface {
	// Login checks the static credentials and returns a session token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}

// LoginInput defines the operator credentials.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the issued session token.
type LoginOutput struct {
	AccessToken string `json:"access_token"`
}
