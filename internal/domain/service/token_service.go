package service

import "github.com/golang-jwt/jwt/v5"

// Claims are the custom claims carried by an operator session token.
type Claims struct {
	Operator string `json:"operator"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the short-lived session tokens handed
// out after the operator login. There is a single operator identity, so
// no refresh flow exists.
type TokenService interface {
	// GenerateToken creates a signed session token for the operator.
	GenerateToken(operator string) (string, error)

	// ValidateToken checks a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
