package adapter

import "context"

// TokenClaims carries the validated identity of an access token.
type TokenClaims struct {
	Subject string
}

// TokenService issues and validates access tokens for the single-user API.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, subject string) (string, error)
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}

// PasswordService verifies the configured user password.
type PasswordService interface {
	HashPassword(password string) (string, error)
	VerifyPassword(hashedPassword, password string) error
}
