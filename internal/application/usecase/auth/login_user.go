// Package auth contains the single-user authentication use case.
package auth

import (
	"context"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Username string
	Password string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	AccessToken string
}

// LoginUserUseCase authenticates the configured single user and issues an
// access token.
type LoginUserUseCase struct {
	username        string
	passwordHash    string
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance. The expected
// username and bcrypt password hash come from configuration.
func NewLoginUserUseCase(
	username string,
	passwordHash string,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		username:        username,
		passwordHash:    passwordHash,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute verifies the credentials against configuration and returns a signed
// access token. Username and password failures are indistinguishable.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	invalid := domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid username or password",
		domainerror.ErrInvalidCredentials,
	)

	if input.Username != uc.username {
		return nil, invalid
	}
	if err := uc.passwordService.VerifyPassword(uc.passwordHash, input.Password); err != nil {
		return nil, invalid
	}

	token, err := uc.tokenService.GenerateAccessToken(ctx, uc.username)
	if err != nil {
		return nil, err
	}

	return &LoginUserOutput{AccessToken: token}, nil
}
