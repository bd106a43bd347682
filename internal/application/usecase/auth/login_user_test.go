package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

type fakePasswordService struct {
	expected string
}

func (f *fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (f *fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if password != f.expected {
		return errors.New("password mismatch")
	}
	return nil
}

type fakeTokenService struct {
	token string
	err   error
}

func (f *fakeTokenService) GenerateAccessToken(ctx context.Context, subject string) (string, error) {
	return f.token, f.err
}

func (f *fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func TestLoginUserUseCase(t *testing.T) {
	newUseCase := func() *LoginUserUseCase {
		return NewLoginUserUseCase(
			"admin",
			"stored-hash",
			&fakePasswordService{expected: "correct-horse"},
			&fakeTokenService{token: "signed-token"},
		)
	}

	t.Run("valid credentials return an access token", func(t *testing.T) {
		uc := newUseCase()

		output, err := uc.Execute(context.Background(), LoginUserInput{
			Username: "admin",
			Password: "correct-horse",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken != "signed-token" {
			t.Errorf("expected signed-token, got %s", output.AccessToken)
		}
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		uc := newUseCase()

		_, err := uc.Execute(context.Background(), LoginUserInput{
			Username: "admin",
			Password: "battery-staple",
		})
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown username fails identically to a wrong password", func(t *testing.T) {
		uc := newUseCase()

		_, badUser := uc.Execute(context.Background(), LoginUserInput{
			Username: "intruder",
			Password: "correct-horse",
		})
		_, badPass := uc.Execute(context.Background(), LoginUserInput{
			Username: "admin",
			Password: "battery-staple",
		})

		if badUser == nil || badPass == nil {
			t.Fatal("expected both attempts to fail")
		}
		if badUser.Error() != badPass.Error() {
			t.Errorf("failure modes must be indistinguishable: %q vs %q", badUser, badPass)
		}
	})

	t.Run("token generation failure propagates", func(t *testing.T) {
		uc := NewLoginUserUseCase(
			"admin",
			"stored-hash",
			&fakePasswordService{expected: "correct-horse"},
			&fakeTokenService{err: errors.New("signing key unavailable")},
		)

		_, err := uc.Execute(context.Background(), LoginUserInput{
			Username: "admin",
			Password: "correct-horse",
		})
		if err == nil {
			t.Error("expected token generation error to propagate")
		}
	})
}
