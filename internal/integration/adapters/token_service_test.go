package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

func TestTokenService(t *testing.T) {
	service := NewTokenService("unit-test-secret", time.Hour)

	t.Run("generated tokens validate and carry the subject", func(t *testing.T) {
		token, err := service.GenerateAccessToken(context.Background(), "admin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token == "" {
			t.Fatal("expected a non-empty token")
		}

		claims, err := service.ValidateAccessToken(context.Background(), token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.Subject != "admin" {
			t.Errorf("expected subject admin, got %s", claims.Subject)
		}
	})

	t.Run("tokens signed with a different secret are rejected", func(t *testing.T) {
		other := NewTokenService("another-secret", time.Hour)
		token, err := other.GenerateAccessToken(context.Background(), "admin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := service.ValidateAccessToken(context.Background(), token); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired tokens are rejected", func(t *testing.T) {
		expired := NewTokenService("unit-test-secret", -time.Minute)
		token, err := expired.GenerateAccessToken(context.Background(), "admin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := service.ValidateAccessToken(context.Background(), token); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("malformed tokens are rejected", func(t *testing.T) {
		if _, err := service.ValidateAccessToken(context.Background(), "not-a-jwt"); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}
