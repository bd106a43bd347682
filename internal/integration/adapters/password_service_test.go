package adapters

import "testing"

func TestPasswordService(t *testing.T) {
	service := NewPasswordService()

	t.Run("hash verifies against the original password", func(t *testing.T) {
		hash, err := service.HashPassword("correct-horse")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hash == "correct-horse" {
			t.Fatal("hash must not equal the plain password")
		}

		if err := service.VerifyPassword(hash, "correct-horse"); err != nil {
			t.Errorf("expected verification to succeed, got %v", err)
		}
	})

	t.Run("wrong password fails verification", func(t *testing.T) {
		hash, err := service.HashPassword("correct-horse")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := service.VerifyPassword(hash, "battery-staple"); err == nil {
			t.Error("expected verification to fail")
		}
	})
}
