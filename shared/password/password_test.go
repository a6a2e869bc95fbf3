package password_test

import (
	"errors"
	"testing"

	"innkeep/shared/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("frontDesk!2024")
	if err != nil {
		t.Fatalf("Hash() failed: %v", err)
	}

	if hash == "frontDesk!2024" {
		t.Error("hash should not equal the plaintext password")
	}

	if err := password.Verify("frontDesk!2024", hash); err != nil {
		t.Errorf("Verify() with correct password failed: %v", err)
	}

	err = password.Verify("wrong-password", hash)
	if !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestHashEmptyPassword(t *testing.T) {
	if _, err := password.Hash(""); err == nil {
		t.Error("Hash() should reject an empty password")
	}
}

func TestVerifyEmptyInputs(t *testing.T) {
	if err := password.Verify("", "somehash"); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword for empty password, got %v", err)
	}

	if err := password.Verify("secret", ""); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword for empty hash, got %v", err)
	}
}
