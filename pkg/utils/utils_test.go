package utils

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	password := "secret"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !CheckPassword(password, hash) {
		t.Errorf("Expected password check to pass")
	}

	if CheckPassword("wrongpassword", hash) {
		t.Errorf("Expected password check to fail")
	}
}

func TestJWT(t *testing.T) {
	secret := "supersecret"
	accountID := "123"

	token, err := GenerateToken(accountID, secret)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if claims.AccountID != accountID {
		t.Errorf("Expected AccountID %s, got %s", accountID, claims.AccountID)
	}

	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Errorf("Expected expiry and issued-at claims to be set")
	}

	if claims.ID == "" {
		t.Errorf("Expected a token id claim")
	}

	_, err = ValidateToken(token, "wrongsecret")
	if err == nil {
		t.Errorf("Expected error with wrong secret")
	}
}

func TestGenerateAccessCodeShape(t *testing.T) {
	code, err := GenerateAccessCode()
	if err != nil {
		t.Fatalf("GenerateAccessCode: %v", err)
	}

	if len(code) != AccessCodeLength {
		t.Fatalf("expected %d characters, got %q", AccessCodeLength, code)
	}
	for _, r := range code {
		if !strings.ContainsRune(accessCodeAlphabet, r) {
			t.Fatalf("unexpected character %q in code %q", r, code)
		}
	}
}

func TestAppendCodeCharsRejectsBiasedBytes(t *testing.T) {
	// 0 and 36 both map to 'A', 35 and 251 to '9'; 252-255 must be
	// rejected, not wrapped onto the low end of the alphabet.
	got := string(appendCodeChars(nil, []byte{0, 35, 36, 251, 252, 255}))
	if got != "A9A9" {
		t.Fatalf("expected rejection-sampled mapping %q, got %q", "A9A9", got)
	}
}

func TestGenerateAccessCodeSpread(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code, err := GenerateAccessCode()
		if err != nil {
			t.Fatalf("GenerateAccessCode: %v", err)
		}
		if seen[code] {
			t.Fatalf("duplicate code %q after %d draws", code, i)
		}
		seen[code] = true
	}
}
