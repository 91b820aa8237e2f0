package auth

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("segredo123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "segredo123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected a bcrypt hash, got %q", hash)
	}
	if !CheckPassword(hash, "segredo123") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "errada") {
		t.Error("wrong password accepted")
	}
}

func TestCheckLegacyPassword(t *testing.T) {
	digest := LegacyHash("admin123")
	if len(digest) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(digest))
	}
	if digest != LegacyHash("admin123") {
		t.Error("digest is not deterministic")
	}

	if !CheckLegacyPassword(digest, "admin123") {
		t.Error("correct password rejected")
	}
	if CheckLegacyPassword(digest, "outra") {
		t.Error("wrong password accepted")
	}
	if CheckLegacyPassword("", "admin123") {
		t.Error("empty stored digest must never match")
	}
}
