package auth

import (
	"testing"

	"github.com/ufvjm/estagiopro/internal/app/models"
)

func TestLegacyHash(t *testing.T) {
	// Known SHA-256 vector
	if got := LegacyHash("admin123"); got != "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9" {
		t.Errorf("LegacyHash(admin123) = %s", got)
	}
}

func TestChainVerify(t *testing.T) {
	bcryptHash, err := HashPassword("senha-forte1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	legacyOnly := &models.Orientador{Senha: LegacyHash("legado123")}
	managedOnly := &models.Orientador{SenhaHash: bcryptHash}
	both := &models.Orientador{Senha: LegacyHash("legado123"), SenhaHash: bcryptHash}

	chain := DefaultChain()

	tests := []struct {
		name     string
		row      *models.Orientador
		password string
		wantBy   string
		wantOK   bool
	}{
		{"legacy row, right password", legacyOnly, "legado123", "legacy-sha256", true},
		{"legacy row, wrong password", legacyOnly, "errada", "", false},
		{"managed row, right password", managedOnly, "senha-forte1", "bcrypt", true},
		{"managed row, wrong password", managedOnly, "errada", "", false},
		{"both columns, bcrypt wins", both, "senha-forte1", "bcrypt", true},
		{"both columns, legacy still works", both, "legado123", "legacy-sha256", true},
		{"empty password rejected", legacyOnly, "", "", false},
		{"nil row rejected", nil, "legado123", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			by, ok := chain.Verify(tt.row, tt.password)
			if ok != tt.wantOK || by != tt.wantBy {
				t.Errorf("Verify() = (%q, %v), want (%q, %v)", by, ok, tt.wantBy, tt.wantOK)
			}
		})
	}
}

func TestChainOrderIsRespected(t *testing.T) {
	row := &models.Orientador{Senha: LegacyHash("abc12345")}

	// Legacy first: name must report the legacy authenticator even though
	// the default order puts bcrypt ahead.
	chain := NewChain(LegacyAuthenticator{}, BcryptAuthenticator{})
	by, ok := chain.Verify(row, "abc12345")
	if !ok || by != "legacy-sha256" {
		t.Errorf("Verify() = (%q, %v), want (legacy-sha256, true)", by, ok)
	}
}
