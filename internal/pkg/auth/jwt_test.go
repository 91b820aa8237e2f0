package auth

import (
	"testing"
	"time"

	"github.com/ufvjm/estagiopro/internal/app/models"
)

func testJWTService(expiry time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  expiry,
		RefreshTokenExp: 7 * 24 * time.Hour,
		TokenIssuer:     "estagiopro.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService(time.Hour)
	o := &models.Orientador{
		ID:    42,
		Email: "maria@ufvjm.edu.br",
		Tipo:  models.TipoAdministrador,
	}

	access, refresh, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(o)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("expected non-empty token pair")
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}
	if refreshExpiresIn != int((7 * 24 * time.Hour).Seconds()) {
		t.Errorf("refreshExpiresIn = %d", refreshExpiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(access)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "maria@ufvjm.edu.br" || claims.Tipo != "administrador" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := testJWTService(time.Hour)
	o := &models.Orientador{ID: 1, Email: "a@b.com", Tipo: models.TipoProfessor}
	access, _, _, _, err := svc.GenerateTokenPair(o)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "different", AccessTokenExp: time.Hour})
	if _, err := other.ValidateToken(access); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := testJWTService(-time.Minute)
	o := &models.Orientador{ID: 1, Email: "a@b.com", Tipo: models.TipoProfessor}
	access, _, _, _, err := svc.GenerateTokenPair(o)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	if _, err := svc.ValidateToken(access); err != ErrExpiredToken {
		t.Errorf("err = %v, want ErrExpiredToken", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	if _, err := ExtractBearerToken(""); err == nil {
		t.Error("expected error for empty header")
	}
	tok, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil || tok != "abc.def.ghi" {
		t.Errorf("got (%q, %v)", tok, err)
	}
	// Raw tokens are accepted as-is
	tok, err = ExtractBearerToken("abc.def.ghi")
	if err != nil || tok != "abc.def.ghi" {
		t.Errorf("got (%q, %v)", tok, err)
	}
}
