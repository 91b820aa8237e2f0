package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ufvjm/estagiopro/internal/app/models"
	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/pkg/apperrors"
	"github.com/ufvjm/estagiopro/internal/pkg/auth"
)

type fakeAccounts struct {
	byEmail map[string]*models.Orientador
	byID    map[int64]*models.Orientador
}

func (f *fakeAccounts) GetByEmail(_ context.Context, email string) (*models.Orientador, error) {
	if o, ok := f.byEmail[email]; ok {
		return o, nil
	}
	return nil, apperrors.ErrOrientadorNotFound
}

func (f *fakeAccounts) GetByID(_ context.Context, id int64) (*models.Orientador, error) {
	if o, ok := f.byID[id]; ok {
		return o, nil
	}
	return nil, apperrors.ErrOrientadorNotFound
}

type fakeTokens struct {
	created map[string]int64
	revoked map[string]bool
}

func newFakeTokens() *fakeTokens {
	return &fakeTokens{created: map[string]int64{}, revoked: map[string]bool{}}
}

func (f *fakeTokens) CreateToken(_ context.Context, token string, orientadorID int64, _ time.Time) error {
	f.created[token] = orientadorID
	return nil
}

func (f *fakeTokens) GetTokenOwner(_ context.Context, token string) (int64, error) {
	if f.revoked[token] {
		return 0, apperrors.ErrTokenRevoked
	}
	id, ok := f.created[token]
	if !ok {
		return 0, apperrors.ErrTokenNotFound
	}
	return id, nil
}

func (f *fakeTokens) RevokeToken(_ context.Context, token string) error {
	if _, ok := f.created[token]; !ok {
		return apperrors.ErrTokenNotFound
	}
	f.revoked[token] = true
	return nil
}

func (f *fakeTokens) RevokeAllTokens(_ context.Context, orientadorID int64) error {
	for token, id := range f.created {
		if id == orientadorID {
			f.revoked[token] = true
		}
	}
	return nil
}

func newTestAuthService(accounts *fakeAccounts, tokens *fakeTokens) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 7 * 24 * time.Hour,
	})
	return NewAuthService(accounts, tokens, auth.DefaultChain(), jwtService, zerolog.Nop())
}

func legacyAccount(id int64, email, password string, status models.StatusUsuario) *models.Orientador {
	return &models.Orientador{
		ID:     id,
		Nome:   "Conta Teste",
		Email:  email,
		Tipo:   models.TipoAdministrador,
		Status: status,
		Senha:  auth.LegacyHash(password),
	}
}

func bcryptAccount(t *testing.T, id int64, email, password string, status models.StatusUsuario) *models.Orientador {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return &models.Orientador{
		ID:        id,
		Nome:      "Conta Teste",
		Email:     email,
		Tipo:      models.TipoProfessor,
		Status:    status,
		SenhaHash: hash,
	}
}

func TestLoginLegacyAccount(t *testing.T) {
	account := legacyAccount(1, "admin@ufvjm.edu.br", "admin123", models.StatusUsuarioAtivo)
	accounts := &fakeAccounts{
		byEmail: map[string]*models.Orientador{account.Email: account},
		byID:    map[int64]*models.Orientador{account.ID: account},
	}
	tokens := newFakeTokens()
	svc := newTestAuthService(accounts, tokens)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: account.Email, Password: "admin123"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.Token == "" || resp.RefreshToken == "" {
		t.Error("expected both tokens to be issued")
	}
	if resp.User.Email != account.Email {
		t.Errorf("User.Email = %q, want %q", resp.User.Email, account.Email)
	}
	if got := tokens.created[resp.RefreshToken]; got != account.ID {
		t.Errorf("refresh token stored for account %d, want %d", got, account.ID)
	}
}

func TestLoginBcryptAccount(t *testing.T) {
	account := bcryptAccount(t, 2, "maria@ufvjm.edu.br", "senha-forte-1", models.StatusUsuarioAtivo)
	accounts := &fakeAccounts{
		byEmail: map[string]*models.Orientador{account.Email: account},
		byID:    map[int64]*models.Orientador{account.ID: account},
	}
	svc := newTestAuthService(accounts, newFakeTokens())

	if _, err := svc.Login(context.Background(), &dto.LoginRequest{Email: account.Email, Password: "senha-forte-1"}); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
}

func TestLoginFailures(t *testing.T) {
	active := legacyAccount(1, "admin@ufvjm.edu.br", "admin123", models.StatusUsuarioAtivo)
	inactive := legacyAccount(2, "inativo@ufvjm.edu.br", "admin123", models.StatusUsuarioInativo)
	accounts := &fakeAccounts{
		byEmail: map[string]*models.Orientador{active.Email: active, inactive.Email: inactive},
		byID:    map[int64]*models.Orientador{active.ID: active, inactive.ID: inactive},
	}
	svc := newTestAuthService(accounts, newFakeTokens())

	tests := []struct {
		name  string
		email string
		senha string
	}{
		{"wrong password", "admin@ufvjm.edu.br", "wrong"},
		{"unknown email", "ninguem@ufvjm.edu.br", "admin123"},
		{"inactive account", "inativo@ufvjm.edu.br", "admin123"},
		{"empty password", "admin@ufvjm.edu.br", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: tt.email, Password: tt.senha})
			if !errors.Is(err, apperrors.ErrInvalidCredentials) {
				t.Errorf("Login error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestRefreshTokenRotation(t *testing.T) {
	account := legacyAccount(1, "admin@ufvjm.edu.br", "admin123", models.StatusUsuarioAtivo)
	accounts := &fakeAccounts{
		byEmail: map[string]*models.Orientador{account.Email: account},
		byID:    map[int64]*models.Orientador{account.ID: account},
	}
	tokens := newFakeTokens()
	svc := newTestAuthService(accounts, tokens)

	loginResp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: account.Email, Password: "admin123"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	refreshResp, err := svc.RefreshToken(context.Background(), loginResp.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken returned error: %v", err)
	}
	if refreshResp.RefreshToken == loginResp.RefreshToken {
		t.Error("expected a rotated refresh token")
	}
	if !tokens.revoked[loginResp.RefreshToken] {
		t.Error("expected the presented token to be revoked")
	}

	// The revoked token must not be usable again.
	if _, err := svc.RefreshToken(context.Background(), loginResp.RefreshToken); !errors.Is(err, apperrors.ErrTokenRevoked) {
		t.Errorf("second refresh error = %v, want ErrTokenRevoked", err)
	}
}

func TestLogout(t *testing.T) {
	account := legacyAccount(1, "admin@ufvjm.edu.br", "admin123", models.StatusUsuarioAtivo)
	accounts := &fakeAccounts{
		byEmail: map[string]*models.Orientador{account.Email: account},
		byID:    map[int64]*models.Orientador{account.ID: account},
	}
	tokens := newFakeTokens()
	svc := newTestAuthService(accounts, tokens)

	loginResp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: account.Email, Password: "admin123"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if err := svc.Logout(context.Background(), loginResp.RefreshToken); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if !tokens.revoked[loginResp.RefreshToken] {
		t.Error("expected the refresh token to be revoked")
	}

	// Logging out an unknown or empty token is not an error.
	if err := svc.Logout(context.Background(), "nao-existe"); err != nil {
		t.Errorf("Logout of unknown token returned error: %v", err)
	}
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Errorf("Logout of empty token returned error: %v", err)
	}
}
