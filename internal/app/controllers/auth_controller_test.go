package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ufvjm/estagiopro/internal/app/models"
	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/app/services"
	"github.com/ufvjm/estagiopro/internal/middleware"
	"github.com/ufvjm/estagiopro/internal/pkg/apperrors"
	"github.com/ufvjm/estagiopro/internal/pkg/auth"
)

type sessionAccounts struct {
	account *models.Orientador
}

func (s *sessionAccounts) GetByEmail(_ context.Context, email string) (*models.Orientador, error) {
	if s.account != nil && s.account.Email == email {
		return s.account, nil
	}
	return nil, apperrors.ErrOrientadorNotFound
}

func (s *sessionAccounts) GetByID(_ context.Context, id int64) (*models.Orientador, error) {
	if s.account != nil && s.account.ID == id {
		return s.account, nil
	}
	return nil, apperrors.ErrOrientadorNotFound
}

type sessionTokens struct {
	created   map[string]int64
	revokeErr error
}

func newSessionTokens() *sessionTokens {
	return &sessionTokens{created: map[string]int64{}}
}

func (s *sessionTokens) CreateToken(_ context.Context, token string, orientadorID int64, _ time.Time) error {
	s.created[token] = orientadorID
	return nil
}

func (s *sessionTokens) GetTokenOwner(_ context.Context, token string) (int64, error) {
	id, ok := s.created[token]
	if !ok {
		return 0, apperrors.ErrTokenNotFound
	}
	return id, nil
}

func (s *sessionTokens) RevokeToken(_ context.Context, token string) error {
	if s.revokeErr != nil {
		return s.revokeErr
	}
	delete(s.created, token)
	return nil
}

func (s *sessionTokens) RevokeAllTokens(_ context.Context, orientadorID int64) error {
	return nil
}

func newAuthTestRouter(tokens *sessionTokens) *gin.Engine {
	gin.SetMode(gin.TestMode)

	accounts := &sessionAccounts{account: &models.Orientador{
		ID:     1,
		Nome:   "Administrador do Sistema",
		Email:  "admin@ufvjm.edu.br",
		Tipo:   models.TipoAdministrador,
		Status: models.StatusUsuarioAtivo,
		Senha:  auth.LegacyHash("admin123"),
	}}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 7 * 24 * time.Hour,
	})
	svc := services.NewAuthService(accounts, tokens, auth.DefaultChain(), jwtService, zerolog.Nop())
	ctrl := NewAuthController(svc)

	router := gin.New()
	router.POST("/login", ctrl.Login)
	router.POST("/logout", ctrl.Logout)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Result()
}

func sessionCookies(resp *http.Response) map[string]*http.Cookie {
	found := map[string]*http.Cookie{}
	for _, c := range resp.Cookies() {
		if c.Name == middleware.TokenCookieName || c.Name == UserCookieName {
			found[c.Name] = c
		}
	}
	return found
}

func TestLoginSetsSessionCookies(t *testing.T) {
	router := newAuthTestRouter(newSessionTokens())

	resp := postJSON(t, router, "/login", gin.H{"email": "admin@ufvjm.edu.br", "password": "admin123"})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var envelope dto.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if !envelope.Success {
		t.Errorf("Success = false, want true (error %q)", envelope.Error)
	}

	cookies := sessionCookies(resp)
	token, ok := cookies[middleware.TokenCookieName]
	if !ok || token.Value == "" {
		t.Fatal("token cookie missing or empty")
	}
	if !token.HttpOnly {
		t.Error("token cookie must be httpOnly")
	}
	user, ok := cookies[UserCookieName]
	if !ok || user.Value == "" {
		t.Fatal("user cookie missing or empty")
	}
	if user.HttpOnly {
		t.Error("user cookie must be readable by the client")
	}
}

func TestLoginWrongPasswordSetsNoCookies(t *testing.T) {
	router := newAuthTestRouter(newSessionTokens())

	resp := postJSON(t, router, "/login", gin.H{"email": "admin@ufvjm.edu.br", "password": "errada123"})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if len(sessionCookies(resp)) != 0 {
		t.Error("failed login must not set session cookies")
	}
}

func assertSessionCookiesCleared(t *testing.T, resp *http.Response) {
	t.Helper()
	cookies := sessionCookies(resp)
	for _, name := range []string{middleware.TokenCookieName, UserCookieName} {
		c, ok := cookies[name]
		if !ok {
			t.Errorf("cookie %s not cleared", name)
			continue
		}
		if c.Value != "" || c.MaxAge >= 0 {
			t.Errorf("cookie %s = %q maxAge %d, want expired and empty", name, c.Value, c.MaxAge)
		}
	}
}

func TestLogoutClearsSessionCookies(t *testing.T) {
	tokens := newSessionTokens()
	tokens.created["tok-1"] = 1
	router := newAuthTestRouter(tokens)

	resp := postJSON(t, router, "/logout", gin.H{"refreshToken": "tok-1"})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	assertSessionCookiesCleared(t, resp)
	if _, ok := tokens.created["tok-1"]; ok {
		t.Error("refresh token not revoked")
	}
}

func TestLogoutClearsSessionCookiesOnRevokeFailure(t *testing.T) {
	tokens := newSessionTokens()
	tokens.created["tok-1"] = 1
	tokens.revokeErr = errors.New("store indisponível")
	router := newAuthTestRouter(tokens)

	resp := postJSON(t, router, "/logout", gin.H{"refreshToken": "tok-1"})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
	assertSessionCookiesCleared(t, resp)

	var envelope dto.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Success {
		t.Error("Success = true on a failed revoke")
	}
}
