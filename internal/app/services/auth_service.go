package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/ufvjm/estagiopro/internal/app/models"
	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/pkg/apperrors"
	"github.com/ufvjm/estagiopro/internal/pkg/auth"
)

// accountReader is the slice of the orientador repository the auth
// service needs.
type accountReader interface {
	GetByEmail(ctx context.Context, email string) (*models.Orientador, error)
	GetByID(ctx context.Context, id int64) (*models.Orientador, error)
}

// refreshTokenStore is the slice of the token repository the auth
// service needs.
type refreshTokenStore interface {
	CreateToken(ctx context.Context, token string, orientadorID int64, expiryDate time.Time) error
	GetTokenOwner(ctx context.Context, token string) (int64, error)
	RevokeToken(ctx context.Context, token string) error
	RevokeAllTokens(ctx context.Context, orientadorID int64) error
}

// AuthService handles authentication operations. Credential checks run
// through an authenticator chain so accounts migrated from the legacy
// system keep working next to bcrypt-provisioned ones.
type AuthService struct {
	accounts   accountReader
	tokens     refreshTokenStore
	chain      *auth.Chain
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	accounts accountReader,
	tokens refreshTokenStore,
	chain *auth.Chain,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		accounts:   accounts,
		tokens:     tokens,
		chain:      chain,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login authenticates an account and issues a token pair. Unknown email,
// wrong password, and inactive account all collapse into the same
// invalid-credentials error so the response never says which it was.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := s.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrientadorNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	backend, ok := s.chain.Verify(account, req.Password)
	if !ok {
		s.logger.Warn().Str("email", req.Email).Msg("Login failed: credential mismatch")
		return nil, apperrors.ErrInvalidCredentials
	}

	if account.Status != models.StatusUsuarioAtivo {
		s.logger.Warn().Str("email", req.Email).Str("status", string(account.Status)).Msg("Login rejected: account not active")
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info().Int64("orientadorID", account.ID).Str("backend", backend).Msg("Login succeeded")
	return s.issueTokens(ctx, account)
}

// RefreshToken rotates a refresh token: the presented token is revoked and
// a fresh pair is issued to its owner.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	orientadorID, err := s.tokens.GetTokenOwner(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByID(ctx, orientadorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrientadorNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, err
	}

	if account.Status != models.StatusUsuarioAtivo {
		return nil, apperrors.ErrTokenInvalid
	}

	if err := s.tokens.RevokeToken(ctx, refreshToken); err != nil && !errors.Is(err, apperrors.ErrTokenNotFound) {
		return nil, err
	}

	return s.issueTokens(ctx, account)
}

// Logout revokes a refresh token. A token that is already gone is not an
// error; the session ends either way.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	err := s.tokens.RevokeToken(ctx, refreshToken)
	if err != nil && !errors.Is(err, apperrors.ErrTokenNotFound) {
		return err
	}
	return nil
}

// GetCurrentUser returns the profile of the authenticated account
func (s *AuthService) GetCurrentUser(ctx context.Context, orientadorID int64) (*dto.UserResponse, error) {
	account, err := s.accounts.GetByID(ctx, orientadorID)
	if err != nil {
		return nil, err
	}
	resp := dto.FromOrientador(account)
	return &resp, nil
}

func (s *AuthService) issueTokens(ctx context.Context, account *models.Orientador) (*dto.LoginResponse, error) {
	accessToken, refreshToken, expiresIn, _, err := s.jwtService.GenerateTokenPair(account)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.CreateToken(ctx, refreshToken, account.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		User:         dto.FromOrientador(account),
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
	}, nil
}
