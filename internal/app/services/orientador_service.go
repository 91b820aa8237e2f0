package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ufvjm/estagiopro/internal/app/models"
	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/pkg/apperrors"
	"github.com/ufvjm/estagiopro/internal/pkg/auth"
	"github.com/ufvjm/estagiopro/internal/pkg/dberrors"
	"github.com/ufvjm/estagiopro/internal/pkg/helpers"
	"github.com/ufvjm/estagiopro/internal/pkg/listing"
)

// orientadorStore is the slice of the advisor repository this service uses.
type orientadorStore interface {
	List(ctx context.Context, filter dto.OrientadorFilter, sort *listing.Sort, page, limit int) ([]models.Orientador, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Orientador, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, o *models.Orientador) error
	Update(ctx context.Context, o *models.Orientador) error
	Delete(ctx context.Context, id int64) error
}

// sessionRevoker invalidates every refresh token an account holds.
type sessionRevoker interface {
	RevokeAllTokens(ctx context.Context, orientadorID int64) error
}

// OrientadorService handles business logic for advisor accounts. New and
// updated passwords always go through bcrypt; the legacy digest column is
// never written by this service.
type OrientadorService struct {
	repo     orientadorStore
	sessions sessionRevoker
	logger   zerolog.Logger
}

// NewOrientadorService creates a new OrientadorService
func NewOrientadorService(repo orientadorStore, sessions sessionRevoker, logger zerolog.Logger) *OrientadorService {
	return &OrientadorService{repo: repo, sessions: sessions, logger: logger}
}

// List retrieves advisors with filtering, sorting, and pagination
func (s *OrientadorService) List(ctx context.Context, filter dto.OrientadorFilter, sort *listing.Sort, page, limit int) ([]models.Orientador, int64, error) {
	return s.repo.List(ctx, filter, sort, page, limit)
}

// GetByID retrieves an advisor by ID
func (s *OrientadorService) GetByID(ctx context.Context, id int64) (*models.Orientador, error) {
	return s.repo.GetByID(ctx, id)
}

// Create provisions a new advisor account
func (s *OrientadorService) Create(ctx context.Context, req *dto.CreateOrientadorRequest) (*models.Orientador, error) {
	taken, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewConflictError("email já cadastrado")
	}

	hash, err := auth.HashPassword(req.Senha)
	if err != nil {
		return nil, err
	}

	orientador := &models.Orientador{
		Nome:         req.Nome,
		Email:        req.Email,
		Telefone:     helpers.NullString(&req.Telefone),
		Departamento: helpers.NullString(&req.Departamento),
		Tipo:         models.TipoProfessor,
		Status:       models.StatusUsuarioAtivo,
		SenhaHash:    hash,
	}
	if req.Tipo != "" {
		orientador.Tipo = models.TipoUsuario(req.Tipo)
	}
	if req.Status != "" {
		orientador.Status = models.StatusUsuario(req.Status)
	}

	if err := s.repo.Create(ctx, orientador); err != nil {
		return nil, orientadorConflict(err)
	}

	s.logger.Info().Int64("orientadorID", orientador.ID).Str("tipo", string(orientador.Tipo)).Msg("Orientador created")
	orientador.SenhaHash = ""
	return orientador, nil
}

// Update applies a partial update to an advisor. A non-empty Senha replaces
// the stored credential with a fresh bcrypt hash.
func (s *OrientadorService) Update(ctx context.Context, id int64, req *dto.UpdateOrientadorRequest) (*models.Orientador, error) {
	orientador, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		orientador.Nome = *req.Nome
	}
	if req.Email != nil {
		orientador.Email = *req.Email
	}
	if req.Telefone != nil {
		orientador.Telefone = helpers.NullString(req.Telefone)
	}
	if req.Departamento != nil {
		orientador.Departamento = helpers.NullString(req.Departamento)
	}
	if req.Tipo != nil {
		orientador.Tipo = models.TipoUsuario(*req.Tipo)
	}
	deactivated := false
	if req.Status != nil {
		orientador.Status = models.StatusUsuario(*req.Status)
		deactivated = orientador.Status == models.StatusUsuarioInativo
	}
	senhaChanged := false
	if req.Senha != nil && *req.Senha != "" {
		hash, err := auth.HashPassword(*req.Senha)
		if err != nil {
			return nil, err
		}
		orientador.SenhaHash = hash
		senhaChanged = true
	}

	if err := s.repo.Update(ctx, orientador); err != nil {
		return nil, orientadorConflict(err)
	}

	// A new password or a deactivated account invalidates every open
	// session; the revoke is best effort.
	if senhaChanged || deactivated {
		if err := s.sessions.RevokeAllTokens(ctx, orientador.ID); err != nil {
			s.logger.Warn().Err(err).Int64("orientadorID", orientador.ID).Msg("Failed to revoke sessions after account change")
		}
	}

	orientador.SenhaHash = ""
	return orientador, nil
}

// Delete removes an advisor account by ID
func (s *OrientadorService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func orientadorConflict(err error) error {
	pgErr, ok := dberrors.UniqueViolation(err)
	if !ok {
		return err
	}
	if pgErr.ConstraintName == "orientadores_email_key" {
		return apperrors.NewConflictError("email já cadastrado")
	}
	return apperrors.NewConflictError("registro duplicado")
}
