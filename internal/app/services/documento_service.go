package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ufvjm/estagiopro/internal/app/models"
	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/app/repositories"
	"github.com/ufvjm/estagiopro/internal/pkg/apperrors"
	"github.com/ufvjm/estagiopro/internal/pkg/helpers"
)

// DocumentoService handles business logic for internship documents
type DocumentoService struct {
	repo        *repositories.DocumentoRepository
	estagioRepo *repositories.EstagioRepository
	logger      zerolog.Logger
}

// NewDocumentoService creates a new DocumentoService
func NewDocumentoService(repo *repositories.DocumentoRepository, estagioRepo *repositories.EstagioRepository, logger zerolog.Logger) *DocumentoService {
	return &DocumentoService{repo: repo, estagioRepo: estagioRepo, logger: logger}
}

// ListByEstagio retrieves the documents of one internship
func (s *DocumentoService) ListByEstagio(ctx context.Context, estagioID int64) ([]models.EstagioDocumento, error) {
	if err := s.requireEstagio(ctx, estagioID); err != nil {
		return nil, err
	}
	return s.repo.ListByEstagio(ctx, estagioID)
}

// GetByID retrieves a document scoped to its internship
func (s *DocumentoService) GetByID(ctx context.Context, estagioID, id int64) (*models.EstagioDocumento, error) {
	return s.repo.GetByID(ctx, estagioID, id)
}

// Create attaches a new document to an internship
func (s *DocumentoService) Create(ctx context.Context, estagioID int64, req *dto.CreateDocumentoRequest) (*models.EstagioDocumento, error) {
	if err := s.requireEstagio(ctx, estagioID); err != nil {
		return nil, err
	}

	documento := &models.EstagioDocumento{
		EstagioID:   estagioID,
		Tipo:        models.TipoDocumento(req.Tipo),
		NomeArquivo: req.NomeArquivo,
		URLArquivo:  req.URLArquivo,
		Status:      models.StatusDocumentoPendente,
		Observacoes: helpers.NullString(&req.Observacoes),
	}

	if err := s.repo.Create(ctx, documento); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("documentoID", documento.ID).Int64("estagioID", estagioID).Msg("Documento attached")
	return documento, nil
}

// Update applies a partial update to a document, typically a review
// decision
func (s *DocumentoService) Update(ctx context.Context, estagioID, id int64, req *dto.UpdateDocumentoRequest) (*models.EstagioDocumento, error) {
	documento, err := s.repo.GetByID(ctx, estagioID, id)
	if err != nil {
		return nil, err
	}

	if req.Tipo != nil {
		documento.Tipo = models.TipoDocumento(*req.Tipo)
	}
	if req.NomeArquivo != nil {
		documento.NomeArquivo = *req.NomeArquivo
	}
	if req.URLArquivo != nil {
		documento.URLArquivo = *req.URLArquivo
	}
	if req.Status != nil {
		documento.Status = models.StatusDocumento(*req.Status)
	}
	if req.Observacoes != nil {
		documento.Observacoes = helpers.NullString(req.Observacoes)
	}

	if err := s.repo.Update(ctx, documento); err != nil {
		return nil, err
	}
	return documento, nil
}

// Delete removes a document scoped to its internship
func (s *DocumentoService) Delete(ctx context.Context, estagioID, id int64) error {
	return s.repo.Delete(ctx, estagioID, id)
}

func (s *DocumentoService) requireEstagio(ctx context.Context, estagioID int64) error {
	exists, err := s.estagioRepo.Exists(ctx, estagioID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrEstagioNotFound
	}
	return nil
}
