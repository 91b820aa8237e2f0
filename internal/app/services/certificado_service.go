package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ufvjm/estagiopro/internal/app/models"
	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/app/repositories"
	"github.com/ufvjm/estagiopro/internal/pkg/listing"
)

// CertificadoService handles business logic for completion certificates.
// The certificate number is assigned here, never taken from the request.
type CertificadoService struct {
	repo          *repositories.CertificadoRepository
	estagioRepo   *repositories.EstagioRepository
	estudanteRepo *repositories.EstudanteRepository
	logger        zerolog.Logger
}

// NewCertificadoService creates a new CertificadoService
func NewCertificadoService(
	repo *repositories.CertificadoRepository,
	estagioRepo *repositories.EstagioRepository,
	estudanteRepo *repositories.EstudanteRepository,
	logger zerolog.Logger,
) *CertificadoService {
	return &CertificadoService{
		repo:          repo,
		estagioRepo:   estagioRepo,
		estudanteRepo: estudanteRepo,
		logger:        logger,
	}
}

// List retrieves certificates with filtering, sorting, and pagination
func (s *CertificadoService) List(ctx context.Context, filter dto.CertificadoFilter, sort *listing.Sort, page, limit int) ([]models.Certificado, int64, error) {
	return s.repo.List(ctx, filter, sort, page, limit)
}

// GetByID retrieves a certificate by ID
func (s *CertificadoService) GetByID(ctx context.Context, id int64) (*models.Certificado, error) {
	return s.repo.GetByID(ctx, id)
}

// Create issues a certificate for a finished internship. The tipo is
// inherited from the internship and the number is generated server-side.
func (s *CertificadoService) Create(ctx context.Context, req *dto.CreateCertificadoRequest) (*models.Certificado, error) {
	if _, err := s.estudanteRepo.GetByID(ctx, req.EstudanteID); err != nil {
		return nil, err
	}
	tipo, err := s.estagioRepo.GetTipoByID(ctx, req.EstagioID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	certificado := &models.Certificado{
		EstudanteID:       req.EstudanteID,
		EstagioID:         req.EstagioID,
		Tipo:              tipo,
		NumeroCertificado: newNumeroCertificado(now),
		DataEmissao:       now,
		URLArquivo:        req.URLArquivo,
	}

	if err := s.repo.Create(ctx, certificado); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("certificadoID", certificado.ID).Str("numero", certificado.NumeroCertificado).Msg("Certificado issued")
	return s.repo.GetByID(ctx, certificado.ID)
}

// Delete removes a certificate by ID
func (s *CertificadoService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func newNumeroCertificado(emitted time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("CERT-%d-%s", emitted.Year(), suffix)
}
