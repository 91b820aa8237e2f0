package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ufvjm/estagiopro/internal/app/models"
	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/app/repositories"
	"github.com/ufvjm/estagiopro/internal/pkg/apperrors"
	"github.com/ufvjm/estagiopro/internal/pkg/helpers"
	"github.com/ufvjm/estagiopro/internal/pkg/listing"
)

const dateLayout = "2006-01-02"

// EstagioService handles business logic for internships. One instance
// serves both internship kinds; the controller fixes the tipo per route
// group.
type EstagioService struct {
	repo   *repositories.EstagioRepository
	logger zerolog.Logger
}

// NewEstagioService creates a new EstagioService
func NewEstagioService(repo *repositories.EstagioRepository, logger zerolog.Logger) *EstagioService {
	return &EstagioService{repo: repo, logger: logger}
}

// List retrieves internships of one kind with filtering, sorting, and
// pagination
func (s *EstagioService) List(ctx context.Context, tipo models.TipoEstagio, filter dto.EstagioFilter, sort *listing.Sort, page, limit int) ([]models.Estagio, int64, error) {
	return s.repo.List(ctx, tipo, filter, sort, page, limit)
}

// GetByID retrieves one internship of the given kind
func (s *EstagioService) GetByID(ctx context.Context, tipo models.TipoEstagio, id int64) (*models.Estagio, error) {
	return s.repo.GetByID(ctx, tipo, id)
}

// Create registers a new internship after validating its date range
func (s *EstagioService) Create(ctx context.Context, tipo models.TipoEstagio, req *dto.CreateEstagioRequest) (*models.Estagio, error) {
	inicio, termino, err := parseDateRange(req.DataInicio, req.DataTermino)
	if err != nil {
		return nil, err
	}

	estagio := &models.Estagio{
		EstudanteID:  req.EstudanteID,
		EmpresaID:    req.EmpresaID,
		OrientadorID: req.OrientadorID,
		Tipo:         tipo,
		DataInicio:   inicio,
		DataTermino:  termino,
		CargaHoraria: req.CargaHoraria,
		Atividades:   helpers.NullString(&req.Atividades),
		Status:       models.StatusEstagioEmAndamento,
	}
	if req.Status != "" {
		estagio.Status = models.StatusEstagio(req.Status)
	}

	if err := s.repo.Create(ctx, estagio); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("estagioID", estagio.ID).Str("tipo", string(tipo)).Msg("Estagio created")
	return s.repo.GetByID(ctx, tipo, estagio.ID)
}

// Update applies a partial update to an internship, revalidating the date
// range whenever either bound changes
func (s *EstagioService) Update(ctx context.Context, tipo models.TipoEstagio, id int64, req *dto.UpdateEstagioRequest) (*models.Estagio, error) {
	estagio, err := s.repo.GetByID(ctx, tipo, id)
	if err != nil {
		return nil, err
	}

	if req.EstudanteID != nil {
		estagio.EstudanteID = *req.EstudanteID
	}
	if req.EmpresaID != nil {
		estagio.EmpresaID = *req.EmpresaID
	}
	if req.OrientadorID != nil {
		estagio.OrientadorID = *req.OrientadorID
	}
	if req.DataInicio != nil {
		inicio, err := time.Parse(dateLayout, *req.DataInicio)
		if err != nil {
			return nil, apperrors.NewValidationError("data_inicio inválida")
		}
		estagio.DataInicio = inicio
	}
	if req.DataTermino != nil {
		termino, err := time.Parse(dateLayout, *req.DataTermino)
		if err != nil {
			return nil, apperrors.NewValidationError("data_termino inválida")
		}
		estagio.DataTermino = termino
	}
	if req.CargaHoraria != nil {
		estagio.CargaHoraria = *req.CargaHoraria
	}
	if req.Atividades != nil {
		estagio.Atividades = helpers.NullString(req.Atividades)
	}
	if req.Status != nil {
		estagio.Status = models.StatusEstagio(*req.Status)
	}

	if estagio.DataTermino.Before(estagio.DataInicio) {
		return nil, apperrors.NewValidationError("data_termino deve ser igual ou posterior a data_inicio")
	}

	if err := s.repo.Update(ctx, estagio); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, tipo, id)
}

// Delete removes an internship of the given kind by ID
func (s *EstagioService) Delete(ctx context.Context, tipo models.TipoEstagio, id int64) error {
	return s.repo.Delete(ctx, tipo, id)
}

func parseDateRange(inicioStr, terminoStr string) (time.Time, time.Time, error) {
	inicio, err := time.Parse(dateLayout, inicioStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("data_inicio inválida")
	}
	termino, err := time.Parse(dateLayout, terminoStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("data_termino inválida")
	}
	if termino.Before(inicio) {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("data_termino deve ser igual ou posterior a data_inicio")
	}
	return inicio, termino, nil
}
