package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ufvjm/estagiopro/internal/app/models"
	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/app/repositories"
	"github.com/ufvjm/estagiopro/internal/pkg/apperrors"
	"github.com/ufvjm/estagiopro/internal/pkg/dberrors"
	"github.com/ufvjm/estagiopro/internal/pkg/helpers"
	"github.com/ufvjm/estagiopro/internal/pkg/listing"
)

// EstudanteService handles business logic for students
type EstudanteService struct {
	repo   *repositories.EstudanteRepository
	logger zerolog.Logger
}

// NewEstudanteService creates a new EstudanteService
func NewEstudanteService(repo *repositories.EstudanteRepository, logger zerolog.Logger) *EstudanteService {
	return &EstudanteService{repo: repo, logger: logger}
}

// List retrieves students with filtering, sorting, and pagination
func (s *EstudanteService) List(ctx context.Context, filter dto.EstudanteFilter, sort *listing.Sort, page, limit int) ([]models.Estudante, int64, error) {
	return s.repo.List(ctx, filter, sort, page, limit)
}

// GetByID retrieves a student by ID
func (s *EstudanteService) GetByID(ctx context.Context, id int64) (*models.Estudante, error) {
	return s.repo.GetByID(ctx, id)
}

// Create registers a new student
func (s *EstudanteService) Create(ctx context.Context, req *dto.CreateEstudanteRequest) (*models.Estudante, error) {
	estudante := &models.Estudante{
		Nome:      req.Nome,
		Email:     req.Email,
		Telefone:  helpers.NullString(&req.Telefone),
		CPF:       helpers.NullString(&req.CPF),
		Matricula: req.Matricula,
		Curso:     req.Curso,
		Periodo:   req.Periodo,
		Status:    models.StatusEstudanteAtivo,
	}
	if req.Status != "" {
		estudante.Status = models.StatusEstudante(req.Status)
	}

	if err := s.repo.Create(ctx, estudante); err != nil {
		return nil, estudanteConflict(err)
	}

	s.logger.Info().Int64("estudanteID", estudante.ID).Str("matricula", estudante.Matricula).Msg("Estudante created")
	return estudante, nil
}

// Update applies a partial update to a student
func (s *EstudanteService) Update(ctx context.Context, id int64, req *dto.UpdateEstudanteRequest) (*models.Estudante, error) {
	estudante, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		estudante.Nome = *req.Nome
	}
	if req.Email != nil {
		estudante.Email = *req.Email
	}
	if req.Telefone != nil {
		estudante.Telefone = helpers.NullString(req.Telefone)
	}
	if req.CPF != nil {
		estudante.CPF = helpers.NullString(req.CPF)
	}
	if req.Matricula != nil {
		estudante.Matricula = *req.Matricula
	}
	if req.Curso != nil {
		estudante.Curso = *req.Curso
	}
	if req.Periodo != nil {
		estudante.Periodo = *req.Periodo
	}
	if req.Status != nil {
		estudante.Status = models.StatusEstudante(*req.Status)
	}

	if err := s.repo.Update(ctx, estudante); err != nil {
		return nil, estudanteConflict(err)
	}
	return estudante, nil
}

// Delete removes a student by ID
func (s *EstudanteService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func estudanteConflict(err error) error {
	pgErr, ok := dberrors.UniqueViolation(err)
	if !ok {
		return err
	}
	switch pgErr.ConstraintName {
	case "estudantes_matricula_key":
		return apperrors.NewConflictError("matrícula já cadastrada")
	case "estudantes_email_key":
		return apperrors.NewConflictError("email já cadastrado")
	}
	return apperrors.NewConflictError("registro duplicado")
}
