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

// EmpresaService handles business logic for companies
type EmpresaService struct {
	repo   *repositories.EmpresaRepository
	logger zerolog.Logger
}

// NewEmpresaService creates a new EmpresaService
func NewEmpresaService(repo *repositories.EmpresaRepository, logger zerolog.Logger) *EmpresaService {
	return &EmpresaService{repo: repo, logger: logger}
}

// List retrieves companies with filtering, sorting, and pagination
func (s *EmpresaService) List(ctx context.Context, filter dto.EmpresaFilter, sort *listing.Sort, page, limit int) ([]models.Empresa, int64, error) {
	return s.repo.List(ctx, filter, sort, page, limit)
}

// GetByID retrieves a company by ID
func (s *EmpresaService) GetByID(ctx context.Context, id int64) (*models.Empresa, error) {
	return s.repo.GetByID(ctx, id)
}

// Create registers a new company
func (s *EmpresaService) Create(ctx context.Context, req *dto.CreateEmpresaRequest) (*models.Empresa, error) {
	empresa := &models.Empresa{
		Nome:          req.Nome,
		CNPJ:          helpers.NullString(&req.CNPJ),
		Email:         helpers.NullString(&req.Email),
		Telefone:      helpers.NullString(&req.Telefone),
		Endereco:      helpers.NullString(&req.Endereco),
		Cidade:        helpers.NullString(&req.Cidade),
		Estado:        helpers.NullString(&req.Estado),
		CEP:           helpers.NullString(&req.CEP),
		Representante: helpers.NullString(&req.Representante),
		Status:        models.StatusEmpresaAtiva,
	}
	if req.Status != "" {
		empresa.Status = models.StatusEmpresa(req.Status)
	}

	if err := s.repo.Create(ctx, empresa); err != nil {
		return nil, empresaConflict(err)
	}

	s.logger.Info().Int64("empresaID", empresa.ID).Msg("Empresa created")
	return empresa, nil
}

// Update applies a partial update to a company
func (s *EmpresaService) Update(ctx context.Context, id int64, req *dto.UpdateEmpresaRequest) (*models.Empresa, error) {
	empresa, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		empresa.Nome = *req.Nome
	}
	if req.CNPJ != nil {
		empresa.CNPJ = helpers.NullString(req.CNPJ)
	}
	if req.Email != nil {
		empresa.Email = helpers.NullString(req.Email)
	}
	if req.Telefone != nil {
		empresa.Telefone = helpers.NullString(req.Telefone)
	}
	if req.Endereco != nil {
		empresa.Endereco = helpers.NullString(req.Endereco)
	}
	if req.Cidade != nil {
		empresa.Cidade = helpers.NullString(req.Cidade)
	}
	if req.Estado != nil {
		empresa.Estado = helpers.NullString(req.Estado)
	}
	if req.CEP != nil {
		empresa.CEP = helpers.NullString(req.CEP)
	}
	if req.Representante != nil {
		empresa.Representante = helpers.NullString(req.Representante)
	}
	if req.Status != nil {
		empresa.Status = models.StatusEmpresa(*req.Status)
	}

	if err := s.repo.Update(ctx, empresa); err != nil {
		return nil, empresaConflict(err)
	}
	return empresa, nil
}

// Delete removes a company by ID
func (s *EmpresaService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func empresaConflict(err error) error {
	pgErr, ok := dberrors.UniqueViolation(err)
	if !ok {
		return err
	}
	if pgErr.ConstraintName == "empresas_cnpj_key" {
		return apperrors.NewConflictError("CNPJ já cadastrado")
	}
	return apperrors.NewConflictError("registro duplicado")
}
