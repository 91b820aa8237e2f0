package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ufvjm/estagiopro/internal/app/models"
	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/app/repositories"
	"github.com/ufvjm/estagiopro/internal/pkg/apperrors"
	"github.com/ufvjm/estagiopro/internal/pkg/listing"
)

// AlertaService handles business logic for system alerts
type AlertaService struct {
	repo   *repositories.AlertaRepository
	logger zerolog.Logger
}

// NewAlertaService creates a new AlertaService
func NewAlertaService(repo *repositories.AlertaRepository, logger zerolog.Logger) *AlertaService {
	return &AlertaService{repo: repo, logger: logger}
}

// List retrieves alerts with filtering, sorting, and pagination
func (s *AlertaService) List(ctx context.Context, filter dto.AlertaFilter, sort *listing.Sort, page, limit int) ([]models.Alerta, int64, error) {
	return s.repo.List(ctx, filter, sort, page, limit)
}

// GetByID retrieves an alert by ID
func (s *AlertaService) GetByID(ctx context.Context, id int64) (*models.Alerta, error) {
	return s.repo.GetByID(ctx, id)
}

// Create registers a new alert in status 'Pendente'
func (s *AlertaService) Create(ctx context.Context, req *dto.CreateAlertaRequest) (*models.Alerta, error) {
	alerta := &models.Alerta{
		Tipo:             req.Tipo,
		Prioridade:       models.PrioridadeAlerta(req.Prioridade),
		Titulo:           req.Titulo,
		Mensagem:         req.Mensagem,
		DestinatarioID:   req.DestinatarioID,
		DestinatarioTipo: models.DestinatarioTipo(req.DestinatarioTipo),
		Status:           models.StatusAlertaPendente,
	}

	if req.DataVencimento != "" {
		vencimento, err := time.Parse(dateLayout, req.DataVencimento)
		if err != nil {
			return nil, apperrors.NewValidationError("data_vencimento inválida")
		}
		alerta.DataVencimento = &vencimento
	}

	if err := s.repo.Create(ctx, alerta); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("alertaID", alerta.ID).Str("prioridade", req.Prioridade).Msg("Alerta created")
	return alerta, nil
}

// Update applies a partial update to an alert
func (s *AlertaService) Update(ctx context.Context, id int64, req *dto.UpdateAlertaRequest) (*models.Alerta, error) {
	alerta, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		alerta.Status = models.StatusAlerta(*req.Status)
	}
	if req.Prioridade != nil {
		alerta.Prioridade = models.PrioridadeAlerta(*req.Prioridade)
	}
	if req.DataVencimento != nil {
		if *req.DataVencimento == "" {
			alerta.DataVencimento = nil
		} else {
			vencimento, err := time.Parse(dateLayout, *req.DataVencimento)
			if err != nil {
				return nil, apperrors.NewValidationError("data_vencimento inválida")
			}
			alerta.DataVencimento = &vencimento
		}
	}

	if err := s.repo.Update(ctx, alerta); err != nil {
		return nil, err
	}
	return alerta, nil
}

// Delete removes an alert by ID
func (s *AlertaService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
