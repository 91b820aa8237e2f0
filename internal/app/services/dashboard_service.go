package services

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ufvjm/estagiopro/internal/app/models"
	"github.com/ufvjm/estagiopro/internal/app/models/dto"
)

// statsSource is the slice of the dashboard repository the aggregator
// needs.
type statsSource interface {
	CountEstudantesAtivos(ctx context.Context) (int64, error)
	CountEmpresasAtivas(ctx context.Context) (int64, error)
	CountOrientadoresAtivos(ctx context.Context) (int64, error)
	CountAlertasPendentes(ctx context.Context) (int64, error)
	CountCertificados(ctx context.Context) (int64, error)
	EstagioStatusCounts(ctx context.Context, tipo models.TipoEstagio) (map[string]int64, error)
}

// DashboardService assembles the consolidated statistics object. All
// counts run concurrently; one failure fails the whole aggregation so
// the dashboard never shows a half-consistent picture.
type DashboardService struct {
	source statsSource
	logger zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(source statsSource, logger zerolog.Logger) *DashboardService {
	return &DashboardService{source: source, logger: logger}
}

// GetStats runs the count queries in parallel and reduces them into one
// DashboardStats value.
func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	var stats dto.DashboardStats

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.source.CountEstudantesAtivos(gctx)
		stats.TotalEstudantes = n
		return err
	})
	g.Go(func() error {
		n, err := s.source.CountEmpresasAtivas(gctx)
		stats.TotalEmpresas = n
		return err
	})
	g.Go(func() error {
		n, err := s.source.CountOrientadoresAtivos(gctx)
		stats.TotalOrientadores = n
		return err
	})
	g.Go(func() error {
		n, err := s.source.CountAlertasPendentes(gctx)
		stats.AlertasPendentes = n
		return err
	})
	g.Go(func() error {
		n, err := s.source.CountCertificados(gctx)
		stats.CertificadosEmitidos = n
		return err
	})
	g.Go(func() error {
		counts, err := s.source.EstagioStatusCounts(gctx, models.TipoEstagioObrigatorio)
		stats.EstagiosObrigatorios = reduceEstagioStats(counts)
		return err
	})
	g.Go(func() error {
		counts, err := s.source.EstagioStatusCounts(gctx, models.TipoEstagioNaoObrigatorio)
		stats.EstagiosNaoObrigatorios = reduceEstagioStats(counts)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("Dashboard aggregation failed")
		return nil, err
	}

	return &stats, nil
}

func reduceEstagioStats(counts map[string]int64) dto.EstagioStats {
	var st dto.EstagioStats
	for status, n := range counts {
		switch models.StatusEstagio(status) {
		case models.StatusEstagioEmAndamento:
			st.EmAndamento = n
		case models.StatusEstagioConcluido:
			st.Concluidos = n
		case models.StatusEstagioCancelado:
			st.Cancelados = n
		}
		st.Total += n
	}
	return st
}
