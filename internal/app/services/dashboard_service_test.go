package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ufvjm/estagiopro/internal/app/models"
)

type fakeStats struct {
	estudantes   int64
	empresas     int64
	orientadores int64
	alertas      int64
	certificados int64
	estagios     map[models.TipoEstagio]map[string]int64
	failOn       string
}

var errStatsBoom = errors.New("boom")

func (f *fakeStats) CountEstudantesAtivos(context.Context) (int64, error) {
	if f.failOn == "estudantes" {
		return 0, errStatsBoom
	}
	return f.estudantes, nil
}

func (f *fakeStats) CountEmpresasAtivas(context.Context) (int64, error) {
	if f.failOn == "empresas" {
		return 0, errStatsBoom
	}
	return f.empresas, nil
}

func (f *fakeStats) CountOrientadoresAtivos(context.Context) (int64, error) {
	return f.orientadores, nil
}

func (f *fakeStats) CountAlertasPendentes(context.Context) (int64, error) {
	return f.alertas, nil
}

func (f *fakeStats) CountCertificados(context.Context) (int64, error) {
	return f.certificados, nil
}

func (f *fakeStats) EstagioStatusCounts(_ context.Context, tipo models.TipoEstagio) (map[string]int64, error) {
	if f.failOn == "estagios" {
		return nil, errStatsBoom
	}
	return f.estagios[tipo], nil
}

func TestGetStats(t *testing.T) {
	source := &fakeStats{
		estudantes:   42,
		empresas:     7,
		orientadores: 5,
		alertas:      3,
		certificados: 12,
		estagios: map[models.TipoEstagio]map[string]int64{
			models.TipoEstagioObrigatorio: {
				"Em Andamento": 3,
				"Concluído":    5,
				"Cancelado":    1,
			},
			models.TipoEstagioNaoObrigatorio: {
				"Concluído": 2,
			},
		},
	}
	svc := NewDashboardService(source, zerolog.Nop())

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats returned error: %v", err)
	}

	if stats.TotalEstudantes != 42 || stats.TotalEmpresas != 7 || stats.TotalOrientadores != 5 {
		t.Errorf("entity totals = %d/%d/%d, want 42/7/5",
			stats.TotalEstudantes, stats.TotalEmpresas, stats.TotalOrientadores)
	}
	if stats.AlertasPendentes != 3 || stats.CertificadosEmitidos != 12 {
		t.Errorf("alertas/certificados = %d/%d, want 3/12", stats.AlertasPendentes, stats.CertificadosEmitidos)
	}

	ob := stats.EstagiosObrigatorios
	if ob.EmAndamento != 3 || ob.Concluidos != 5 || ob.Cancelados != 1 || ob.Total != 9 {
		t.Errorf("obrigatorios = %+v, want {3 5 1 9}", ob)
	}
	nob := stats.EstagiosNaoObrigatorios
	if nob.Concluidos != 2 || nob.Total != 2 || nob.EmAndamento != 0 {
		t.Errorf("nao obrigatorios = %+v, want only 2 concluidos", nob)
	}
}

func TestGetStatsAllOrNothing(t *testing.T) {
	for _, failOn := range []string{"estudantes", "empresas", "estagios"} {
		t.Run(failOn, func(t *testing.T) {
			source := &fakeStats{failOn: failOn}
			svc := NewDashboardService(source, zerolog.Nop())

			stats, err := svc.GetStats(context.Background())
			if !errors.Is(err, errStatsBoom) {
				t.Errorf("GetStats error = %v, want errStatsBoom", err)
			}
			if stats != nil {
				t.Error("expected nil stats when any count fails")
			}
		})
	}
}
