package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ufvjm/estagiopro/internal/app/models"
	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/pkg/apperrors"
)

func TestCreateEstagioDateValidation(t *testing.T) {
	svc := NewEstagioService(nil, zerolog.Nop())

	tests := []struct {
		name    string
		inicio  string
		termino string
	}{
		{"termino before inicio", "2026-06-01", "2026-05-31"},
		{"malformed inicio", "01/06/2026", "2026-12-01"},
		{"malformed termino", "2026-06-01", "yesterday"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &dto.CreateEstagioRequest{
				EstudanteID:  1,
				EmpresaID:    1,
				OrientadorID: 1,
				DataInicio:   tt.inicio,
				DataTermino:  tt.termino,
				CargaHoraria: 300,
			}
			_, err := svc.Create(context.Background(), models.TipoEstagioObrigatorio, req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("Create error = %v, want validation failure", err)
			}
		})
	}
}

func TestParseDateRangeAllowsSameDay(t *testing.T) {
	inicio, termino, err := parseDateRange("2026-06-01", "2026-06-01")
	if err != nil {
		t.Fatalf("parseDateRange returned error: %v", err)
	}
	if !inicio.Equal(termino) {
		t.Errorf("inicio = %v, termino = %v, want equal", inicio, termino)
	}
}
