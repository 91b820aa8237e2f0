package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/ufvjm/estagiopro/internal/app/models"
	"github.com/ufvjm/estagiopro/internal/app/repositories"
	"github.com/ufvjm/estagiopro/internal/pkg/apperrors"
	"github.com/ufvjm/estagiopro/internal/pkg/auth"
	"github.com/ufvjm/estagiopro/internal/pkg/helpers"
)

const (
	adminEmail    = "admin@ufvjm.edu.br"
	adminPassword = "admin123"
)

// CreateDefaultData provisions the built-in administrator account if no
// account with its email exists yet. The admin is stored on the legacy
// credential path so logins keep working against a database imported from
// the previous system.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	orientadorRepo := repositories.NewOrientadorRepository(dbPool)

	_, err := orientadorRepo.GetByEmail(ctx, adminEmail)
	if err == nil {
		lgr.Debug().Str("email", adminEmail).Msg("Admin account already present")
		return nil
	}
	if !errors.Is(err, apperrors.ErrOrientadorNotFound) {
		return err
	}

	departamento := "Administração do Sistema"
	admin := &models.Orientador{
		Nome:         "Administrador do Sistema",
		Email:        adminEmail,
		Departamento: helpers.StringPtr(departamento),
		Tipo:         models.TipoAdministrador,
		Status:       models.StatusUsuarioAtivo,
		Senha:        auth.LegacyHash(adminPassword),
	}

	if err := orientadorRepo.CreateLegacy(ctx, admin); err != nil {
		return err
	}

	lgr.Info().Str("email", adminEmail).Msg("Default admin account created")
	return nil
}
