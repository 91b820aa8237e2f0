package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/ufvjm/estagiopro/internal/app/controllers"
	appMigrations "github.com/ufvjm/estagiopro/internal/app/migrations"
	"github.com/ufvjm/estagiopro/internal/app/models"
	appRepos "github.com/ufvjm/estagiopro/internal/app/repositories"
	appRoutes "github.com/ufvjm/estagiopro/internal/app/routes"
	appServices "github.com/ufvjm/estagiopro/internal/app/services"
	"github.com/ufvjm/estagiopro/internal/config"
	"github.com/ufvjm/estagiopro/internal/db"
	appMiddleware "github.com/ufvjm/estagiopro/internal/middleware"
	pkgAuth "github.com/ufvjm/estagiopro/internal/pkg/auth"
	"github.com/ufvjm/estagiopro/internal/pkg/logger"
	"github.com/ufvjm/estagiopro/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations, and
// seeds the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx := context.Background()

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(database)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations applied")

	if err := seed.CreateDefaultData(ctx, database.Pool, lgr); err != nil {
		// Seeding failure is not fatal; an operator can provision accounts
		// through the API.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway")
	}

	removed, err := appRepos.NewTokenRepository(database.Pool).CleanupExpiredTokens(ctx)
	if err != nil {
		lgr.Warn().Err(err).Msg("Refresh token cleanup failed, proceeding anyway")
	} else if removed > 0 {
		lgr.Info().Int64("removed", removed).Msg("Expired refresh tokens removed")
	}

	return database, nil
}

// BuildDependencies initializes repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  cfg.AccessTokenExp(),
		RefreshTokenExp: cfg.RefreshTokenExp(),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	authService := appServices.NewAuthService(
		deps.Repos.OrientadorRepository,
		deps.Repos.TokenRepository,
		pkgAuth.DefaultChain(),
		deps.JWTService,
		lgr,
	)
	estudanteService := appServices.NewEstudanteService(deps.Repos.EstudanteRepository, lgr)
	empresaService := appServices.NewEmpresaService(deps.Repos.EmpresaRepository, lgr)
	orientadorService := appServices.NewOrientadorService(deps.Repos.OrientadorRepository, deps.Repos.TokenRepository, lgr)
	estagioService := appServices.NewEstagioService(deps.Repos.EstagioRepository, lgr)
	documentoService := appServices.NewDocumentoService(deps.Repos.DocumentoRepository, deps.Repos.EstagioRepository, lgr)
	certificadoService := appServices.NewCertificadoService(
		deps.Repos.CertificadoRepository,
		deps.Repos.EstagioRepository,
		deps.Repos.EstudanteRepository,
		lgr,
	)
	alertaService := appServices.NewAlertaService(deps.Repos.AlertaRepository, lgr)
	dashboardService := appServices.NewDashboardService(deps.Repos.DashboardRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = appRoutes.Controllers{
		Health:                appControllers.NewHealthController(database, deps.JWTService, cfg),
		Auth:                  appControllers.NewAuthController(authService),
		Estudante:             appControllers.NewEstudanteController(estudanteService),
		Empresa:               appControllers.NewEmpresaController(empresaService),
		Orientador:            appControllers.NewOrientadorController(orientadorService),
		EstagioObrigatorio:    appControllers.NewEstagioController(estagioService, models.TipoEstagioObrigatorio),
		EstagioNaoObrigatorio: appControllers.NewEstagioController(estagioService, models.TipoEstagioNaoObrigatorio),
		Documento:             appControllers.NewDocumentoController(documentoService),
		Certificado:           appControllers.NewCertificadoController(certificadoService),
		Alerta:                appControllers.NewAlertaController(alertaService),
		Dashboard:             appControllers.NewDashboardController(dashboardService),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(lgr))

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}

// requestLogger emits one structured log line per request.
func requestLogger(lgr zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		event := lgr.Info()
		if c.Writer.Status() >= 500 {
			event = lgr.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Msg("Request handled")
	}
}
