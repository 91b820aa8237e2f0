package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/config"
	"github.com/ufvjm/estagiopro/internal/db"
	"github.com/ufvjm/estagiopro/internal/pkg/auth"
)

// HealthController reports service readiness
type HealthController struct {
	database   *db.PostgresDB
	jwtService *auth.JWTService
	cfg        *config.Config
}

// NewHealthController creates a new HealthController
func NewHealthController(database *db.PostgresDB, jwtService *auth.JWTService, cfg *config.Config) *HealthController {
	return &HealthController{database: database, jwtService: jwtService, cfg: cfg}
}

type healthStatus struct {
	Status      string          `json:"status"`
	Timestamp   time.Time       `json:"timestamp"`
	Version     string          `json:"version"`
	Environment string          `json:"environment"`
	Services    map[string]bool `json:"services"`
}

// Check pings the dependencies and reports per-service flags. The endpoint
// answers 200 whenever it can assemble the report; a degraded dependency
// shows up as a false flag, not as an HTTP error.
func (c *HealthController) Check(ctx *gin.Context) {
	dbUp := c.database.Ping(ctx) == nil

	status := "ok"
	if !dbUp {
		status = "degraded"
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(healthStatus{
		Status:      status,
		Timestamp:   time.Now().UTC(),
		Version:     c.cfg.Server.Version,
		Environment: c.cfg.Server.Environment,
		Services: map[string]bool{
			"api":      true,
			"database": dbUp,
			"auth":     c.jwtService.Ready(),
		},
	}, ""))
}
