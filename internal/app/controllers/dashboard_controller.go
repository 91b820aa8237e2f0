package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/app/services"
	"github.com/ufvjm/estagiopro/internal/middleware"
)

// DashboardController handles the statistics endpoint
type DashboardController struct {
	service *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(service *services.DashboardService) *DashboardController {
	return &DashboardController{service: service}
}

// Stats returns the consolidated dashboard statistics
func (c *DashboardController) Stats(ctx *gin.Context) {
	stats, err := c.service.GetStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, ""))
}
