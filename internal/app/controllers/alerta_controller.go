package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/app/services"
	"github.com/ufvjm/estagiopro/internal/middleware"
	"github.com/ufvjm/estagiopro/internal/pkg/helpers"
)

// AlertaController handles alert endpoints
type AlertaController struct {
	service *services.AlertaService
}

// NewAlertaController creates a new AlertaController
func NewAlertaController(service *services.AlertaService) *AlertaController {
	return &AlertaController{service: service}
}

// List returns alerts with pagination, filtering, and sorting
func (c *AlertaController) List(ctx *gin.Context) {
	var filter dto.AlertaFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Parâmetros de filtro inválidos"))
		return
	}

	sort, err := parseSortParams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, limit := helpers.ParsePaginationParams(ctx)
	alertas, total, err := c.service.List(ctx, filter, sort, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewPaginatedResponse(alertas, total, page, limit), ""))
}

// Get returns one alert by ID
func (c *AlertaController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	alerta, err := c.service.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(alerta, ""))
}

// Create registers a new alert
func (c *AlertaController) Create(ctx *gin.Context) {
	var req dto.CreateAlertaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Dados do alerta inválidos"))
		return
	}

	alerta, err := c.service.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(alerta, "Alerta criado com sucesso"))
}

// Update applies a partial update to an alert
func (c *AlertaController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAlertaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Dados do alerta inválidos"))
		return
	}

	alerta, err := c.service.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(alerta, "Alerta atualizado com sucesso"))
}

// Delete removes an alert
func (c *AlertaController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Alerta removido com sucesso"))
}
