package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ufvjm/estagiopro/internal/app/models"
	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/app/services"
	"github.com/ufvjm/estagiopro/internal/middleware"
	"github.com/ufvjm/estagiopro/internal/pkg/helpers"
)

// EstagioController handles internship endpoints. One instance is mounted
// per route group, with the tipo fixed at construction, so the mandatory
// and non-mandatory collections stay separate URL spaces over one table.
type EstagioController struct {
	service *services.EstagioService
	tipo    models.TipoEstagio
}

// NewEstagioController creates an EstagioController bound to one
// internship kind
func NewEstagioController(service *services.EstagioService, tipo models.TipoEstagio) *EstagioController {
	return &EstagioController{service: service, tipo: tipo}
}

// List returns internships with pagination, filtering, and sorting
func (c *EstagioController) List(ctx *gin.Context) {
	var filter dto.EstagioFilter
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
	estagios, total, err := c.service.List(ctx, c.tipo, filter, sort, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewPaginatedResponse(estagios, total, page, limit), ""))
}

// Get returns one internship by ID
func (c *EstagioController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "estagioId")
	if !ok {
		return
	}

	estagio, err := c.service.GetByID(ctx, c.tipo, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(estagio, ""))
}

// Create registers a new internship
func (c *EstagioController) Create(ctx *gin.Context) {
	var req dto.CreateEstagioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Dados do estágio inválidos"))
		return
	}

	estagio, err := c.service.Create(ctx, c.tipo, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(estagio, "Estágio cadastrado com sucesso"))
}

// Update applies a partial update to an internship
func (c *EstagioController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "estagioId")
	if !ok {
		return
	}

	var req dto.UpdateEstagioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Dados do estágio inválidos"))
		return
	}

	estagio, err := c.service.Update(ctx, c.tipo, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(estagio, "Estágio atualizado com sucesso"))
}

// Delete removes an internship
func (c *EstagioController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "estagioId")
	if !ok {
		return
	}

	if err := c.service.Delete(ctx, c.tipo, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Estágio removido com sucesso"))
}
