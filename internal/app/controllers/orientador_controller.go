package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/app/services"
	"github.com/ufvjm/estagiopro/internal/middleware"
	"github.com/ufvjm/estagiopro/internal/pkg/helpers"
)

// OrientadorController handles advisor endpoints. Listing is open to any
// authenticated account; create, update, and delete are admin-only, which
// the route group enforces.
type OrientadorController struct {
	service *services.OrientadorService
}

// NewOrientadorController creates a new OrientadorController
func NewOrientadorController(service *services.OrientadorService) *OrientadorController {
	return &OrientadorController{service: service}
}

// List returns advisors with pagination, filtering, and sorting
func (c *OrientadorController) List(ctx *gin.Context) {
	var filter dto.OrientadorFilter
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
	orientadores, total, err := c.service.List(ctx, filter, sort, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewPaginatedResponse(orientadores, total, page, limit), ""))
}

// Get returns one advisor by ID
func (c *OrientadorController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	orientador, err := c.service.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(orientador, ""))
}

// Create provisions a new advisor account
func (c *OrientadorController) Create(ctx *gin.Context) {
	var req dto.CreateOrientadorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Dados do orientador inválidos"))
		return
	}

	orientador, err := c.service.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(orientador, "Orientador cadastrado com sucesso"))
}

// Update applies a partial update to an advisor
func (c *OrientadorController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateOrientadorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Dados do orientador inválidos"))
		return
	}

	orientador, err := c.service.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(orientador, "Orientador atualizado com sucesso"))
}

// Delete removes an advisor account
func (c *OrientadorController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Orientador removido com sucesso"))
}
