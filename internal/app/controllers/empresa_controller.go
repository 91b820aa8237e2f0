package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/app/services"
	"github.com/ufvjm/estagiopro/internal/middleware"
	"github.com/ufvjm/estagiopro/internal/pkg/helpers"
)

// EmpresaController handles company endpoints
type EmpresaController struct {
	service *services.EmpresaService
}

// NewEmpresaController creates a new EmpresaController
func NewEmpresaController(service *services.EmpresaService) *EmpresaController {
	return &EmpresaController{service: service}
}

// List returns companies with pagination, filtering, and sorting
func (c *EmpresaController) List(ctx *gin.Context) {
	var filter dto.EmpresaFilter
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
	empresas, total, err := c.service.List(ctx, filter, sort, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewPaginatedResponse(empresas, total, page, limit), ""))
}

// Get returns one company by ID
func (c *EmpresaController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	empresa, err := c.service.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(empresa, ""))
}

// Create registers a new company
func (c *EmpresaController) Create(ctx *gin.Context) {
	var req dto.CreateEmpresaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Dados da empresa inválidos"))
		return
	}

	empresa, err := c.service.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(empresa, "Empresa cadastrada com sucesso"))
}

// Update applies a partial update to a company
func (c *EmpresaController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateEmpresaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Dados da empresa inválidos"))
		return
	}

	empresa, err := c.service.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(empresa, "Empresa atualizada com sucesso"))
}

// Delete removes a company
func (c *EmpresaController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Empresa removida com sucesso"))
}
