package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/app/services"
	"github.com/ufvjm/estagiopro/internal/middleware"
	"github.com/ufvjm/estagiopro/internal/pkg/helpers"
)

// EstudanteController handles student endpoints
type EstudanteController struct {
	service *services.EstudanteService
}

// NewEstudanteController creates a new EstudanteController
func NewEstudanteController(service *services.EstudanteService) *EstudanteController {
	return &EstudanteController{service: service}
}

// List returns students with pagination, filtering, and sorting
func (c *EstudanteController) List(ctx *gin.Context) {
	var filter dto.EstudanteFilter
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
	estudantes, total, err := c.service.List(ctx, filter, sort, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewPaginatedResponse(estudantes, total, page, limit), ""))
}

// Get returns one student by ID
func (c *EstudanteController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	estudante, err := c.service.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(estudante, ""))
}

// Create registers a new student
func (c *EstudanteController) Create(ctx *gin.Context) {
	var req dto.CreateEstudanteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Dados do estudante inválidos"))
		return
	}

	estudante, err := c.service.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(estudante, "Estudante cadastrado com sucesso"))
}

// Update applies a partial update to a student
func (c *EstudanteController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateEstudanteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Dados do estudante inválidos"))
		return
	}

	estudante, err := c.service.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(estudante, "Estudante atualizado com sucesso"))
}

// Delete removes a student
func (c *EstudanteController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Estudante removido com sucesso"))
}
