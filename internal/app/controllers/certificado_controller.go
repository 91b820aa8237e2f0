package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/app/services"
	"github.com/ufvjm/estagiopro/internal/middleware"
	"github.com/ufvjm/estagiopro/internal/pkg/helpers"
)

// CertificadoController handles certificate endpoints
type CertificadoController struct {
	service *services.CertificadoService
}

// NewCertificadoController creates a new CertificadoController
func NewCertificadoController(service *services.CertificadoService) *CertificadoController {
	return &CertificadoController{service: service}
}

// List returns certificates with pagination, filtering, and sorting
func (c *CertificadoController) List(ctx *gin.Context) {
	var filter dto.CertificadoFilter
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
	certificados, total, err := c.service.List(ctx, filter, sort, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewPaginatedResponse(certificados, total, page, limit), ""))
}

// Get returns one certificate by ID
func (c *CertificadoController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	certificado, err := c.service.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(certificado, ""))
}

// Create issues a certificate for a finished internship
func (c *CertificadoController) Create(ctx *gin.Context) {
	var req dto.CreateCertificadoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Dados do certificado inválidos"))
		return
	}

	certificado, err := c.service.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(certificado, "Certificado emitido com sucesso"))
}

// Delete removes a certificate
func (c *CertificadoController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Certificado removido com sucesso"))
}
