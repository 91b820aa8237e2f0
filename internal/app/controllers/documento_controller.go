package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/app/services"
	"github.com/ufvjm/estagiopro/internal/middleware"
)

// DocumentoController handles document endpoints nested under an
// internship
type DocumentoController struct {
	service *services.DocumentoService
}

// NewDocumentoController creates a new DocumentoController
func NewDocumentoController(service *services.DocumentoService) *DocumentoController {
	return &DocumentoController{service: service}
}

// List returns the documents of one internship
func (c *DocumentoController) List(ctx *gin.Context) {
	estagioID, ok := parseIDParam(ctx, "estagioId")
	if !ok {
		return
	}

	documentos, err := c.service.ListByEstagio(ctx, estagioID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(documentos, ""))
}

// Get returns one document
func (c *DocumentoController) Get(ctx *gin.Context) {
	estagioID, ok := parseIDParam(ctx, "estagioId")
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	documento, err := c.service.GetByID(ctx, estagioID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(documento, ""))
}

// Create attaches a document to an internship
func (c *DocumentoController) Create(ctx *gin.Context) {
	estagioID, ok := parseIDParam(ctx, "estagioId")
	if !ok {
		return
	}

	var req dto.CreateDocumentoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Dados do documento inválidos"))
		return
	}

	documento, err := c.service.Create(ctx, estagioID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(documento, "Documento anexado com sucesso"))
}

// Update applies a partial update to a document
func (c *DocumentoController) Update(ctx *gin.Context) {
	estagioID, ok := parseIDParam(ctx, "estagioId")
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateDocumentoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Dados do documento inválidos"))
		return
	}

	documento, err := c.service.Update(ctx, estagioID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(documento, "Documento atualizado com sucesso"))
}

// Delete removes a document
func (c *DocumentoController) Delete(ctx *gin.Context) {
	estagioID, ok := parseIDParam(ctx, "estagioId")
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(ctx, estagioID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Documento removido com sucesso"))
}
