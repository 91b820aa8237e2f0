package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/pkg/listing"
)

// parseIDParam reads a positive int64 path parameter, writing a 400
// response itself when the value is unusable.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("ID inválido"))
		return 0, false
	}
	return id, true
}

// parseSortParams reads the optional sortBy/order query pair. The field
// itself is validated against the entity's whitelist in the repository.
func parseSortParams(ctx *gin.Context) (*listing.Sort, error) {
	field := ctx.Query("sortBy")
	if field == "" {
		return nil, nil
	}
	direction, err := listing.ParseDirection(ctx.Query("order"))
	if err != nil {
		return nil, err
	}
	return &listing.Sort{Field: field, Direction: direction}, nil
}
