package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/pkg/apperrors"
	"github.com/ufvjm/estagiopro/internal/pkg/logger"
)

// HandleAPIError translates service errors into the response envelope.
// Messages stay generic; the specific cause goes to the log, not the
// client.
func HandleAPIError(c *gin.Context, err error) {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, dto.NewErrorResponse(customErr.Message))
		case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(customErr.Message))
		case errors.Is(err, apperrors.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(customErr.Message))
		default:
			logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled custom error")
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Erro interno do servidor"))
		}
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrEstudanteNotFound),
		errors.Is(err, apperrors.ErrEmpresaNotFound),
		errors.Is(err, apperrors.ErrOrientadorNotFound),
		errors.Is(err, apperrors.ErrEstagioNotFound),
		errors.Is(err, apperrors.ErrDocumentoNotFound),
		errors.Is(err, apperrors.ErrCertificadoNotFound),
		errors.Is(err, apperrors.ErrAlertaNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Registro não encontrado"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Credenciais inválidas"))
	case errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenNotFound),
		errors.Is(err, apperrors.ErrTokenRevoked):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Sessão inválida ou expirada"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("Acesso negado"))
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Dados inválidos"))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrMatriculaAlreadyExists),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrResourceAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Registro duplicado"))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Erro interno do servidor"))
	}
}
