package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"crane-recon/internal/domain"
	"crane-recon/pkg/logger"
	"crane-recon/pkg/response"
)

// respondError writes the envelope for err with the status its kind maps to
func respondError(c *gin.Context, message string, err error) {
	var (
		formatErr      *domain.FileFormatError
		persistenceErr *domain.PersistenceError
	)

	switch {
	case errors.As(err, &formatErr):
		response.Error(c, http.StatusBadRequest, "FILE_FORMAT_ERROR", message, err.Error())
	case errors.Is(err, domain.ErrInvalidMapping):
		response.BadRequest(c, message, err.Error())
	case errors.Is(err, domain.ErrMappingIncomplete):
		response.Unprocessable(c, "MAPPING_INCOMPLETE", message, err.Error())
	case errors.Is(err, domain.ErrNothingToImport):
		response.Unprocessable(c, "NOTHING_TO_IMPORT", message, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		response.NotFound(c, message)
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDragInProgress):
		response.Conflict(c, message, err.Error())
	case errors.As(err, &persistenceErr):
		logger.GetLogger().WithError(err).WithField("op", persistenceErr.Op).Error(message)
		response.BadGateway(c, "PERSISTENCE_ERROR", message, "The operation can be retried")
	default:
		logger.GetLogger().WithError(err).Error(message)
		response.InternalError(c, message, err.Error())
	}
}
