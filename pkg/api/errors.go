package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wuyifannppp/poco-agent/pkg/services"
)

// Error codes carried in the response envelope.
const (
	CodeBadRequest      = 40000
	CodeUnauthorized    = 40100
	CodeForbidden       = 40300
	CodeNotFound        = 40400
	CodeConflict        = 40900
	CodeEnvVarNotFound  = 42200
	CodeInternal        = 50000
	CodeDatabase        = 50101
	CodeExternalService = 50201
)

// respondServiceError maps service-layer errors to the response envelope.
func respondServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		respondError(c, http.StatusBadRequest, CodeBadRequest, validErr.Error())
		return
	}
	var envErr *services.EnvVarNotFoundError
	if errors.As(err, &envErr) {
		respondError(c, http.StatusUnprocessableEntity, CodeEnvVarNotFound, envErr.Error())
		return
	}
	var extErr *services.ExternalServiceError
	if errors.As(err, &extErr) {
		slog.Error("External service failure", "error", err)
		respondError(c, http.StatusBadGateway, CodeExternalService, "external service error")
		return
	}
	if errors.Is(err, services.ErrInvalidInput) {
		respondError(c, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}
	if errors.Is(err, services.ErrForbidden) {
		respondError(c, http.StatusForbidden, CodeForbidden, "access denied")
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		respondError(c, http.StatusNotFound, CodeNotFound, "resource not found")
		return
	}
	if errors.Is(err, services.ErrConflict) {
		respondError(c, http.StatusConflict, CodeConflict, "state conflict")
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		respondError(c, http.StatusConflict, CodeConflict, "resource already exists")
		return
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	respondError(c, http.StatusInternalServerError, CodeInternal, "internal server error")
}
