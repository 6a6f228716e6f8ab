package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuyifannppp/poco-agent/pkg/services"
)

func TestRespondServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"validation", services.NewValidationError("prompt", "required"), http.StatusBadRequest, CodeBadRequest},
		{"env var not found", &services.EnvVarNotFoundError{Name: "TOKEN"}, http.StatusUnprocessableEntity, CodeEnvVarNotFound},
		{"external service", services.NewExternalServiceError("github", fmt.Errorf("503")), http.StatusBadGateway, CodeExternalService},
		{"invalid input", services.ErrInvalidInput, http.StatusBadRequest, CodeBadRequest},
		{"forbidden", services.ErrForbidden, http.StatusForbidden, CodeForbidden},
		{"not found", services.ErrNotFound, http.StatusNotFound, CodeNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", services.ErrNotFound), http.StatusNotFound, CodeNotFound},
		{"conflict", services.ErrConflict, http.StatusConflict, CodeConflict},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict, CodeConflict},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			respondServiceError(c, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var envelope Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
			assert.Equal(t, tt.wantCode, envelope.Code)
			assert.NotEmpty(t, envelope.Message)
		})
	}

	t.Run("internal errors never leak details", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)

		respondServiceError(c, errors.New("pq: password authentication failed"))

		var envelope Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, "internal server error", envelope.Message)
	})
}
