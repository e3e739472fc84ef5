package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad type"), ErrorTypeValidation, http.StatusBadRequest},
		{"unauthorized", NewUnauthorizedError("no token"), ErrorTypeUnauthorized, http.StatusUnauthorized},
		{"forbidden", NewForbiddenError("not admin"), ErrorTypeForbidden, http.StatusForbidden},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
		{"upstream", NewUpstreamError("console down"), ErrorTypeUpstream, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Empty(t, tt.err.Details)
		})
	}
}

func TestAppError_ErrorString(t *testing.T) {
	assert.Equal(t, "validation_error: bad type", NewValidationError("bad type").Error())
	assert.Equal(t, "upstream_error: console down (status 503)",
		NewUpstreamError("console down", "status 503").Error())
}

func TestGetAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("fetch: %w", NewUpstreamError("console down"))

	assert.True(t, IsUpstreamError(wrapped))
	assert.False(t, IsValidationError(wrapped))
	assert.Nil(t, GetAppError(fmt.Errorf("plain")))
}
