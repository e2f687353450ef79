package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogapi.app/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupErrorTestRouter(err error) *gin.Engine {
	gin.SetMode(gin.TestMode)

	server := &HTTPServerAdapter{}
	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		server.handleError(c, err)
	})
	return router
}

func TestHTTPServerAdapter_HandleError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{"validation", errors.NewValidationError("validation failed"), http.StatusBadRequest, "validation failed"},
		{"not found", errors.NewNotFoundError("resource not found"), http.StatusNotFound, "resource not found"},
		{"already exists", errors.NewAlreadyExistsError("resource already exists"), http.StatusConflict, "resource already exists"},
		{"external api", errors.NewExternalAPIError("pocketbase down", nil), http.StatusServiceUnavailable, "External service unavailable"},
		{"database", errors.NewDatabaseError("database connection failed", nil), http.StatusInternalServerError, "Internal server error"},
		{"storage", errors.NewStorageError("disk full", nil), http.StatusInternalServerError, "Internal server error"},
		{"configuration", errors.NewConfigurationError("configuration error", nil), http.StatusInternalServerError, "Internal server error"},
		{"unknown type", errors.New(errors.ErrorTypeUnknown, "generic error"), http.StatusInternalServerError, "Internal server error"},
		{"plain error", fmt.Errorf("boom"), http.StatusInternalServerError, "Internal server error"},
		{"wrapped validation", fmt.Errorf("submit: %w", errors.NewValidationError("invalid author")), http.StatusBadRequest, "invalid author"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupErrorTestRouter(tt.err)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedMessage, response.Error)
			assert.Empty(t, w.Header().Get("Retry-After"))
		})
	}
}

func TestHTTPServerAdapter_HandleError_RateLimited(t *testing.T) {
	router := setupErrorTestRouter(errors.NewRateLimitedError("please wait 180 seconds before commenting again", 179500*time.Millisecond))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "180", w.Header().Get("Retry-After"))

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 180, response.RetryAfter)
	assert.Contains(t, response.Error, "180 seconds")
}
