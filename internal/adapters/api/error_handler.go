package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"blogapi.app/internal/core/cooldown"
	errorspkg "blogapi.app/pkg/errors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
	// RetryAfter is the wait in whole seconds on 429 responses
	RetryAfter int `json:"retry_after,omitempty"`
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	var statusCode int
	var message string

	if !errors.As(err, &appErr) {
		slog.Error("Unhandled error", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	switch appErr.Type {
	case errorspkg.ValidationError:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case errorspkg.NotFoundError:
		statusCode = http.StatusNotFound
		message = appErr.Message
	case errorspkg.AlreadyExistsError:
		statusCode = http.StatusConflict
		message = appErr.Message
	case errorspkg.RateLimitedError:
		seconds := cooldown.Seconds(appErr.RetryAfter)
		if seconds > 0 {
			c.Header("Retry-After", strconv.Itoa(seconds))
		}
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: appErr.Message, RetryAfter: seconds})
		return
	case errorspkg.ExternalAPIError:
		statusCode = http.StatusServiceUnavailable
		message = "External service unavailable"
	case errorspkg.DatabaseError, errorspkg.StorageError:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	if statusCode >= http.StatusInternalServerError {
		slog.Error("Request failed", "error", err, "path", c.FullPath())
	}
	c.JSON(statusCode, ErrorResponse{Error: message})
}
