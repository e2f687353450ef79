package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status     string      `json:"status"`
	Components interface{} `json:"components"`
}

// getBackendMetrics handles GET /admin/metrics.json requests
func (s *HTTPServerAdapter) getBackendMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, s.adminCollector.BackendMetrics())
}

// resetBackendMetrics handles POST /admin/metrics/reset requests
func (s *HTTPServerAdapter) resetBackendMetrics(c *gin.Context) {
	s.adminCollector.ResetBackendMetrics()
	c.JSON(http.StatusOK, SuccessResponse{Message: "metrics reset"})
}

// getCacheStats handles GET /admin/cache.json requests
func (s *HTTPServerAdapter) getCacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.adminCollector.CacheStats())
}

// clearCache handles POST /admin/cache/clear requests
func (s *HTTPServerAdapter) clearCache(c *gin.Context) {
	s.adminCollector.ClearCache()
	c.JSON(http.StatusOK, SuccessResponse{Message: "cache cleared"})
}

// health handles GET /health requests
func (s *HTTPServerAdapter) health(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	status, code := "healthy", http.StatusOK
	for _, r := range results {
		if r.Status != "healthy" {
			status, code = "degraded", http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(code, HealthResponse{Status: status, Components: results})
}
