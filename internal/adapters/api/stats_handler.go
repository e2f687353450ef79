package api

import (
	"net/http"
	"strings"

	"blogapi.app/internal/core/stats"
	"blogapi.app/pkg/errors"
	"blogapi.app/pkg/validation"
	"github.com/gin-gonic/gin"
)

const maxStatsMapIDs = 100

// getPostStats handles GET /api/posts/:id/stats requests
func (s *HTTPServerAdapter) getPostStats(c *gin.Context) {
	id := c.Param("id")
	if !validation.IsValidIdentifier(id) {
		s.handleError(c, errors.NewValidationError("invalid post id"))
		return
	}

	c.JSON(http.StatusOK, s.statsUseCase.Get(c.Request.Context(), id))
}

// getStatsMap handles GET /api/stats?ids=a,b,c requests
func (s *HTTPServerAdapter) getStatsMap(c *gin.Context) {
	var ids []string
	for _, id := range strings.Split(c.Query("ids"), ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if !validation.IsValidIdentifier(id) {
			s.handleError(c, errors.NewValidationError("invalid post id"))
			return
		}
		ids = append(ids, id)
	}
	if len(ids) > maxStatsMapIDs {
		s.handleError(c, errors.NewValidationError("too many ids"))
		return
	}

	c.JSON(http.StatusOK, s.statsUseCase.GetMap(c.Request.Context(), ids))
}

// TopStatsRequest represents the query of GET /api/stats/top
type TopStatsRequest struct {
	Field string `form:"field" binding:"omitempty,statfield"`
	Limit int    `form:"limit" binding:"omitempty,min=1"`
}

// getTopStats handles GET /api/stats/top requests
func (s *HTTPServerAdapter) getTopStats(c *gin.Context) {
	var httpReq TopStatsRequest
	if err := c.ShouldBindQuery(&httpReq); err != nil {
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}
	if httpReq.Field == "" {
		httpReq.Field = stats.StatFieldViews.String()
	}

	top, err := s.statsUseCase.TopBy(c.Request.Context(), stats.StatFieldFromString(httpReq.Field), httpReq.Limit)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, top)
}
