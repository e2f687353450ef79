package api

import (
	"log/slog"
	"net/http"

	"blogapi.app/internal/core/engagement"
	"blogapi.app/pkg/errors"
	"github.com/gin-gonic/gin"
)

// CommentRequest represents the HTTP request for adding a comment
type CommentRequest struct {
	Author       string `json:"author" form:"author" binding:"required"`
	Email        string `json:"email" form:"email"`
	Content      string `json:"content" form:"content" binding:"required"`
	CaptchaToken string `json:"captcha_token" form:"captcha_token"`
}

// ContactRequest represents the HTTP request for the contact form
type ContactRequest struct {
	Name         string `json:"name" form:"name" binding:"required"`
	Email        string `json:"email" form:"email" binding:"required,email"`
	Subject      string `json:"subject" form:"subject"`
	Message      string `json:"message" form:"message" binding:"required"`
	CaptchaToken string `json:"captcha_token" form:"captcha_token"`
}

// ViewResponse reports whether the view was counted
type ViewResponse struct {
	Counted bool `json:"counted"`
}

// SuccessResponse represents a successful HTTP response
type SuccessResponse struct {
	Message string `json:"message"`
}

// countView handles POST /api/posts/:id/views requests
func (s *HTTPServerAdapter) countView(c *gin.Context) {
	counted, err := s.engagementUseCase.CountView(c.Request.Context(), engagement.CountViewParams{
		PostID:    c.Param("id"),
		VisitorID: visitorFrom(c),
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ViewResponse{Counted: counted})
}

// submitComment handles POST /api/posts/:id/comments requests
func (s *HTTPServerAdapter) submitComment(c *gin.Context) {
	var httpReq CommentRequest
	if err := c.ShouldBind(&httpReq); err != nil {
		slog.Debug("Comment binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	err := s.engagementUseCase.SubmitComment(c.Request.Context(), engagement.CommentParams{
		PostID:       c.Param("id"),
		VisitorID:    visitorFrom(c),
		Author:       httpReq.Author,
		Email:        httpReq.Email,
		Content:      httpReq.Content,
		CaptchaToken: httpReq.CaptchaToken,
		RemoteIP:     c.ClientIP(),
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{Message: "Comment added"})
}

// submitContact handles POST /api/contact requests
func (s *HTTPServerAdapter) submitContact(c *gin.Context) {
	var httpReq ContactRequest
	if err := c.ShouldBind(&httpReq); err != nil {
		slog.Debug("Contact binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	err := s.engagementUseCase.SubmitContact(c.Request.Context(), engagement.ContactParams{
		VisitorID:    visitorFrom(c),
		Name:         httpReq.Name,
		Email:        httpReq.Email,
		Subject:      httpReq.Subject,
		Message:      httpReq.Message,
		CaptchaToken: httpReq.CaptchaToken,
		RemoteIP:     c.ClientIP(),
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{Message: "Message sent"})
}
