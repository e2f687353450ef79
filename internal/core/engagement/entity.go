package engagement

import (
	"unicode/utf8"

	"blogapi.app/pkg/errors"
	"blogapi.app/pkg/validation"
)

// Field limits for visitor submissions
const (
	MaxAuthorLength       = 20
	MaxCommentEmailLength = 30
	MaxCommentLength      = 200

	MaxContactNameLength    = 40
	MaxContactEmailLength   = 80
	MaxContactSubjectLength = 120
	MaxContactMessageLength = 1000
)

// DayLayout formats the UTC day appended to per-day view subjects
const DayLayout = "2006-01-02"

type CountViewParams struct {
	PostID    string
	VisitorID string
}

type CommentParams struct {
	PostID       string
	VisitorID    string
	Author       string
	Email        string
	Content      string
	CaptchaToken string
	RemoteIP     string
}

type ContactParams struct {
	VisitorID    string
	Name         string
	Email        string
	Subject      string
	Message      string
	CaptchaToken string
	RemoteIP     string
}

func tooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}

func (p *CommentParams) normalize() error {
	if !validation.IsValidIdentifier(p.PostID) {
		return errors.NewValidationError("invalid post id")
	}

	var ok bool
	if p.Author, ok = validation.TrimAndValidate(p.Author); !ok || tooLong(p.Author, MaxAuthorLength) {
		return errors.NewValidationError("invalid author")
	}
	p.Email, _ = validation.TrimAndValidate(p.Email)
	if tooLong(p.Email, MaxCommentEmailLength) || (p.Email != "" && !validation.IsValidEmail(p.Email)) {
		return errors.NewValidationError("invalid email")
	}
	if p.Content, ok = validation.TrimAndValidate(p.Content); !ok || tooLong(p.Content, MaxCommentLength) {
		return errors.NewValidationError("invalid comment content")
	}
	return nil
}

func (p *ContactParams) normalize() error {
	var ok bool
	if p.Name, ok = validation.TrimAndValidate(p.Name); !ok || tooLong(p.Name, MaxContactNameLength) {
		return errors.NewValidationError("invalid name")
	}
	p.Email, _ = validation.TrimAndValidate(p.Email)
	if !validation.IsValidEmail(p.Email) || tooLong(p.Email, MaxContactEmailLength) {
		return errors.NewValidationError("invalid email")
	}
	p.Subject, _ = validation.TrimAndValidate(p.Subject)
	if tooLong(p.Subject, MaxContactSubjectLength) {
		return errors.NewValidationError("subject is too long")
	}
	if p.Message, ok = validation.TrimAndValidate(p.Message); !ok || tooLong(p.Message, MaxContactMessageLength) {
		return errors.NewValidationError("invalid message")
	}
	return nil
}
