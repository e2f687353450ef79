package ports

import "context"

// EmailParams represents parameters for sending emails
type EmailParams struct {
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// EmailProvider defines the contract for email sending
type EmailProvider interface {
	SendEmail(ctx context.Context, params EmailParams) error
}

// CaptchaVerifier defines the contract for captcha token verification
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) (bool, error)
}
