package engagement

import (
	"context"
	"fmt"

	"blogapi.app/internal/core/cooldown"
	"blogapi.app/internal/ports"
	"blogapi.app/pkg/errors"
	"blogapi.app/pkg/validation"
	"github.com/jonboulle/clockwork"
)

// UseCase runs the visitor-facing write flows: unique views, comments and
// contact messages.
type UseCase struct {
	ledger    ports.UniqueEventLedger
	stats     ports.StatsCounter
	cooldowns ports.CooldownGate
	comments  ports.CommentRepository
	contacts  ports.ContactMessageRepository
	captcha   ports.CaptchaVerifier
	email     ports.EmailProvider
	metrics   ports.ViewMetrics
	config    ports.ConfigProvider
	clock     clockwork.Clock
	logger    ports.Logger
}

// UseCaseDependencies holds the collaborators. Captcha, Email and Metrics are optional.
type UseCaseDependencies struct {
	Ledger    ports.UniqueEventLedger
	Stats     ports.StatsCounter
	Cooldowns ports.CooldownGate
	Comments  ports.CommentRepository
	Contacts  ports.ContactMessageRepository
	Captcha   ports.CaptchaVerifier
	Email     ports.EmailProvider
	Metrics   ports.ViewMetrics
	Config    ports.ConfigProvider
	Clock     clockwork.Clock
	Logger    ports.Logger
}

const captchaUnverifiedWarning = "Captcha is enabled but no verifier is configured, submissions are accepted unchecked"

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Ledger == nil {
		return nil, errors.NewValidationError("views ledger is required")
	}
	if deps.Stats == nil {
		return nil, errors.NewValidationError("stats counter is required")
	}
	if deps.Cooldowns == nil {
		return nil, errors.NewValidationError("cooldown gate is required")
	}
	if deps.Comments == nil {
		return nil, errors.NewValidationError("comment repository is required")
	}
	if deps.Contacts == nil {
		return nil, errors.NewValidationError("contact message repository is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if deps.Captcha == nil && deps.Config.GetContactConfig().CaptchaEnabled {
		deps.Logger.Warn(captchaUnverifiedWarning)
	}

	return &UseCase{
		ledger:    deps.Ledger,
		stats:     deps.Stats,
		cooldowns: deps.Cooldowns,
		comments:  deps.Comments,
		contacts:  deps.Contacts,
		captcha:   deps.Captcha,
		email:     deps.Email,
		metrics:   deps.Metrics,
		config:    deps.Config,
		clock:     deps.Clock,
		logger:    deps.Logger,
	}, nil
}

// ViewSubject returns the ledger subject for a view of postID. With per-day
// counting the UTC day is appended, so a visitor counts once per post per day.
func (uc *UseCase) ViewSubject(postID string) string {
	if !uc.config.GetViewsConfig().PerDay {
		return postID
	}
	return postID + ":" + uc.clock.Now().UTC().Format(DayLayout)
}

// CountView increments the post's view counter the first time a visitor is
// seen for the subject. It returns whether the view was counted. Ledger
// failures skip the increment and are not reported to the caller.
func (uc *UseCase) CountView(ctx context.Context, params CountViewParams) (bool, error) {
	if !validation.IsValidIdentifier(params.PostID) {
		return false, errors.NewValidationError("invalid post id")
	}
	if params.VisitorID == "" {
		uc.recordView(ports.ViewResultAnonymous)
		return false, nil
	}

	subject := uc.ViewSubject(params.PostID)
	first, err := uc.ledger.TryMark(ctx, subject, params.VisitorID)
	if err != nil {
		uc.recordView(ports.ViewResultError)
		uc.logger.Error("View not counted, dedup state unknown",
			ports.F("post_id", params.PostID),
			ports.F("error", err))
		return false, nil
	}
	if !first {
		uc.recordView(ports.ViewResultDuplicate)
		return false, nil
	}

	uc.recordView(ports.ViewResultCounted)
	if err := uc.stats.IncrementViews(ctx, params.PostID, 1); err != nil {
		uc.logger.Error("Failed to increment views total",
			ports.F("post_id", params.PostID),
			ports.F("error", err))
	}

	uc.logger.Debug("Unique view counted", ports.F("subject", subject))
	return true, nil
}

// SubmitComment stores an approved comment unless the visitor commented on the
// same post within the comment cooldown.
func (uc *UseCase) SubmitComment(ctx context.Context, params CommentParams) error {
	if err := params.normalize(); err != nil {
		return err
	}

	if err := uc.verifyCaptcha(ctx, params.CaptchaToken, params.RemoteIP); err != nil {
		return err
	}

	decision := uc.cooldowns.CheckComment(ctx, params.VisitorID, params.PostID)
	if !decision.Allowed {
		return errors.NewRateLimitedError(
			fmt.Sprintf("please wait %d seconds before commenting again", cooldown.Seconds(decision.Remaining)),
			decision.Remaining)
	}

	err := uc.comments.Create(ctx, ports.CommentData{
		PostID:    params.PostID,
		Author:    params.Author,
		Email:     params.Email,
		Content:   params.Content,
		VisitorID: params.VisitorID,
		Approved:  true,
	})
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}

	if err := uc.stats.SyncCommentsTotal(ctx, params.PostID); err != nil {
		uc.logger.Warn("Failed to sync comments total",
			ports.F("post_id", params.PostID),
			ports.F("error", err))
	}

	uc.logger.Debug("Comment created", ports.F("post_id", params.PostID))
	return nil
}

// SubmitContact stores a contact message and notifies the site owner when a
// mailer is configured. Each visitor may send one message per contact cooldown.
func (uc *UseCase) SubmitContact(ctx context.Context, params ContactParams) error {
	if err := params.normalize(); err != nil {
		return err
	}

	decision := uc.cooldowns.CheckContact(ctx, params.VisitorID)
	if !decision.Allowed {
		return errors.NewRateLimitedError(
			fmt.Sprintf("please wait %d seconds before sending another message", cooldown.Seconds(decision.Remaining)),
			decision.Remaining)
	}

	if err := uc.verifyCaptcha(ctx, params.CaptchaToken, params.RemoteIP); err != nil {
		return err
	}

	err := uc.contacts.Create(ctx, ports.ContactMessageData{
		Name:      params.Name,
		Email:     params.Email,
		Subject:   params.Subject,
		Message:   params.Message,
		VisitorID: params.VisitorID,
		IP:        params.RemoteIP,
	})
	if err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}

	uc.notifyOwner(ctx, params)
	return nil
}

func (uc *UseCase) verifyCaptcha(ctx context.Context, token, remoteIP string) error {
	if uc.captcha == nil || !uc.config.GetContactConfig().CaptchaEnabled {
		return nil
	}

	ok, err := uc.captcha.Verify(ctx, token, remoteIP)
	if err != nil {
		return errors.NewExternalAPIError("captcha verification unavailable", err)
	}
	if !ok {
		return errors.NewValidationError("captcha verification failed")
	}
	return nil
}

func (uc *UseCase) notifyOwner(ctx context.Context, params ContactParams) {
	to := uc.config.GetContactConfig().NotifyTo
	if uc.email == nil || to == "" {
		return
	}

	subject := params.Subject
	if subject == "" {
		subject = "Contact form"
	}
	body := fmt.Sprintf("From: %s <%s>\nVisitor: %s\n\n%s", params.Name, params.Email, params.VisitorID, params.Message)

	if err := uc.email.SendEmail(ctx, ports.EmailParams{
		To:      to,
		ReplyTo: params.Email,
		Subject: subject,
		Body:    body,
	}); err != nil {
		uc.logger.Warn("Failed to send contact notification", ports.F("error", err))
	}
}

func (uc *UseCase) recordView(result string) {
	if uc.metrics != nil {
		uc.metrics.RecordView(result)
	}
}
