package engagement

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"blogapi.app/internal/mocks"
	"blogapi.app/internal/ports"
	"blogapi.app/pkg/errors"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uc        *UseCase
	ledger    *mocks.UniqueEventLedger
	stats     *mocks.StatsCounter
	cooldowns *mocks.CooldownGate
	comments  *mocks.CommentRepository
	contacts  *mocks.ContactMessageRepository
	captcha   *mocks.CaptchaVerifier
	email     *mocks.EmailProvider
	metrics   *mocks.ViewMetrics
	config    *mocks.ConfigProvider
}

func newFixture(t *testing.T, perDay bool) fixture {
	f := fixture{
		ledger:    mocks.NewUniqueEventLedger(t),
		stats:     mocks.NewStatsCounter(t),
		cooldowns: mocks.NewCooldownGate(t),
		comments:  mocks.NewCommentRepository(t),
		contacts:  mocks.NewContactMessageRepository(t),
		captcha:   mocks.NewCaptchaVerifier(t),
		email:     mocks.NewEmailProvider(t),
		metrics:   mocks.NewViewMetrics(t),
		config:    mocks.NewConfigProvider(t),
	}
	f.config.EXPECT().GetViewsConfig().Return(ports.ViewsConfig{PerDay: perDay}).Maybe()
	f.config.EXPECT().GetContactConfig().Return(ports.ContactConfig{
		NotifyTo:       "owner@example.com",
		CaptchaEnabled: true,
	}).Maybe()

	uc, err := NewUseCase(UseCaseDependencies{
		Ledger:    f.ledger,
		Stats:     f.stats,
		Cooldowns: f.cooldowns,
		Comments:  f.comments,
		Contacts:  f.contacts,
		Captcha:   f.captcha,
		Email:     f.email,
		Metrics:   f.metrics,
		Config:    f.config,
		Clock:     clockwork.NewFakeClockAt(time.Date(2026, 10, 17, 23, 59, 0, 0, time.UTC)),
		Logger:    mocks.NewLoggerAllowingAll(t),
	})
	require.NoError(t, err)
	f.uc = uc
	return f
}

func TestUseCase_CountView(t *testing.T) {
	ctx := context.Background()

	t.Run("FirstViewIsCounted", func(t *testing.T) {
		f := newFixture(t, true)
		f.ledger.EXPECT().TryMark(mock.Anything, "post-1:2026-10-17", "vid-A").Return(true, nil)
		f.stats.EXPECT().IncrementViews(mock.Anything, "post-1", int64(1)).Return(nil)
		f.metrics.EXPECT().RecordView(ports.ViewResultCounted).Return()

		counted, err := f.uc.CountView(ctx, CountViewParams{PostID: "post-1", VisitorID: "vid-A"})
		require.NoError(t, err)
		assert.True(t, counted)
	})

	t.Run("RepeatViewIsNotCounted", func(t *testing.T) {
		f := newFixture(t, false)
		f.ledger.EXPECT().TryMark(mock.Anything, "post-1", "vid-A").Return(false, nil)
		f.metrics.EXPECT().RecordView(ports.ViewResultDuplicate).Return()

		counted, err := f.uc.CountView(ctx, CountViewParams{PostID: "post-1", VisitorID: "vid-A"})
		require.NoError(t, err)
		assert.False(t, counted)
	})

	t.Run("AnonymousVisitorSkipsLedger", func(t *testing.T) {
		f := newFixture(t, true)
		f.metrics.EXPECT().RecordView(ports.ViewResultAnonymous).Return()

		counted, err := f.uc.CountView(ctx, CountViewParams{PostID: "post-1"})
		require.NoError(t, err)
		assert.False(t, counted)
	})

	t.Run("LedgerFailureSkipsIncrement", func(t *testing.T) {
		f := newFixture(t, true)
		f.ledger.EXPECT().TryMark(mock.Anything, mock.Anything, "vid-A").
			Return(false, errors.NewStorageError("append failed", fmt.Errorf("disk full")))
		f.metrics.EXPECT().RecordView(ports.ViewResultError).Return()

		counted, err := f.uc.CountView(ctx, CountViewParams{PostID: "post-1", VisitorID: "vid-A"})
		require.NoError(t, err)
		assert.False(t, counted)
		f.stats.AssertNotCalled(t, "IncrementViews", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("IncrementFailureStillReportsCounted", func(t *testing.T) {
		f := newFixture(t, true)
		f.ledger.EXPECT().TryMark(mock.Anything, mock.Anything, "vid-A").Return(true, nil)
		f.stats.EXPECT().IncrementViews(mock.Anything, "post-1", int64(1)).
			Return(errors.NewExternalAPIError("patch failed", nil))
		f.metrics.EXPECT().RecordView(ports.ViewResultCounted).Return()

		counted, err := f.uc.CountView(ctx, CountViewParams{PostID: "post-1", VisitorID: "vid-A"})
		require.NoError(t, err)
		assert.True(t, counted)
	})

	t.Run("InvalidPostID", func(t *testing.T) {
		f := newFixture(t, true)
		_, err := f.uc.CountView(ctx, CountViewParams{PostID: `x" || true`, VisitorID: "vid-A"})
		assert.True(t, errors.IsValidationError(err))
	})
}

func validComment() CommentParams {
	return CommentParams{
		PostID:       "post-1",
		VisitorID:    "vid-A",
		Author:       " Ala ",
		Email:        "ala@example.com",
		Content:      " Great post! ",
		CaptchaToken: "token",
		RemoteIP:     "203.0.113.7",
	}
}

func TestUseCase_SubmitComment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t, true)
		f.captcha.EXPECT().Verify(mock.Anything, "token", "203.0.113.7").Return(true, nil)
		f.cooldowns.EXPECT().CheckComment(mock.Anything, "vid-A", "post-1").Return(ports.CooldownDecision{Allowed: true})
		f.comments.EXPECT().Create(mock.Anything, ports.CommentData{
			PostID:    "post-1",
			Author:    "Ala",
			Email:     "ala@example.com",
			Content:   "Great post!",
			VisitorID: "vid-A",
			Approved:  true,
		}).Return(nil)
		f.stats.EXPECT().SyncCommentsTotal(mock.Anything, "post-1").Return(nil)

		require.NoError(t, f.uc.SubmitComment(ctx, validComment()))
	})

	t.Run("CooldownActive", func(t *testing.T) {
		f := newFixture(t, true)
		f.captcha.EXPECT().Verify(mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
		f.cooldowns.EXPECT().CheckComment(mock.Anything, "vid-A", "post-1").
			Return(ports.CooldownDecision{Allowed: false, Remaining: 179500 * time.Millisecond})

		err := f.uc.SubmitComment(ctx, validComment())
		require.Error(t, err)
		assert.True(t, errors.IsRateLimitedError(err))
		assert.Equal(t, 179500*time.Millisecond, errors.RetryAfter(err))
		assert.Contains(t, err.Error(), "180 seconds")
	})

	t.Run("CaptchaRejected", func(t *testing.T) {
		f := newFixture(t, true)
		f.captcha.EXPECT().Verify(mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

		assert.True(t, errors.IsValidationError(f.uc.SubmitComment(ctx, validComment())))
	})

	t.Run("SyncFailureIsNotFatal", func(t *testing.T) {
		f := newFixture(t, true)
		f.captcha.EXPECT().Verify(mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
		f.cooldowns.EXPECT().CheckComment(mock.Anything, mock.Anything, mock.Anything).Return(ports.CooldownDecision{Allowed: true})
		f.comments.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		f.stats.EXPECT().SyncCommentsTotal(mock.Anything, "post-1").Return(fmt.Errorf("timeout"))

		assert.NoError(t, f.uc.SubmitComment(ctx, validComment()))
	})

	t.Run("CreateFailure", func(t *testing.T) {
		f := newFixture(t, true)
		f.captcha.EXPECT().Verify(mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
		f.cooldowns.EXPECT().CheckComment(mock.Anything, mock.Anything, mock.Anything).Return(ports.CooldownDecision{Allowed: true})
		f.comments.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.NewExternalAPIError("create failed", nil))

		assert.True(t, errors.IsExternalAPIError(f.uc.SubmitComment(ctx, validComment())))
	})
}

func TestUseCase_SubmitComment_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *CommentParams)
	}{
		{"EmptyAuthor", func(p *CommentParams) { p.Author = "  " }},
		{"LongAuthor", func(p *CommentParams) { p.Author = strings.Repeat("a", MaxAuthorLength+1) }},
		{"BadEmail", func(p *CommentParams) { p.Email = "not-an-email" }},
		{"EmptyContent", func(p *CommentParams) { p.Content = "" }},
		{"LongContent", func(p *CommentParams) { p.Content = strings.Repeat("ż", MaxCommentLength+1) }},
		{"BadPostID", func(p *CommentParams) { p.PostID = "a/b" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, true)
			p := validComment()
			tt.mutate(&p)
			assert.True(t, errors.IsValidationError(f.uc.SubmitComment(context.Background(), p)))
		})
	}
}

func validContact() ContactParams {
	return ContactParams{
		VisitorID:    "vid-A",
		Name:         "Ola",
		Email:        "ola@example.com",
		Subject:      "Hello",
		Message:      "Nice blog",
		CaptchaToken: "token",
		RemoteIP:     "203.0.113.7",
	}
}

func TestUseCase_SubmitContact(t *testing.T) {
	ctx := context.Background()

	t.Run("SuccessNotifiesOwner", func(t *testing.T) {
		f := newFixture(t, true)
		f.cooldowns.EXPECT().CheckContact(mock.Anything, "vid-A").Return(ports.CooldownDecision{Allowed: true})
		f.captcha.EXPECT().Verify(mock.Anything, "token", "203.0.113.7").Return(true, nil)
		f.contacts.EXPECT().Create(mock.Anything, ports.ContactMessageData{
			Name:      "Ola",
			Email:     "ola@example.com",
			Subject:   "Hello",
			Message:   "Nice blog",
			VisitorID: "vid-A",
			IP:        "203.0.113.7",
		}).Return(nil)
		f.email.EXPECT().SendEmail(mock.Anything, mock.MatchedBy(func(p ports.EmailParams) bool {
			return p.To == "owner@example.com" && p.ReplyTo == "ola@example.com" && p.Subject == "Hello"
		})).Return(nil)

		require.NoError(t, f.uc.SubmitContact(ctx, validContact()))
	})

	t.Run("CooldownCheckedBeforeCaptcha", func(t *testing.T) {
		f := newFixture(t, true)
		f.cooldowns.EXPECT().CheckContact(mock.Anything, "vid-A").
			Return(ports.CooldownDecision{Allowed: false, Remaining: 5 * time.Minute})

		err := f.uc.SubmitContact(ctx, validContact())
		assert.True(t, errors.IsRateLimitedError(err))
		assert.Equal(t, 5*time.Minute, errors.RetryAfter(err))
	})

	t.Run("MailerFailureIsNotFatal", func(t *testing.T) {
		f := newFixture(t, true)
		f.cooldowns.EXPECT().CheckContact(mock.Anything, mock.Anything).Return(ports.CooldownDecision{Allowed: true})
		f.captcha.EXPECT().Verify(mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
		f.contacts.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		f.email.EXPECT().SendEmail(mock.Anything, mock.Anything).Return(fmt.Errorf("smtp down"))

		assert.NoError(t, f.uc.SubmitContact(ctx, validContact()))
	})

	t.Run("CaptchaUnavailable", func(t *testing.T) {
		f := newFixture(t, true)
		f.cooldowns.EXPECT().CheckContact(mock.Anything, mock.Anything).Return(ports.CooldownDecision{Allowed: true})
		f.captcha.EXPECT().Verify(mock.Anything, mock.Anything, mock.Anything).Return(false, fmt.Errorf("timeout"))

		assert.True(t, errors.IsExternalAPIError(f.uc.SubmitContact(ctx, validContact())))
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		f := newFixture(t, true)
		p := validContact()
		p.Email = ""
		assert.True(t, errors.IsValidationError(f.uc.SubmitContact(ctx, p)))
	})
}

func TestUseCase_OptionalCollaborators(t *testing.T) {
	contacts := mocks.NewContactMessageRepository(t)
	cooldowns := mocks.NewCooldownGate(t)
	config := mocks.NewConfigProvider(t)
	config.EXPECT().GetContactConfig().Return(ports.ContactConfig{NotifyTo: "owner@example.com", CaptchaEnabled: true}).Maybe()

	logger := mocks.NewLoggerAllowingAll(t)

	uc, err := NewUseCase(UseCaseDependencies{
		Ledger:    mocks.NewUniqueEventLedger(t),
		Stats:     mocks.NewStatsCounter(t),
		Cooldowns: cooldowns,
		Comments:  mocks.NewCommentRepository(t),
		Contacts:  contacts,
		Config:    config,
		Logger:    logger,
	})
	require.NoError(t, err)
	logger.AssertCalled(t, "Warn", captchaUnverifiedWarning)

	cooldowns.EXPECT().CheckContact(mock.Anything, "vid-A").Return(ports.CooldownDecision{Allowed: true})
	contacts.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	assert.NoError(t, uc.SubmitContact(context.Background(), validContact()))
}

func TestNewUseCase_Validation(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{})
	assert.True(t, errors.IsValidationError(err))
}

func TestNewUseCase_CaptchaVerifierConfigured(t *testing.T) {
	config := mocks.NewConfigProvider(t)
	config.EXPECT().GetContactConfig().Return(ports.ContactConfig{CaptchaEnabled: true}).Maybe()
	logger := mocks.NewLoggerAllowingAll(t)

	_, err := NewUseCase(UseCaseDependencies{
		Ledger:    mocks.NewUniqueEventLedger(t),
		Stats:     mocks.NewStatsCounter(t),
		Cooldowns: mocks.NewCooldownGate(t),
		Comments:  mocks.NewCommentRepository(t),
		Contacts:  mocks.NewContactMessageRepository(t),
		Captcha:   mocks.NewCaptchaVerifier(t),
		Config:    config,
		Logger:    logger,
	})
	require.NoError(t, err)
	logger.AssertNotCalled(t, "Warn", captchaUnverifiedWarning)
}
