package cooldown

import (
	"context"
	"fmt"
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

type gateFixture struct {
	gate     *Gate
	comments *mocks.CommentRepository
	contacts *mocks.ContactMessageRepository
	clock    *clockwork.FakeClock
}

func newGateFixture(t *testing.T) gateFixture {
	comments := mocks.NewCommentRepository(t)
	contacts := mocks.NewContactMessageRepository(t)
	config := mocks.NewConfigProvider(t)
	config.EXPECT().GetCooldownConfig().Return(ports.CooldownConfig{
		Comment: 300 * time.Second,
		Contact: 600 * time.Second,
	}).Maybe()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC))

	gate, err := NewGate(GateDependencies{
		Comments: comments,
		Contacts: contacts,
		Config:   config,
		Clock:    clock,
		Logger:   mocks.NewLoggerAllowingAll(t),
	})
	require.NoError(t, err)

	return gateFixture{gate: gate, comments: comments, contacts: contacts, clock: clock}
}

func TestGate_CheckComment(t *testing.T) {
	ctx := context.Background()

	t.Run("RecentComment", func(t *testing.T) {
		f := newGateFixture(t)
		f.comments.EXPECT().LastCreatedBy(mock.Anything, "vid-123456789abcdef", "post-1").
			Return(f.clock.Now().Add(-120*time.Second), true, nil)

		d := f.gate.CheckComment(ctx, "vid-123456789abcdef", "post-1")
		assert.False(t, d.Allowed)
		assert.Equal(t, 180*time.Second, d.Remaining)
	})

	t.Run("NeverCommented", func(t *testing.T) {
		f := newGateFixture(t)
		f.comments.EXPECT().LastCreatedBy(mock.Anything, "vid", "post-1").Return(time.Time{}, false, nil)

		assert.True(t, f.gate.CheckComment(ctx, "vid", "post-1").Allowed)
	})

	t.Run("LookupFailureFailsOpen", func(t *testing.T) {
		f := newGateFixture(t)
		f.comments.EXPECT().LastCreatedBy(mock.Anything, "vid", "post-1").
			Return(time.Time{}, false, fmt.Errorf("backend unavailable"))

		assert.True(t, f.gate.CheckComment(ctx, "vid", "post-1").Allowed)
	})

	t.Run("AnonymousVisitorSkipsLookup", func(t *testing.T) {
		f := newGateFixture(t)
		assert.True(t, f.gate.CheckComment(ctx, "", "post-1").Allowed)
	})
}

func TestGate_CheckContact(t *testing.T) {
	f := newGateFixture(t)
	f.contacts.EXPECT().LastCreatedBy(mock.Anything, "vid").Return(f.clock.Now().Add(-10*time.Minute-time.Second), true, nil).Once()
	f.contacts.EXPECT().LastCreatedBy(mock.Anything, "vid").Return(f.clock.Now().Add(-time.Minute), true, nil).Once()

	assert.True(t, f.gate.CheckContact(context.Background(), "vid").Allowed)

	d := f.gate.CheckContact(context.Background(), "vid")
	assert.False(t, d.Allowed)
	assert.Equal(t, 9*time.Minute, d.Remaining)
}

func TestNewGate_Validation(t *testing.T) {
	_, err := NewGate(GateDependencies{})
	assert.True(t, errors.IsValidationError(err))
}
