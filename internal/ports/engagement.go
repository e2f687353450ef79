package ports

import (
	"context"
	"time"
)

// StatsCounter defines the write side of post stats used by engagement flows
type StatsCounter interface {
	IncrementViews(ctx context.Context, postID string, by int64) error
	SyncCommentsTotal(ctx context.Context, postID string) error
}

// CooldownDecision is the outcome of a cooldown check
type CooldownDecision struct {
	Allowed   bool
	Remaining time.Duration
}

// CooldownGate decides whether a visitor may submit again
type CooldownGate interface {
	CheckComment(ctx context.Context, visitorID, postID string) CooldownDecision
	CheckContact(ctx context.Context, visitorID string) CooldownDecision
}

// Unique view outcomes
const (
	ViewResultCounted   = "counted"
	ViewResultDuplicate = "duplicate"
	ViewResultAnonymous = "anonymous"
	ViewResultError     = "error"
)

// ViewMetrics defines the contract for unique view accounting
type ViewMetrics interface {
	RecordView(result string)
}
