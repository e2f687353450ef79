package cooldown

import (
	"context"

	"blogapi.app/internal/ports"
	"blogapi.app/pkg/errors"
	"github.com/jonboulle/clockwork"
)

// Gate looks up a visitor's latest submission and applies Check to it.
// Lookup failures fail open: the action is allowed and the failure logged.
type Gate struct {
	comments ports.CommentRepository
	contacts ports.ContactMessageRepository
	config   ports.ConfigProvider
	clock    clockwork.Clock
	logger   ports.Logger
}

// GateDependencies holds the collaborators of a Gate
type GateDependencies struct {
	Comments ports.CommentRepository
	Contacts ports.ContactMessageRepository
	Config   ports.ConfigProvider
	Clock    clockwork.Clock
	Logger   ports.Logger
}

// NewGate creates a Gate
func NewGate(deps GateDependencies) (*Gate, error) {
	if deps.Comments == nil {
		return nil, errors.NewValidationError("comment repository is required")
	}
	if deps.Contacts == nil {
		return nil, errors.NewValidationError("contact message repository is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config provider is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}

	return &Gate{
		comments: deps.Comments,
		contacts: deps.Contacts,
		config:   deps.Config,
		clock:    deps.Clock,
		logger:   deps.Logger,
	}, nil
}

// CheckComment applies the comment cooldown per (visitor, post).
func (g *Gate) CheckComment(ctx context.Context, visitorID, postID string) Decision {
	if visitorID == "" {
		return Decision{Allowed: true}
	}

	last, found, err := g.comments.LastCreatedBy(ctx, visitorID, postID)
	if err != nil {
		g.logger.Warn("comment cooldown lookup failed, allowing",
			ports.F("post_id", postID),
			ports.F("error", err))
		return Decision{Allowed: true}
	}
	if !found {
		return Decision{Allowed: true}
	}

	return Check(last, g.config.GetCooldownConfig().Comment, g.clock.Now())
}

// CheckContact applies the contact cooldown per visitor.
func (g *Gate) CheckContact(ctx context.Context, visitorID string) Decision {
	if visitorID == "" {
		return Decision{Allowed: true}
	}

	last, found, err := g.contacts.LastCreatedBy(ctx, visitorID)
	if err != nil {
		g.logger.Warn("contact cooldown lookup failed, allowing", ports.F("error", err))
		return Decision{Allowed: true}
	}
	if !found {
		return Decision{Allowed: true}
	}

	return Check(last, g.config.GetCooldownConfig().Contact, g.clock.Now())
}
