package ports

import (
	"context"
	"time"
)

// PostStatsData represents the stats row kept for every post
type PostStatsData struct {
	ID            string `json:"id"`
	PostID        string `json:"post"`
	ViewsTotal    int64  `json:"views_total"`
	CommentsTotal int64  `json:"comments_total"`
}

// CommentData represents a comment to persist
type CommentData struct {
	PostID    string
	Author    string
	Email     string
	Content   string
	VisitorID string
	Approved  bool
}

// ContactMessageData represents a contact form submission to persist
type ContactMessageData struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	VisitorID string
	IP        string
}

// StatsRepository defines the contract for post stats persistence
type StatsRepository interface {
	FindByPosts(ctx context.Context, postIDs []string) (map[string]*PostStatsData, error)
	Create(ctx context.Context, postID string) (*PostStatsData, error)
	Update(ctx context.Context, statsID string, fields map[string]interface{}) error
	ListSorted(ctx context.Context, field string, limit int) ([]*PostStatsData, error)
}

// CommentRepository defines the contract for comment persistence
type CommentRepository interface {
	Create(ctx context.Context, comment CommentData) error
	CountApproved(ctx context.Context, postID string) (int64, error)
	// LastCreatedBy returns the creation time of the visitor's latest comment on the post.
	// found is false when the visitor never commented there.
	LastCreatedBy(ctx context.Context, visitorID, postID string) (last time.Time, found bool, err error)
}

// ContactMessageRepository defines the contract for contact message persistence
type ContactMessageRepository interface {
	Create(ctx context.Context, msg ContactMessageData) error
	LastCreatedBy(ctx context.Context, visitorID string) (last time.Time, found bool, err error)
}
