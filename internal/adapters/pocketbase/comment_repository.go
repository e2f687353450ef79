package pocketbase

import (
	"context"
	"fmt"
	"time"

	"blogapi.app/internal/ports"
	"blogapi.app/pkg/errors"
	"blogapi.app/pkg/timestamp"
)

// CommentRepositoryAdapter implements CommentRepository on the comments collection
type CommentRepositoryAdapter struct {
	store      ports.RecordStore
	collection string
}

// NewCommentRepositoryAdapter creates a new comment repository
func NewCommentRepositoryAdapter(store ports.RecordStore, collection string) ports.CommentRepository {
	return &CommentRepositoryAdapter{store: store, collection: collection}
}

func (r *CommentRepositoryAdapter) Create(ctx context.Context, comment ports.CommentData) error {
	payload := map[string]interface{}{
		"post":     comment.PostID,
		"author":   comment.Author,
		"email":    comment.Email,
		"content":  comment.Content,
		"approved": comment.Approved,
	}
	if comment.VisitorID != "" {
		payload["visitor_id"] = comment.VisitorID
	}

	if _, err := r.store.Create(ctx, r.collection, payload); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *CommentRepositoryAdapter) CountApproved(ctx context.Context, postID string) (int64, error) {
	result, err := r.store.List(ctx, r.collection, ports.ListQuery{
		Filter:  And(Eq("post", postID), "approved=true"),
		Page:    1,
		PerPage: 1,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return int64(result.TotalItems), nil
}

func (r *CommentRepositoryAdapter) LastCreatedBy(ctx context.Context, visitorID, postID string) (time.Time, bool, error) {
	if visitorID == "" {
		return time.Time{}, false, nil
	}
	return lastCreated(ctx, r.store, r.collection, And(Eq("visitor_id", visitorID), Eq("post", postID)))
}

// lastCreated returns the created timestamp of the newest record matching filter
func lastCreated(ctx context.Context, store ports.RecordStore, collection, filter string) (time.Time, bool, error) {
	result, err := store.List(ctx, collection, ports.ListQuery{
		Filter:  filter,
		Sort:    "-created",
		Fields:  "created",
		Page:    1,
		PerPage: 1,
	})
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to look up last %s record: %w", collection, err)
	}
	if len(result.Items) == 0 {
		return time.Time{}, false, nil
	}

	created, err := timestamp.Parse(result.Items[0].String("created"))
	if err != nil {
		return time.Time{}, false, errors.NewExternalAPIError(fmt.Sprintf("invalid created timestamp in %s", collection), err)
	}
	return created, true, nil
}
