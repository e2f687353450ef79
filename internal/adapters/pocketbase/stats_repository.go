package pocketbase

import (
	"context"
	"fmt"
	"sort"

	"blogapi.app/internal/ports"
	"blogapi.app/pkg/errors"
)

// StatsRepositoryAdapter implements StatsRepository on the post_stats collection
type StatsRepositoryAdapter struct {
	store      ports.RecordStore
	collection string
}

// NewStatsRepositoryAdapter creates a new stats repository
func NewStatsRepositoryAdapter(store ports.RecordStore, collection string) ports.StatsRepository {
	return &StatsRepositoryAdapter{store: store, collection: collection}
}

// FindByPosts returns the stats rows of the given posts keyed by post id.
// Posts without a row are absent from the result.
func (r *StatsRepositoryAdapter) FindByPosts(ctx context.Context, postIDs []string) (map[string]*ports.PostStatsData, error) {
	ids := uniqueSorted(postIDs)
	out := make(map[string]*ports.PostStatsData, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	terms := make([]string, len(ids))
	for i, id := range ids {
		terms[i] = Eq("post", id)
	}

	result, err := r.store.List(ctx, r.collection, ports.ListQuery{
		Filter:  Or(terms...),
		Page:    1,
		PerPage: len(ids),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find post stats: %w", err)
	}

	for _, rec := range result.Items {
		s := recordToStats(rec)
		if s.PostID != "" {
			out[s.PostID] = s
		}
	}
	return out, nil
}

// Create inserts a zeroed stats row for postID
func (r *StatsRepositoryAdapter) Create(ctx context.Context, postID string) (*ports.PostStatsData, error) {
	if postID == "" {
		return nil, errors.NewValidationError("post id cannot be empty")
	}

	rec, err := r.store.Create(ctx, r.collection, map[string]interface{}{
		"post":           postID,
		"views_total":    0,
		"comments_total": 0,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create post stats: %w", err)
	}

	s := recordToStats(rec)
	if s.PostID == "" {
		s.PostID = postID
	}
	return s, nil
}

// Update patches the given fields of a stats row
func (r *StatsRepositoryAdapter) Update(ctx context.Context, statsID string, fields map[string]interface{}) error {
	if statsID == "" {
		return errors.NewValidationError("stats id cannot be empty")
	}
	if _, err := r.store.Patch(ctx, r.collection, statsID, fields); err != nil {
		return fmt.Errorf("failed to update post stats: %w", err)
	}
	return nil
}

// ListSorted returns up to limit rows ordered by field descending
func (r *StatsRepositoryAdapter) ListSorted(ctx context.Context, field string, limit int) ([]*ports.PostStatsData, error) {
	result, err := r.store.List(ctx, r.collection, ports.ListQuery{
		Sort:    "-" + field,
		Page:    1,
		PerPage: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list post stats: %w", err)
	}

	out := make([]*ports.PostStatsData, 0, len(result.Items))
	for _, rec := range result.Items {
		out = append(out, recordToStats(rec))
	}
	return out, nil
}

func recordToStats(rec ports.Record) *ports.PostStatsData {
	return &ports.PostStatsData{
		ID:            rec.String("id"),
		PostID:        rec.String("post"),
		ViewsTotal:    rec.Int("views_total"),
		CommentsTotal: rec.Int("comments_total"),
	}
}

func uniqueSorted(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
