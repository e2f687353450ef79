package stats

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"blogapi.app/internal/core/cache"
	"blogapi.app/internal/ports"
	"blogapi.app/pkg/errors"
	"blogapi.app/pkg/validation"
)

const (
	DefaultTopLimit = 50
	MaxTopLimit     = 200
)

// UseCase serves post counters through the request cache. Reads fail open:
// a backend failure yields zero stats or an empty list and is never cached.
// Records are created lazily by the write paths only.
type UseCase struct {
	repo     ports.StatsRepository
	comments ports.CommentRepository
	cache    *cache.Cache[any]
	config   ports.ConfigProvider
	logger   ports.Logger
	writes   keyedMutex
}

type UseCaseDependencies struct {
	Repo     ports.StatsRepository
	Comments ports.CommentRepository
	Cache    *cache.Cache[any]
	Config   ports.ConfigProvider
	Logger   ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Repo == nil {
		return nil, errors.NewValidationError("stats repository is required")
	}
	if deps.Comments == nil {
		return nil, errors.NewValidationError("comment repository is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		repo:     deps.Repo,
		comments: deps.Comments,
		cache:    deps.Cache,
		config:   deps.Config,
		logger:   deps.Logger,
	}, nil
}

func oneKey(postID string) string {
	return cache.Key("stats", "one", postID)
}

func mapKey(sortedIDs []string) string {
	return cache.Key("stats", "map", strings.Join(sortedIDs, ","))
}

func sortedKey(field StatField, limit int) string {
	return cache.Key("stats", "sorted", field.String(), limit)
}

// Get returns the stats of one post. A post without a record, or with an id that is
// not a valid identifier, gets zero stats; reads never create records.
func (uc *UseCase) Get(ctx context.Context, postID string) PostStats {
	if !validation.IsValidIdentifier(postID) {
		return DefaultStats(postID)
	}

	s, err := uc.getOne(ctx, postID)
	if err != nil {
		uc.logger.Warn("Failed to load post stats, using defaults",
			ports.F("post_id", postID),
			ports.F("error", err))
		return DefaultStats(postID)
	}
	return s
}

// GetMap returns stats for every given post, zero stats for posts without a record.
// Invalid ids are dropped. The result may be empty when the backend is unavailable.
func (uc *UseCase) GetMap(ctx context.Context, postIDs []string) map[string]PostStats {
	m, err := uc.getMap(ctx, postIDs)
	if err != nil {
		uc.logger.Warn("Failed to load stats map", ports.F("posts", len(postIDs)), ports.F("error", err))
		return map[string]PostStats{}
	}

	out := make(map[string]PostStats, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// TopBy lists stats ordered by field, highest first.
func (uc *UseCase) TopBy(ctx context.Context, field StatField, limit int) ([]PostStats, error) {
	if !field.IsValid() {
		return nil, errors.NewValidationError("invalid stats field")
	}
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	if limit > MaxTopLimit {
		limit = MaxTopLimit
	}

	ttl := uc.config.GetCacheTTLConfig().StatsSorted
	items, err := cache.Fetch(ctx, uc.cache, sortedKey(field, limit), ttl, func(ctx context.Context) ([]PostStats, error) {
		rows, err := uc.repo.ListSorted(ctx, field.String(), limit)
		if err != nil {
			return nil, err
		}
		out := make([]PostStats, 0, len(rows))
		for _, r := range rows {
			out = append(out, fromPorts(r))
		}
		return out, nil
	})
	if err != nil {
		uc.logger.Warn("Failed to list top stats",
			ports.F("field", field.String()),
			ports.F("error", err))
		return []PostStats{}, nil
	}

	return append([]PostStats(nil), items...), nil
}

// IncrementViews adds by to the post's view counter, creating the record on first use.
// Writes to one post are serialized in this process, and each rereads the record
// from the backend instead of the cache.
func (uc *UseCase) IncrementViews(ctx context.Context, postID string, by int64) error {
	if postID == "" {
		return errors.NewValidationError("post id is required")
	}

	unlock := uc.writes.lock(postID)
	defer unlock()

	s, err := uc.ensure(ctx, postID)
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}

	if err := uc.repo.Update(ctx, s.ID, map[string]interface{}{"views_total": s.ViewsTotal + by}); err != nil {
		return fmt.Errorf("update views total: %w", err)
	}
	uc.Invalidate(postID)

	uc.logger.Debug("Views total incremented",
		ports.F("post_id", postID),
		ports.F("views_total", s.ViewsTotal+by))
	return nil
}

// SyncCommentsTotal sets comments_total to the number of approved comments.
func (uc *UseCase) SyncCommentsTotal(ctx context.Context, postID string) error {
	if postID == "" {
		return errors.NewValidationError("post id is required")
	}

	unlock := uc.writes.lock(postID)
	defer unlock()

	count, err := uc.comments.CountApproved(ctx, postID)
	if err != nil {
		return fmt.Errorf("count comments: %w", err)
	}

	s, err := uc.ensure(ctx, postID)
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}

	if err := uc.repo.Update(ctx, s.ID, map[string]interface{}{"comments_total": count}); err != nil {
		return fmt.Errorf("update comments total: %w", err)
	}
	uc.Invalidate(postID)
	return nil
}

// Invalidate drops the cached single-post stats.
func (uc *UseCase) Invalidate(postID string) {
	uc.cache.Delete(oneKey(postID))
}

func (uc *UseCase) getOne(ctx context.Context, postID string) (PostStats, error) {
	ttl := uc.config.GetCacheTTLConfig().StatsOne
	return cache.Fetch(ctx, uc.cache, oneKey(postID), ttl, func(ctx context.Context) (PostStats, error) {
		found, err := uc.repo.FindByPosts(ctx, []string{postID})
		if err != nil {
			return PostStats{}, err
		}
		if d, ok := found[postID]; ok && d != nil {
			return fromPorts(d), nil
		}
		return DefaultStats(postID), nil
	})
}

func (uc *UseCase) getMap(ctx context.Context, postIDs []string) (map[string]PostStats, error) {
	ids := uniqueSorted(postIDs)
	if len(ids) == 0 {
		return map[string]PostStats{}, nil
	}

	ttl := uc.config.GetCacheTTLConfig().StatsMap
	return cache.Fetch(ctx, uc.cache, mapKey(ids), ttl, func(ctx context.Context) (map[string]PostStats, error) {
		found, err := uc.repo.FindByPosts(ctx, ids)
		if err != nil {
			return nil, err
		}
		out := make(map[string]PostStats, len(ids))
		for _, id := range ids {
			if d, ok := found[id]; ok && d != nil {
				out[id] = fromPorts(d)
			} else {
				out[id] = DefaultStats(id)
			}
		}
		return out, nil
	})
}

// ensure reads the post's record from the backend, creating it when missing.
// Only write paths call it.
func (uc *UseCase) ensure(ctx context.Context, postID string) (PostStats, error) {
	found, err := uc.repo.FindByPosts(ctx, []string{postID})
	if err != nil {
		return PostStats{}, err
	}
	if d, ok := found[postID]; ok && d != nil {
		return fromPorts(d), nil
	}

	d, err := uc.repo.Create(ctx, postID)
	if err != nil {
		return PostStats{}, fmt.Errorf("create post stats: %w", err)
	}
	s := fromPorts(d)
	if !s.HasRecord() {
		return PostStats{}, errors.NewExternalAPIError("post stats record unavailable", nil)
	}

	uc.logger.Debug("Post stats created", ports.F("post_id", postID))
	return s, nil
}

func uniqueSorted(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !validation.IsValidIdentifier(id) {
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
