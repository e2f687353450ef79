package pocketbase

import (
	"context"
	"testing"
	"time"

	"blogapi.app/internal/mocks"
	"blogapi.app/internal/ports"
	"blogapi.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEscapeAndFilters(t *testing.T) {
	assert.Equal(t, `a\"b\\c`, Escape(`a"b\c`))
	assert.Equal(t, `visitor_id="x\" || true"`, Eq("visitor_id", `x" || true`))
	assert.Equal(t, `a="1" && b="2"`, And(Eq("a", "1"), "", Eq("b", "2")))
	assert.Equal(t, `a="1"`, Or(Eq("a", "1")))
	assert.Empty(t, And())
}

func TestStatsRepository_FindByPosts(t *testing.T) {
	store := mocks.NewRecordStore(t)
	repo := NewStatsRepositoryAdapter(store, "post_stats")
	ctx := context.Background()

	store.EXPECT().
		List(ctx, "post_stats", ports.ListQuery{Filter: `post="a" || post="b"`, Page: 1, PerPage: 2}).
		Return(&ports.ListResult{Items: []ports.Record{
			{"id": "s1", "post": "a", "views_total": float64(4), "comments_total": float64(1)},
			{"id": "orphan"},
		}}, nil).
		Once()

	got, err := repo.FindByPosts(ctx, []string{"b", "a", "", "a"})
	require.NoError(t, err)
	assert.Equal(t, map[string]*ports.PostStatsData{
		"a": {ID: "s1", PostID: "a", ViewsTotal: 4, CommentsTotal: 1},
	}, got)

	empty, err := repo.FindByPosts(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStatsRepository_CreateUpdateList(t *testing.T) {
	store := mocks.NewRecordStore(t)
	repo := NewStatsRepositoryAdapter(store, "post_stats")
	ctx := context.Background()

	store.EXPECT().
		Create(ctx, "post_stats", map[string]interface{}{"post": "a", "views_total": 0, "comments_total": 0}).
		Return(ports.Record{"id": "s1"}, nil).
		Once()
	store.EXPECT().
		Patch(ctx, "post_stats", "s1", map[string]interface{}{"views_total": int64(3)}).
		Return(ports.Record{"id": "s1"}, nil).
		Once()
	store.EXPECT().
		List(ctx, "post_stats", ports.ListQuery{Sort: "-comments_total", Page: 1, PerPage: 10}).
		Return(&ports.ListResult{Items: []ports.Record{{"id": "s1", "post": "a", "comments_total": float64(9)}}}, nil).
		Once()

	created, err := repo.Create(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, &ports.PostStatsData{ID: "s1", PostID: "a"}, created)

	require.NoError(t, repo.Update(ctx, "s1", map[string]interface{}{"views_total": int64(3)}))

	top, err := repo.ListSorted(ctx, "comments_total", 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, int64(9), top[0].CommentsTotal)

	_, err = repo.Create(ctx, "")
	assert.True(t, errors.IsValidationError(err))
	assert.True(t, errors.IsValidationError(repo.Update(ctx, "", nil)))
}

func TestStatsRepository_BackendError(t *testing.T) {
	store := mocks.NewRecordStore(t)
	repo := NewStatsRepositoryAdapter(store, "post_stats")

	store.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.NewExternalAPIError("down", nil))

	_, err := repo.FindByPosts(context.Background(), []string{"a"})
	assert.True(t, errors.IsExternalAPIError(err))
}

func TestCommentRepository(t *testing.T) {
	store := mocks.NewRecordStore(t)
	repo := NewCommentRepositoryAdapter(store, "comments")
	ctx := context.Background()

	store.EXPECT().
		Create(ctx, "comments", map[string]interface{}{
			"post": "p1", "author": "Ala", "email": "", "content": "hi", "approved": true, "visitor_id": "vid-1",
		}).
		Return(ports.Record{"id": "c1"}, nil).
		Once()
	store.EXPECT().
		List(ctx, "comments", ports.ListQuery{Filter: `post="p1" && approved=true`, Page: 1, PerPage: 1}).
		Return(&ports.ListResult{TotalItems: 4}, nil).
		Once()
	store.EXPECT().
		List(ctx, "comments", ports.ListQuery{
			Filter:  `visitor_id="vid-1" && post="p1"`,
			Sort:    "-created",
			Fields:  "created",
			Page:    1,
			PerPage: 1,
		}).
		Return(&ports.ListResult{Items: []ports.Record{{"created": "2026-10-17 09:30:00.000Z"}}}, nil).
		Once()

	require.NoError(t, repo.Create(ctx, ports.CommentData{
		PostID: "p1", Author: "Ala", Content: "hi", VisitorID: "vid-1", Approved: true,
	}))

	count, err := repo.CountApproved(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	last, found, err := repo.LastCreatedBy(ctx, "vid-1", "p1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC), last)

	_, found, err = repo.LastCreatedBy(ctx, "", "p1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestContactMessageRepository(t *testing.T) {
	store := mocks.NewRecordStore(t)
	repo := NewContactMessageRepositoryAdapter(store, "contact_messages")
	ctx := context.Background()

	store.EXPECT().
		Create(ctx, "contact_messages", map[string]interface{}{
			"name": "Ala", "email": "ala@example.com", "subject": "Hi", "message": "Hello", "ip": "10.0.0.1",
		}).
		Return(ports.Record{"id": "m1"}, nil).
		Once()

	require.NoError(t, repo.Create(ctx, ports.ContactMessageData{
		Name: "Ala", Email: "ala@example.com", Subject: "Hi", Message: "Hello", IP: "10.0.0.1",
	}))

	t.Run("none yet", func(t *testing.T) {
		store.EXPECT().
			List(ctx, "contact_messages", mock.MatchedBy(func(q ports.ListQuery) bool {
				return q.Filter == `visitor_id="vid-2"`
			})).
			Return(&ports.ListResult{}, nil).
			Once()

		_, found, err := repo.LastCreatedBy(ctx, "vid-2")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("naive timestamp rejected", func(t *testing.T) {
		store.EXPECT().
			List(ctx, "contact_messages", mock.MatchedBy(func(q ports.ListQuery) bool {
				return q.Filter == `visitor_id="vid-3"`
			})).
			Return(&ports.ListResult{Items: []ports.Record{{"created": "2026-10-17 09:30:00"}}}, nil).
			Once()

		_, found, err := repo.LastCreatedBy(ctx, "vid-3")
		assert.False(t, found)
		assert.True(t, errors.IsExternalAPIError(err))
	})
}
