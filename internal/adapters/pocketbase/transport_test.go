package pocketbase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogapi.app/internal/mocks"
	"blogapi.app/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type panickingRecorder struct{}

func (panickingRecorder) Record(string, string, int, time.Duration) {
	panic("recorder exploded")
}

func TestInstrumentedTransport_RecordsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	recorder := mocks.NewCallRecorder(t)
	recorder.EXPECT().
		Record(http.MethodGet, "/api/collections/posts/records", http.StatusTeapot, mock.AnythingOfType("time.Duration")).
		Once()

	client, err := NewClient(ClientParams{
		BaseURL:   server.URL,
		Transport: NewInstrumentedTransport(nil, recorder, nil, mocks.NewLoggerAllowingAll(t)),
		Logger:    mocks.NewLoggerAllowingAll(t),
	})
	require.NoError(t, err)

	_, err = client.List(context.Background(), "posts", ports.ListQuery{})
	assert.Error(t, err)
}

func TestInstrumentedTransport_RecordsNoResponse(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	recorder := mocks.NewCallRecorder(t)
	recorder.EXPECT().
		Record(http.MethodPost, "/api/collections/comments/records", ports.StatusNoResponse, mock.Anything).
		Once()

	client, err := NewClient(ClientParams{
		BaseURL:   addr,
		Transport: NewInstrumentedTransport(nil, recorder, nil, mocks.NewLoggerAllowingAll(t)),
		Logger:    mocks.NewLoggerAllowingAll(t),
	})
	require.NoError(t, err)

	_, err = client.Create(context.Background(), "comments", map[string]interface{}{"content": "x"})
	assert.Error(t, err)
}

func TestInstrumentedTransport_RecorderPanicDoesNotFailCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[],"totalItems":0}`))
	}))
	defer server.Close()

	logger := mocks.NewLogger(t)
	logger.EXPECT().Error("Backend call recorder failed", mock.Anything, mock.Anything, mock.Anything).Once()

	client, err := NewClient(ClientParams{
		BaseURL:   server.URL,
		Transport: NewInstrumentedTransport(nil, panickingRecorder{}, nil, logger),
		Logger:    mocks.NewLoggerAllowingAll(t),
	})
	require.NoError(t, err)

	result, err := client.List(context.Background(), "posts", ports.ListQuery{})
	require.NoError(t, err)
	assert.Zero(t, result.TotalItems)
}
