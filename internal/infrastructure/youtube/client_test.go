package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
	"github.com/yourusername/voice-assistant/internal/domain/repository"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) repository.VideoRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewVideoClient(context.Background(), "test-key",
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return client
}

func TestSearch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/youtube/v3/search", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "lofi beats", q.Get("q"))
		assert.Equal(t, "10", q.Get("maxResults"))
		assert.Equal(t, "video", q.Get("type"))
		assert.Equal(t, "10", q.Get("videoCategoryId"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"id":{"videoId":"abc"},"snippet":{"title":"Rock &amp; Roll"}},
			{"id":{"channelId":"chan"},"snippet":{"title":"Channel"}},
			{"id":{"videoId":"def"},"snippet":{"title":"Chill"}}
		]}`))
	})

	videos, err := client.Search(context.Background(), "lofi beats", 10)
	require.NoError(t, err)
	assert.Equal(t, []entity.Video{{ID: "abc", Title: "Rock & Roll"}, {ID: "def", Title: "Chill"}}, videos)
}

func TestSearch_Empty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[]}`))
	})

	videos, err := client.Search(context.Background(), "unknown song xyz123", 10)
	require.NoError(t, err)
	assert.Empty(t, videos)
}

func TestSearch_Error(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"quotaExceeded"}}`))
	})

	_, err := client.Search(context.Background(), "jazz", 10)
	assert.Error(t, err)
}
