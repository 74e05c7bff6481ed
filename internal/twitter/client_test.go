package twitter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"postsched/internal/common"
	"postsched/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func testClient(serverURL string) *Client {
	return NewClient(&config.Config{Twitter: config.TwitterConfig{BaseURL: serverURL}})
}

func TestClient_Publish(t *testing.T) {
	token := &oauth2.Token{AccessToken: "secret-token"}

	t.Run("posts the text and returns the remote id", func(t *testing.T) {
		createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/2/tweets", r.URL.Path)
			require.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))

			var req tweetRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "hello world", req.Text)

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(tweetResponse{Data: tweetData{
				ID:        "1790000000000000001",
				Text:      req.Text,
				CreatedAt: createdAt,
			}})
		}))
		defer server.Close()

		remoteID, publishedAt, err := testClient(server.URL).Publish(context.Background(), token, "hello world")
		require.NoError(t, err)
		assert.Equal(t, "1790000000000000001", remoteID)
		assert.Equal(t, createdAt, publishedAt.UTC())
	})

	t.Run("non-2xx is a remote error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"title":"Too Many Requests"}`, http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, _, err := testClient(server.URL).Publish(context.Background(), token, "hello")
		require.Error(t, err)
		assert.True(t, common.IsRemote(err))
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("unreachable server is a remote error", func(t *testing.T) {
		_, _, err := testClient("http://127.0.0.1:1").Publish(context.Background(), token, "hello")
		require.Error(t, err)
		assert.True(t, common.IsRemote(err))
	})
}

func TestClient_ListRecent(t *testing.T) {
	token := &oauth2.Token{AccessToken: "secret-token"}

	t.Run("parses the timeline", func(t *testing.T) {
		first := time.Date(2024, 6, 1, 11, 0, 0, 0, time.UTC)
		second := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/2/users/me/tweets", r.URL.Path)
			require.Equal(t, "25", r.URL.Query().Get("max_results"))
			require.Equal(t, "created_at", r.URL.Query().Get("tweet.fields"))
			require.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))

			json.NewEncoder(w).Encode(timelineResponse{Data: []tweetData{
				{ID: "101", Text: "newest", CreatedAt: first},
				{ID: "100", Text: "older", CreatedAt: second},
			}})
		}))
		defer server.Close()

		posts, err := testClient(server.URL).ListRecent(context.Background(), token, 25)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, common.RemotePost{RemoteID: "101", Text: "newest", CreatedAt: first}, posts[0])
		assert.Equal(t, "100", posts[1].RemoteID)
	})

	t.Run("empty timeline", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":[]}`))
		}))
		defer server.Close()

		posts, err := testClient(server.URL).ListRecent(context.Background(), token, 25)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("expired token surfaces the status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"title":"Unauthorized"}`, http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := testClient(server.URL).ListRecent(context.Background(), token, 25)
		require.Error(t, err)
		assert.True(t, common.IsRemote(err))
		assert.Contains(t, err.Error(), "401")
	})
}
