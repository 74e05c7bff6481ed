package twitter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"postsched/internal/common"
	"postsched/internal/config"

	"golang.org/x/oauth2"
)

// Client implements common.RemoteClient against the platform's v2 REST API.
// Each call builds an oauth2 http client around the owner's token, so one
// Client instance serves every account.
type Client struct {
	baseURL string
	base    *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Twitter.BaseURL,
		base:    &http.Client{Timeout: 15 * time.Second},
	}
}

type tweetRequest struct {
	Text string `json:"text"`
}

type tweetData struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type tweetResponse struct {
	Data tweetData `json:"data"`
}

type timelineResponse struct {
	Data []tweetData `json:"data"`
}

func (c *Client) Publish(ctx context.Context, token *oauth2.Token, text string) (string, time.Time, error) {
	body, err := json.Marshal(tweetRequest{Text: text})
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to encode tweet: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/2/tweets", bytes.NewReader(body))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient(ctx, token).Do(req)
	if err != nil {
		return "", time.Time{}, &common.RemoteError{Op: "publish", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", time.Time{}, &common.RemoteError{Op: "publish", Err: apiError(resp)}
	}

	var tweet tweetResponse
	if err := json.NewDecoder(resp.Body).Decode(&tweet); err != nil {
		return "", time.Time{}, &common.RemoteError{Op: "publish", Err: err}
	}

	createdAt := tweet.Data.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return tweet.Data.ID, createdAt, nil
}

func (c *Client) ListRecent(ctx context.Context, token *oauth2.Token, limit int) ([]common.RemotePost, error) {
	endpoint := c.baseURL + "/2/users/me/tweets?" + url.Values{
		"max_results":  {strconv.Itoa(limit)},
		"tweet.fields": {"created_at"},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient(ctx, token).Do(req)
	if err != nil {
		return nil, &common.RemoteError{Op: "list_recent", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &common.RemoteError{Op: "list_recent", Err: apiError(resp)}
	}

	var timeline timelineResponse
	if err := json.NewDecoder(resp.Body).Decode(&timeline); err != nil {
		return nil, &common.RemoteError{Op: "list_recent", Err: err}
	}

	posts := make([]common.RemotePost, 0, len(timeline.Data))
	for _, tweet := range timeline.Data {
		posts = append(posts, common.RemotePost{
			RemoteID:  tweet.ID,
			Text:      tweet.Text,
			CreatedAt: tweet.CreatedAt,
		})
	}
	return posts, nil
}

func (c *Client) httpClient(ctx context.Context, token *oauth2.Token) *http.Client {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.base)
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))
}

func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
}
