// Package uploader posts parsed hands to the coaching server.
package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/aipokercoach/handscraper/internal/handhistory"
)

var (
	// ErrUnauthorized indicates the access token was rejected.
	ErrUnauthorized = errors.New("uploader: unauthorized")

	// ErrUnavailable indicates the server is unreachable or unavailable.
	ErrUnavailable = errors.New("uploader: unavailable")
)

// Client uploads hands to a coaching server.
type Client struct {
	url    string
	token  string
	client *http.Client
}

// New creates an upload client for the given server base URL.
func New(serverURL, token string, timeout time.Duration) (*Client, error) {
	endpoint, err := url.JoinPath(serverURL, "/api/hand")
	if err != nil {
		return nil, fmt.Errorf("build upload URL: %w", err)
	}
	return &Client{
		url:   endpoint,
		token: token,
		client: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type uploadResponse struct {
	Duplicate bool   `json:"duplicate,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Upload posts one hand. Returns true if the server already had it.
func (c *Client) Upload(ctx context.Context, hand *handhistory.Hand) (duplicate bool, err error) {
	body, err := json.Marshal(hand)
	if err != nil {
		return false, fmt.Errorf("marshal hand %s: %w", hand.ID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	// lets the server dedupe retried uploads
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Success - decode response
	case http.StatusConflict:
		return true, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return false, ErrUnauthorized
	default:
		return false, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	limitedReader := io.LimitReader(resp.Body, 1<<20)

	var uploadResp uploadResponse
	if err := json.NewDecoder(limitedReader).Decode(&uploadResp); err != nil {
		// empty 200 bodies are fine
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("%w: decode error: %v", ErrUnavailable, err)
	}
	return uploadResp.Duplicate, nil
}
