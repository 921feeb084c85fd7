// Package auth stores the upload access token and validates it against
// the coaching server.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrInvalidToken indicates the token is definitively invalid.
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrUnavailable indicates the server is unreachable or unavailable.
	ErrUnavailable = errors.New("auth: unavailable")

	// ErrNoToken indicates no token has been stored yet.
	ErrNoToken = errors.New("auth: no token stored")
)

// Identity represents the account the token belongs to.
type Identity struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
}

// Validator validates access tokens.
type Validator interface {
	// Validate checks if a token is valid and returns the account identity.
	// Returns:
	//   - (*Identity, nil) if token is valid
	//   - (nil, ErrInvalidToken) if token is definitively invalid
	//   - (nil, ErrUnavailable) if the server is unavailable
	Validate(ctx context.Context, token string) (*Identity, error)
}

// HTTPValidator validates tokens against the server's validate endpoint.
type HTTPValidator struct {
	url    string
	client *http.Client
}

// NewHTTPValidator creates a validator for the given server base URL.
func NewHTTPValidator(serverURL string, timeout time.Duration) (*HTTPValidator, error) {
	endpoint, err := url.JoinPath(serverURL, "/api/auth/validate")
	if err != nil {
		return nil, fmt.Errorf("build validate URL: %w", err)
	}
	return &HTTPValidator{
		url: endpoint,
		client: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type validateResponse struct {
	Valid    bool   `json:"valid"`
	UserID   string `json:"user_id,omitempty"`
	UserName string `json:"user_name,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (v *HTTPValidator) Validate(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := v.client.Do(req)
	if err != nil {
		// Network errors, timeouts, etc. = unavailable
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Success - decode response
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrInvalidToken
	default:
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	// Limit response body to 1MB to avoid pathological responses
	limitedReader := io.LimitReader(resp.Body, 1<<20)

	var authResp validateResponse
	if err := json.NewDecoder(limitedReader).Decode(&authResp); err != nil {
		return nil, fmt.Errorf("%w: decode error: %v", ErrUnavailable, err)
	}

	if !authResp.Valid {
		return nil, ErrInvalidToken
	}

	return &Identity{
		UserID:   authResp.UserID,
		UserName: authResp.UserName,
	}, nil
}
