package uploader

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aipokercoach/handscraper/internal/handhistory"
)

const uploadHandText = `PokerStars Hand #310005: Hold'em No Limit ($0.25/$0.50 USD) - 2024/05/02 10:11:12 ET
Table 'Lyra IV' 6-max Seat #2 is the button
Seat 2: villain42 ($50.00 in chips)
Seat 5: pokerjoe ($50.00 in chips)
villain42: posts small blind $0.25
pokerjoe: posts big blind $0.50
*** HOLE CARDS ***
Dealt to pokerjoe [Ah Kd]
villain42: folds
pokerjoe collected $0.50 from pot
pokerjoe: doesn't show hand
*** SUMMARY ***
Total pot $0.50 | Rake $0.00
Seat 2: villain42 (button) (small blind) folded before Flop
Seat 5: pokerjoe (big blind) collected ($0.50)
`

func parseTestHand(t *testing.T) *handhistory.Hand {
	t.Helper()
	hand, err := handhistory.Parse(uploadHandText)
	require.NoError(t, err)
	return hand
}

func TestUpload(t *testing.T) {
	hand := parseTestHand(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/hand", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "310005", payload["id"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, "tok-123", time.Second)
	require.NoError(t, err)

	duplicate, err := c.Upload(context.Background(), hand)
	require.NoError(t, err)
	assert.False(t, duplicate)
}

func TestUploadDuplicate(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "conflict status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusConflict)
			},
		},
		{
			name: "duplicate flag",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"duplicate":true}`))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c, err := New(srv.URL, "tok", time.Second)
			require.NoError(t, err)

			duplicate, err := c.Upload(context.Background(), parseTestHand(t))
			require.NoError(t, err)
			assert.True(t, duplicate)
		})
	}
}

func TestUploadUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, err := New(srv.URL, "stale", time.Second)
	require.NoError(t, err)

	_, err = c.Upload(context.Background(), parseTestHand(t))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUploadUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c, err := New(srv.URL, "tok", time.Second)
	require.NoError(t, err)

	_, err = c.Upload(context.Background(), parseTestHand(t))
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestUploadEmptyResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, err := New(srv.URL, "tok", time.Second)
	require.NoError(t, err)

	duplicate, err := c.Upload(context.Background(), parseTestHand(t))
	require.NoError(t, err)
	assert.False(t, duplicate)
}
