package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/360AYA25/youtube-transcript-railway/internal/engine"
	"github.com/360AYA25/youtube-transcript-railway/internal/engine/youtube"
)

func newTestRouter(t *testing.T, fetch fetchFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine.Init(engine.Config{DefaultLanguage: "en"})
	engine.InitCache("", time.Minute, 100, 5*time.Minute)

	r := gin.New()
	registerRoutes(r, &Handler{version: "test", fetch: fetch})
	return r
}

func okFetch(transcript string) fetchFunc {
	return func(_ context.Context, videoID string, _ []string) (*youtube.Video, error) {
		return &youtube.Video{
			ID:         videoID,
			Transcript: transcript,
			Meta: &youtube.Metadata{
				Title:           "Test Video",
				ChannelName:     "Test Channel",
				ChannelID:       "UC123",
				DurationSeconds: 212,
				ViewCount:       1000,
				Keywords:        []string{"a", "b"},
				Category:        "Music",
			},
		}, nil
	}
}

// upstreamStatusError builds the error RetryHTTP hands back when every
// attempt hit the given upstream status.
func upstreamStatusError(t *testing.T, code int) error {
	t.Helper()
	rc := engine.RetryConfig{MaxRetries: 0, InitialWait: time.Millisecond, MaxWait: time.Millisecond, Multiplier: 1}
	_, err := engine.RetryHTTP(context.Background(), rc, func() (*http.Response, error) {
		return &http.Response{StatusCode: code, Body: http.NoBody}, nil
	})
	if err == nil {
		t.Fatalf("expected RetryHTTP to fail on status %d", code)
	}
	return fmt.Errorf("android innertube: %w", err)
}

func TestTranscriptPost(t *testing.T) {
	r := newTestRouter(t, okFetch("hello world"))

	body := `{"video_id": "dQw4w9WgXcQ", "lang": "en"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transcript", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var res engine.TranscriptResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Equal(t, "dQw4w9WgXcQ", res.VideoID)
	assert.Equal(t, "hello world", res.Transcript)
	assert.Equal(t, len("hello world"), res.Length)
	assert.Equal(t, "Test Video", res.VideoTitle)
	assert.Equal(t, "Test Channel", res.ChannelName)
	assert.Equal(t, "https://www.youtube.com/channel/UC123", res.ChannelURL)
	assert.Equal(t, 212, res.Duration)
	assert.Equal(t, "a, b", res.Tags)
	assert.Equal(t, "Music", res.Categories)
	assert.Empty(t, res.Error)
}

func TestTranscriptPostAcceptsURL(t *testing.T) {
	var gotID string
	r := newTestRouter(t, func(_ context.Context, videoID string, _ []string) (*youtube.Video, error) {
		gotID = videoID
		return &youtube.Video{ID: videoID, Transcript: "x"}, nil
	})

	body := `{"video_id": "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transcript", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dQw4w9WgXcQ", gotID)
}

func TestTranscriptGet(t *testing.T) {
	r := newTestRouter(t, okFetch("from get"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/transcript?video_id=dQw4w9WgXcQ&lang=de", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var res engine.TranscriptResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Equal(t, "from get", res.Transcript)
}

func TestTranscriptInvalidID(t *testing.T) {
	r := newTestRouter(t, okFetch("unused"))

	for _, body := range []string{
		`{"video_id": "nope"}`,
		`{"video_id": ""}`,
		`{}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/transcript", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)

		var res engine.TranscriptResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.False(t, res.Success)
		assert.NotEmpty(t, res.Error)
	}
}

func TestTranscriptErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"video unavailable", youtube.ErrVideoUnavailable, http.StatusNotFound},
		{"no transcript", fmt.Errorf("wrapped: %w", youtube.ErrNoTranscript), http.StatusNotFound},
		{"too many requests", youtube.ErrTooManyRequests, http.StatusTooManyRequests},
		{"retry-exhausted upstream 429", upstreamStatusError(t, http.StatusTooManyRequests), http.StatusTooManyRequests},
		{"opaque failure", errors.New("network down"), http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, func(_ context.Context, _ string, _ []string) (*youtube.Video, error) {
				return nil, tt.err
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/transcript?video_id=dQw4w9WgXcQ", nil)
			r.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)

			var res engine.TranscriptResult
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.False(t, res.Success)
			assert.Equal(t, "dQw4w9WgXcQ", res.VideoID)
			assert.NotEmpty(t, res.Error)
		})
	}
}

func TestTranscriptCached(t *testing.T) {
	calls := 0
	r := newTestRouter(t, func(_ context.Context, videoID string, _ []string) (*youtube.Video, error) {
		calls++
		return &youtube.Video{ID: videoID, Transcript: "cached text"}, nil
	})

	for range 2 {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/transcript?video_id=dQw4w9WgXcQ", nil)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, 1, calls, "second request should be served from cache")
}

func TestRoot(t *testing.T) {
	r := newTestRouter(t, okFetch(""))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var res map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "YouTube Transcript Service", res["service"])
	assert.Equal(t, "running", res["status"])
	assert.Contains(t, res, "endpoints")
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, okFetch(""))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t, okFetch(""))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "transcript_requests")
	assert.Contains(t, w.Body.String(), "cache_hits")
}
