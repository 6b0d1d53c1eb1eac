package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/360AYA25/youtube-transcript-railway/internal/engine"
)

const watchURLBase = "https://www.youtube.com/watch?v="

// playerResponseMarker marks the start of the player response JSON in watch page HTML.
const playerResponseMarker = "ytInitialPlayerResponse = "

// fetchWatchPage downloads the watch page HTML for a video.
// Prefers the TLS-fingerprinted browser client when configured; YouTube is
// far less likely to serve a consent/captcha page to a Chrome fingerprint.
func fetchWatchPage(ctx context.Context, videoID string) ([]byte, error) {
	engine.IncrWatchPageFetches()
	watchURL := watchURLBase + videoID

	if bc := engine.Cfg.BrowserClient; bc != nil {
		body, status, err := bc.Do(http.MethodGet, watchURL, engine.ChromeHeaders(), nil)
		if err == nil && status == http.StatusOK && len(body) > 0 {
			return body, nil
		}
		slog.Warn("youtube: browser client fetch failed, falling back to plain client",
			slog.String("id", videoID), slog.Int("status", status), slog.Any("err", err))
	}

	body, err := engine.FetchPage(ctx, watchURL)
	if err != nil {
		return nil, classifyUpstream(fmt.Errorf("watch page: %w", err))
	}
	return body, nil
}

// extractPlayerResponse locates and decodes ytInitialPlayerResponse in watch page HTML.
func extractPlayerResponse(body []byte) (*playerResponse, error) {
	html := string(body)

	if strings.Contains(html, `class="g-recaptcha"`) {
		return nil, fmt.Errorf("%w: captcha page served", ErrTooManyRequests)
	}

	idx := strings.Index(html, playerResponseMarker)
	if idx < 0 {
		return nil, fmt.Errorf("ytInitialPlayerResponse not found in watch page")
	}
	jsonData := extractJSON(body[idx+len(playerResponseMarker):])
	if jsonData == nil {
		return nil, fmt.Errorf("failed to extract ytInitialPlayerResponse JSON")
	}

	var pr playerResponse
	if err := json.Unmarshal(jsonData, &pr); err != nil {
		return nil, fmt.Errorf("decode ytInitialPlayerResponse: %w", err)
	}
	return &pr, nil
}

// scrapePlayerResponse fetches the watch page and extracts the player response.
// Returns the raw page body as well, for the HTML metadata fallback.
func scrapePlayerResponse(ctx context.Context, videoID string) (*playerResponse, []byte, error) {
	body, err := fetchWatchPage(ctx, videoID)
	if err != nil {
		return nil, nil, err
	}
	pr, err := extractPlayerResponse(body)
	if err != nil {
		return nil, body, err
	}
	return pr, body, nil
}

// extractJSON extracts a complete JSON object starting at b[0] == '{' by tracking brace depth.
func extractJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	depth := 0
	inStr := false
	var prev byte
	for i, c := range b {
		if inStr {
			if c == '"' && prev != '\\' {
				inStr = false
			}
		} else {
			switch c {
			case '"':
				inStr = true
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return b[:i+1]
				}
			}
		}
		prev = c
	}
	return nil
}
