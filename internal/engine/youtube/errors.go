package youtube

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/360AYA25/youtube-transcript-railway/internal/engine"
)

// Sentinel errors returned by Fetch. The HTTP layer maps these to status codes.
var (
	ErrInvalidVideoID   = errors.New("invalid video id")
	ErrVideoUnavailable = errors.New("video unavailable")
	ErrNoTranscript     = errors.New("no transcript available")
	ErrTooManyRequests  = errors.New("too many requests")
)

// classifyUpstream maps a retry-exhausted upstream 429 onto ErrTooManyRequests
// so callers report throttling instead of a generic upstream failure.
func classifyUpstream(err error) error {
	if engine.HTTPStatusCode(err) == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %v", ErrTooManyRequests, err)
	}
	return err
}
