package youtube

import (
	"regexp"
	"strings"
)

// Accepted YouTube URL shapes, tried in order. IDs are always 11 chars
// from [a-zA-Z0-9_-].
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[?&]v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`/(?:shorts|embed|live)/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`^([a-zA-Z0-9_-]{11})$`),
}

// ExtractVideoID pulls the 11-char video ID from a bare ID or any YouTube URL.
func ExtractVideoID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidVideoID
	}
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(raw); len(m) >= 2 {
			return m[1], nil
		}
	}
	return "", ErrInvalidVideoID
}
