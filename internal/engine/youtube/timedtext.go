package youtube

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/360AYA25/youtube-transcript-railway/internal/engine"
)

// timedText mirrors YouTube's timedtext caption XML: a flat list of <text> lines.
type timedText struct {
	Lines []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Text string `xml:",chardata"`
}

// parseTimedText decodes caption XML and joins the lines into plain text.
// Lines are stripped of inline markup and HTML entities are unescaped.
func parseTimedText(body []byte) (string, error) {
	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return "", fmt.Errorf("parse timedtext XML: %w", err)
	}

	var sb strings.Builder
	for _, line := range tt.Lines {
		text := html.UnescapeString(engine.CleanHTML(line.Text))
		if text != "" {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(text)
		}
	}
	return sb.String(), nil
}

// fetchTimedText fetches and parses a YouTube timedtext caption URL.
func fetchTimedText(ctx context.Context, baseURL string) (string, error) {
	engine.IncrTimedTextFetches()

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", engine.UserAgentBot)
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		return "", classifyUpstream(fmt.Errorf("fetch timedtext: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return "", err
	}
	return parseTimedText(body)
}
