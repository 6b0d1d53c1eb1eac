package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	TranscriptRequests  atomic.Int64
	TranscriptErrors    atomic.Int64
	WatchPageFetches    atomic.Int64
	PanelFetches        atomic.Int64
	PlayerFetches       atomic.Int64
	TimedTextFetches    atomic.Int64
	MetadataFallbacks   atomic.Int64
	RateLimitedRequests atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"transcript_requests":   metrics.TranscriptRequests.Load(),
		"transcript_errors":     metrics.TranscriptErrors.Load(),
		"watch_page_fetches":    metrics.WatchPageFetches.Load(),
		"panel_fetches":         metrics.PanelFetches.Load(),
		"player_fetches":        metrics.PlayerFetches.Load(),
		"timedtext_fetches":     metrics.TimedTextFetches.Load(),
		"metadata_fallbacks":    metrics.MetadataFallbacks.Load(),
		"rate_limited_requests": metrics.RateLimitedRequests.Load(),
		"cache_hits":            hits,
		"cache_misses":          misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the /metrics endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"transcript_requests", "transcript_errors",
		"watch_page_fetches", "panel_fetches", "player_fetches",
		"timedtext_fetches", "metadata_fallbacks",
		"rate_limited_requests",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the youtube sub-package.
func IncrTranscriptRequests() { metrics.TranscriptRequests.Add(1) }
func IncrTranscriptErrors()   { metrics.TranscriptErrors.Add(1) }
func IncrWatchPageFetches()   { metrics.WatchPageFetches.Add(1) }
func IncrPanelFetches()       { metrics.PanelFetches.Add(1) }
func IncrPlayerFetches()      { metrics.PlayerFetches.Add(1) }
func IncrTimedTextFetches()   { metrics.TimedTextFetches.Add(1) }
func IncrMetadataFallbacks()  { metrics.MetadataFallbacks.Add(1) }

// IncrRateLimited counts requests rejected by the per-client limiter.
func IncrRateLimited() { metrics.RateLimitedRequests.Add(1) }
