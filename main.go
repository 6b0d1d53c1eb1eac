// youtube-transcript-railway — YouTube transcript service.
//
// Exposes transcript fetching over two surfaces: a REST API
// (GET /, /health, /transcript, /metrics; POST /transcript) and an
// optional MCP server with a youtube_transcript tool.
//
// Transcripts are fetched natively from YouTube (watch page scrape with
// Innertube fallbacks) — no yt-dlp, no subprocesses.
package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/360AYA25/youtube-transcript-railway/internal/engine"
	"github.com/360AYA25/youtube-transcript-railway/internal/server"
	"github.com/360AYA25/youtube-transcript-railway/internal/transcripttools"
)

var (
	version = "dev"
	port    = env.Str("PORT", "8000")
	mcpPort = env.Str("MCP_PORT", "") // empty = MCP surface disabled
)

func main() {
	initEngine()

	slog.Info("starting youtube-transcript-railway",
		slog.String("port", port),
		slog.String("mcp_port", mcpPort),
	)

	if mcpPort != "" {
		go runMCP()
	}

	r := server.New(server.Options{
		Version:   version,
		RateRPS:   env.Float("RATE_LIMIT_RPS", 2),
		RateBurst: env.Int("RATE_LIMIT_BURST", 5),
	})
	if err := r.Run(":" + port); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func runMCP() {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "youtube-transcript-railway",
		Version: version,
	}, nil)

	transcripttools.RegisterTools(srv)
	slog.Info("mcp tools registered", slog.Int("count", 1))

	if err := mcpserver.Run(srv, mcpserver.Config{
		Name:         "youtube-transcript-railway",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 600 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("mcp server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		DefaultLanguage:      env.Str("DEFAULT_LANGUAGE", "en"),
		FetchTimeout:         env.Duration("FETCH_TIMEOUT", 15*time.Second),
		MaxTranscriptChars:   env.Int("MAX_TRANSCRIPT_CHARS", 0),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	bc, err := engine.NewBrowserClient()
	if err != nil {
		slog.Warn("browser client init failed, using plain HTTP for page fetches", slog.Any("error", err))
	} else {
		c.BrowserClient = bc
		slog.Info("browser client initialized")
	}

	engine.Init(c)

	cacheTTL := env.Duration("CACHE_TTL", 15*time.Minute)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
}
