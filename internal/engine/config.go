package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	DefaultLanguage      string
	FetchTimeout         time.Duration
	MaxTranscriptChars   int // 0 = unlimited
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	HTTPClient           *http.Client
	BrowserClient        *BrowserClient // nil = TLS-fingerprinted fetching disabled
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (youtube, server).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = "en"
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 15 * time.Second
	}
	cfg = c
	Cfg = &cfg
}
