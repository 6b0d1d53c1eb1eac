package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/360AYA25/youtube-transcript-railway/internal/engine"
	"github.com/360AYA25/youtube-transcript-railway/internal/engine/youtube"
)

// fetchFunc matches youtube.Fetch; injectable for handler tests.
type fetchFunc func(ctx context.Context, videoID string, langs []string) (*youtube.Video, error)

// Handler holds the REST handler dependencies.
type Handler struct {
	version string
	fetch   fetchFunc
}

// NewHandler builds the default handler backed by the youtube package.
func NewHandler(version string) *Handler {
	return &Handler{version: version, fetch: youtube.Fetch}
}

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "YouTube Transcript Service",
		"version": h.version,
		"status":  "running",
		"endpoints": gin.H{
			"/":           "GET - API information",
			"/health":     "GET - Health check",
			"/transcript": "POST/GET - Get video transcript and metadata",
			"/metrics":    "GET - Operational counters",
		},
	})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "youtube-transcript-service",
	})
}

func (h *Handler) metrics(c *gin.Context) {
	c.String(http.StatusOK, engine.FormatMetrics())
}

func (h *Handler) transcriptPost(c *gin.Context) {
	var req engine.TranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, engine.TranscriptResult{
			Success: false,
			Error:   "invalid request body: " + err.Error(),
		})
		return
	}
	h.transcript(c, req.VideoID, req.Lang)
}

func (h *Handler) transcriptGet(c *gin.Context) {
	h.transcript(c, c.Query("video_id"), c.Query("lang"))
}

// transcript is the shared core of GET and POST /transcript.
func (h *Handler) transcript(c *gin.Context, rawID, lang string) {
	videoID, err := youtube.ExtractVideoID(rawID)
	if err != nil {
		c.JSON(http.StatusBadRequest, engine.TranscriptResult{
			Success: false,
			VideoID: rawID,
			Error:   "invalid video_id: must be an 11-char YouTube ID or URL",
		})
		return
	}

	lang = engine.NormLang(lang)
	ctx := c.Request.Context()

	key := engine.CacheKey("transcript", videoID, lang)
	if res, ok := engine.CacheGet(ctx, key); ok {
		c.JSON(http.StatusOK, res)
		return
	}

	video, err := h.fetch(ctx, videoID, []string{lang})
	if err != nil {
		c.JSON(statusFor(err), engine.TranscriptResult{
			Success: false,
			VideoID: videoID,
			Error:   err.Error(),
		})
		return
	}

	res := youtube.Result(videoID, video)
	engine.CacheSet(ctx, key, res)
	c.JSON(http.StatusOK, res)
}

// statusFor maps fetch errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, youtube.ErrInvalidVideoID):
		return http.StatusBadRequest
	case errors.Is(err, youtube.ErrVideoUnavailable),
		errors.Is(err, youtube.ErrNoTranscript):
		return http.StatusNotFound
	case errors.Is(err, youtube.ErrTooManyRequests):
		return http.StatusTooManyRequests
	}
	// Upstream 429s that survived retries carry their status on the error.
	if engine.HTTPStatusCode(err) == http.StatusTooManyRequests {
		return http.StatusTooManyRequests
	}
	return http.StatusBadGateway
}
