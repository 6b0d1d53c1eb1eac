// Package transcripttools exposes transcript fetching as MCP tools,
// sharing the engine cache and fetch pipeline with the REST surface.
package transcripttools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/360AYA25/youtube-transcript-railway/internal/engine"
	"github.com/360AYA25/youtube-transcript-railway/internal/engine/youtube"
)

// RegisterTools registers the transcript tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerTranscript(server)
}

func registerTranscript(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_transcript",
		Description: "Fetch the transcript and metadata of a YouTube video. Accepts a video ID or any YouTube URL and an optional language code. Returns the concatenated transcript text plus title, channel, description, duration, view count, upload date, tags, category, and thumbnail.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.TranscriptInput) (*mcp.CallToolResult, engine.TranscriptResult, error) {
		if input.VideoID == "" {
			return nil, engine.TranscriptResult{}, fmt.Errorf("video_id is required")
		}
		videoID, err := youtube.ExtractVideoID(input.VideoID)
		if err != nil {
			return nil, engine.TranscriptResult{}, fmt.Errorf("invalid video_id %q: must be an 11-char YouTube ID or URL", input.VideoID)
		}

		lang := engine.NormLang(input.Language)

		key := engine.CacheKey("transcript", videoID, lang)
		if out, ok := engine.CacheGet(ctx, key); ok {
			return nil, out, nil
		}

		video, err := youtube.Fetch(ctx, videoID, []string{lang})
		if err != nil {
			return nil, engine.TranscriptResult{}, err
		}

		out := youtube.Result(videoID, video)
		engine.CacheSet(ctx, key, out)
		return nil, out, nil
	})
}
