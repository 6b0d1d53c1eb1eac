package engine

// --- Transcript API types ---

// TranscriptRequest is the JSON body of POST /transcript.
// VideoID accepts a bare 11-char ID or any YouTube URL.
type TranscriptRequest struct {
	VideoID string `json:"video_id"`
	Lang    string `json:"lang,omitempty"`
}

// TranscriptInput is the input for the youtube_transcript MCP tool.
type TranscriptInput struct {
	VideoID  string `json:"video_id" jsonschema:"YouTube video ID (11 chars) or any YouTube URL"`
	Language string `json:"language,omitempty" jsonschema:"Transcript language code (default: en)"`
}

// TranscriptResult is the response envelope for both the REST and MCP
// surfaces. Field names follow the public service contract.
type TranscriptResult struct {
	Success      bool   `json:"success"`
	VideoID      string `json:"videoId"`
	VideoTitle   string `json:"videoTitle,omitempty"`
	ChannelName  string `json:"channelName,omitempty"`
	ChannelURL   string `json:"channelUrl,omitempty"`
	Description  string `json:"description,omitempty"`
	Duration     int    `json:"duration,omitempty"`
	ViewCount    int64  `json:"viewCount,omitempty"`
	LikeCount    int64  `json:"likeCount,omitempty"`
	UploadDate   string `json:"uploadDate,omitempty"`
	Tags         string `json:"tags,omitempty"`
	Categories   string `json:"categories,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Transcript   string `json:"transcript,omitempty"`
	Length       int    `json:"length,omitempty"`
	Error        string `json:"error,omitempty"`
}
