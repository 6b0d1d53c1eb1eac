package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/360AYA25/youtube-transcript-railway/internal/engine"
)

// playerResponse is the subset of the Innertube /player response (and of the
// ytInitialPlayerResponse embedded in watch page HTML) that the service uses.
type playerResponse struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	VideoDetails *videoDetails `json:"videoDetails"`
	Microformat  *struct {
		PlayerMicroformatRenderer *microformatRenderer `json:"playerMicroformatRenderer"`
	} `json:"microformat"`
	PlayabilityStatus *playabilityStatus `json:"playabilityStatus"`
}

type playabilityStatus struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = auto-generated
}

type videoDetails struct {
	VideoID          string   `json:"videoId"`
	Title            string   `json:"title"`
	LengthSeconds    string   `json:"lengthSeconds"`
	Keywords         []string `json:"keywords"`
	ChannelID        string   `json:"channelId"`
	ShortDescription string   `json:"shortDescription"`
	ViewCount        string   `json:"viewCount"`
	Author           string   `json:"author"`
	Thumbnail        struct {
		Thumbnails []struct {
			URL    string `json:"url"`
			Width  int    `json:"width"`
			Height int    `json:"height"`
		} `json:"thumbnails"`
	} `json:"thumbnail"`
}

type microformatRenderer struct {
	Category    string `json:"category"`
	PublishDate string `json:"publishDate"`
	UploadDate  string `json:"uploadDate"`
	LikeCount   string `json:"likeCount"`
}

// playabilityError classifies a player response that carries no captions.
func (pr *playerResponse) playabilityError() error {
	if pr.PlayabilityStatus == nil {
		return ErrNoTranscript
	}
	status := pr.PlayabilityStatus.Status
	reason := pr.PlayabilityStatus.Reason
	switch status {
	case "ERROR":
		if reason != "" {
			return fmt.Errorf("%w: %s", ErrVideoUnavailable, reason)
		}
		return ErrVideoUnavailable
	case "LOGIN_REQUIRED":
		// "Sign in to confirm you're not a bot" — YouTube rate-limiting
		// datacenter IPs, not a property of the video.
		return fmt.Errorf("%w: %s", ErrTooManyRequests, reason)
	}
	if reason != "" {
		return fmt.Errorf("%w: %s", ErrNoTranscript, reason)
	}
	return ErrNoTranscript
}

// needsPoToken reports whether a caption track URL requires a PoToken (browser-only).
// Tracks with &exp=xpe cannot be fetched server-side.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// pickBestTrack selects the best usable caption track for the given language preferences.
// Skips tracks that require PoToken — those only work in a browser.
func pickBestTrack(tracks []captionTrack, langs []string) (captionTrack, bool) {
	usable := make([]captionTrack, 0, len(tracks))
	for _, t := range tracks {
		if !needsPoToken(t.BaseURL) {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return tracks[0], false
	}
	// 1. Manual track in preferred language
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return t, true
			}
		}
	}
	// 2. Auto-generated track in preferred language
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang {
				return t, true
			}
		}
	}
	// 3. Any English track
	for _, t := range usable {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t, true
		}
	}
	return usable[0], true
}

// fetchPlayerANDROID fetches the full player response via the ANDROID
// Innertube /player endpoint. Works from non-blocked (residential/cloud) IPs
// and, unlike the WEB client, needs no PoToken for most caption tracks.
func fetchPlayerANDROID(ctx context.Context, videoID string) (*playerResponse, error) {
	engine.IncrPlayerFetches()

	reqBody, err := json.Marshal(playerRequest{
		VideoID: videoID,
		Context: requestCtx{
			Client: clientInfo{
				ClientName:        "ANDROID",
				ClientVersion:     androidClientVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, err
	}

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, innertubePlayerURL+"?prettyPrint=false", bytes.NewReader(reqBody))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", androidUserAgent)
		req.Header.Set("X-Youtube-Client-Name", "3")
		req.Header.Set("X-Youtube-Client-Version", androidClientVersion)
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		return nil, classifyUpstream(fmt.Errorf("android innertube: %w", err))
	}
	defer resp.Body.Close()

	var pr playerResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("decode player: %w", err)
	}
	return &pr, nil
}
