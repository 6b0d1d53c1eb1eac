package youtube

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/360AYA25/youtube-transcript-railway/internal/engine"
)

// Video is a fetched video: metadata plus the concatenated transcript text.
type Video struct {
	ID         string
	Meta       *Metadata
	Transcript string
}

// Fetch fetches the transcript and metadata for a YouTube video.
// Primary:  scrape watch page ytInitialPlayerResponse → caption XML (works from any IP)
// Fallback: engagement panel /next → /get_transcript (works from datacenter IPs)
// Fallback: ANDROID Innertube /player → captionTracks
func Fetch(ctx context.Context, videoID string, langs []string) (*Video, error) {
	engine.IncrTranscriptRequests()
	if len(langs) == 0 {
		langs = []string{engine.Cfg.DefaultLanguage}
	}
	v := &Video{ID: videoID}

	pr, body, scrapeErr := scrapePlayerResponse(ctx, videoID)
	if scrapeErr == nil {
		v.Meta = metadataFromPlayer(pr)
		if v.Meta == nil {
			v.Meta = metadataFromHTML(body)
		}
		text, err := transcriptFromPlayer(ctx, pr, langs)
		if err == nil {
			v.Transcript = text
			return v, nil
		}
		scrapeErr = err
	} else if v.Meta == nil && body != nil {
		v.Meta = metadataFromHTML(body)
	}
	slog.Warn("youtube: page scrape failed, trying engagement panel",
		slog.String("id", videoID), slog.Any("err", scrapeErr))

	if text, err := fetchTranscriptViaPanel(ctx, videoID); err == nil {
		v.Transcript = text
		if v.Meta == nil {
			if pr2, aerr := fetchPlayerANDROID(ctx, videoID); aerr == nil {
				v.Meta = metadataFromPlayer(pr2)
			}
		}
		return v, nil
	} else {
		slog.Warn("youtube: engagement panel failed, trying player",
			slog.String("id", videoID), slog.Any("err", err))
	}

	pr2, err := fetchPlayerANDROID(ctx, videoID)
	if err != nil {
		engine.IncrTranscriptErrors()
		if isSentinel(scrapeErr) {
			return nil, scrapeErr
		}
		return nil, err
	}
	if v.Meta == nil {
		v.Meta = metadataFromPlayer(pr2)
	}
	text, err := transcriptFromPlayer(ctx, pr2, langs)
	if err != nil {
		engine.IncrTranscriptErrors()
		if isSentinel(scrapeErr) && !isSentinel(err) {
			return nil, scrapeErr
		}
		return nil, err
	}
	v.Transcript = text
	return v, nil
}

// transcriptFromPlayer picks a caption track from a player response and
// fetches its timedtext XML.
func transcriptFromPlayer(ctx context.Context, pr *playerResponse, langs []string) (string, error) {
	if pr.Captions == nil {
		return "", pr.playabilityError()
	}
	tracks := pr.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return "", ErrNoTranscript
	}
	track, ok := pickBestTrack(tracks, langs)
	if !ok {
		return "", fmt.Errorf("%w: all caption tracks require PoToken", ErrNoTranscript)
	}
	return fetchTimedText(ctx, track.BaseURL)
}

// isSentinel reports whether err wraps one of the classified fetch errors.
// Sentinel errors from the primary strategy beat opaque fallback errors.
func isSentinel(err error) bool {
	return errors.Is(err, ErrVideoUnavailable) ||
		errors.Is(err, ErrNoTranscript) ||
		errors.Is(err, ErrTooManyRequests)
}

// Result shapes a fetched video into the public response envelope.
func Result(videoID string, v *Video) engine.TranscriptResult {
	transcript := engine.Truncate(v.Transcript, engine.Cfg.MaxTranscriptChars)
	res := engine.TranscriptResult{
		Success:    true,
		VideoID:    videoID,
		Transcript: transcript,
		Length:     utf8.RuneCountInString(transcript),
	}
	if m := v.Meta; m != nil {
		res.VideoTitle = m.Title
		res.ChannelName = m.ChannelName
		res.ChannelURL = m.ChannelURL()
		res.Description = m.Description
		res.Duration = m.DurationSeconds
		res.ViewCount = m.ViewCount
		res.LikeCount = m.LikeCount
		res.UploadDate = m.UploadDate
		res.Tags = strings.Join(m.Keywords, ", ")
		res.Categories = m.Category
		res.ThumbnailURL = m.ThumbnailURL
	}
	return res
}
