package youtube

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/360AYA25/youtube-transcript-railway/internal/engine"
)

// Metadata holds the video fields the service reports alongside the transcript.
type Metadata struct {
	Title           string
	ChannelName     string
	ChannelID       string
	Description     string
	DurationSeconds int
	ViewCount       int64
	LikeCount       int64
	UploadDate      string
	Keywords        []string
	Category        string
	ThumbnailURL    string
}

// ChannelURL derives the canonical channel URL from the channel ID.
func (m *Metadata) ChannelURL() string {
	if m.ChannelID == "" {
		return ""
	}
	return "https://www.youtube.com/channel/" + m.ChannelID
}

// metadataFromPlayer builds Metadata from a player response.
// Returns nil when the response carries no videoDetails.
func metadataFromPlayer(pr *playerResponse) *Metadata {
	if pr == nil || pr.VideoDetails == nil {
		return nil
	}
	vd := pr.VideoDetails

	m := &Metadata{
		Title:       vd.Title,
		ChannelName: vd.Author,
		ChannelID:   vd.ChannelID,
		Description: vd.ShortDescription,
		Keywords:    vd.Keywords,
	}
	m.DurationSeconds, _ = strconv.Atoi(vd.LengthSeconds)
	m.ViewCount, _ = strconv.ParseInt(vd.ViewCount, 10, 64)

	// Largest thumbnail wins.
	best := -1
	for _, t := range vd.Thumbnail.Thumbnails {
		if t.Width*t.Height > best {
			best = t.Width * t.Height
			m.ThumbnailURL = t.URL
		}
	}

	if pr.Microformat != nil && pr.Microformat.PlayerMicroformatRenderer != nil {
		mf := pr.Microformat.PlayerMicroformatRenderer
		m.Category = mf.Category
		m.UploadDate = mf.PublishDate
		if m.UploadDate == "" {
			m.UploadDate = mf.UploadDate
		}
		m.LikeCount, _ = strconv.ParseInt(mf.LikeCount, 10, 64)
	}
	return m
}

// metadataFromHTML scrapes og:/meta tags from watch page HTML. Last-resort
// fallback when the player response has no videoDetails (e.g. consent pages
// that still render the social preview tags).
func metadataFromHTML(body []byte) *Metadata {
	if len(body) == 0 {
		return nil
	}
	engine.IncrMetadataFallbacks()

	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil
	}
	doc := goquery.NewDocumentFromNode(root)

	meta := func(prop string) string {
		if v, ok := doc.Find(`meta[property="` + prop + `"]`).Attr("content"); ok {
			return v
		}
		if v, ok := doc.Find(`meta[name="` + prop + `"]`).Attr("content"); ok {
			return v
		}
		return ""
	}

	m := &Metadata{
		Title:        meta("og:title"),
		Description:  meta("description"),
		ThumbnailURL: meta("og:image"),
	}
	if kw := meta("keywords"); kw != "" {
		for _, k := range strings.Split(kw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				m.Keywords = append(m.Keywords, k)
			}
		}
	}
	if m.Title == "" {
		m.Title = strings.TrimSuffix(doc.Find("title").First().Text(), " - YouTube")
	}
	if m.Title == "" && m.Description == "" && m.ThumbnailURL == "" {
		return nil
	}
	return m
}
