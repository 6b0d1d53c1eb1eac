package youtube

import (
	"errors"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple object", `{"a":1};var x`, `{"a":1}`},
		{"nested objects", `{"a":{"b":{"c":2}}}tail`, `{"a":{"b":{"c":2}}}`},
		{"braces in strings ignored", `{"a":"}{"}rest`, `{"a":"}{"}`},
		{"escaped quote in string", `{"a":"say \"hi\" {now}"}x`, `{"a":"say \"hi\" {now}"}`},
		{"unterminated", `{"a":1`, ""},
		{"not an object", `["a"]`, ""},
		{"empty", ``, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(extractJSON([]byte(tt.in)))
			if got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractPlayerResponse(t *testing.T) {
	page := `<html><head><title>Test - YouTube</title></head><body>
<script>var ytInitialPlayerResponse = {"videoDetails":{"videoId":"dQw4w9WgXcQ","title":"Test Video","author":"Test Channel","lengthSeconds":"212","viewCount":"1000"},"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[{"baseUrl":"https://yt/tt","languageCode":"en"}]}}};var meta = 1;</script>
</body></html>`

	pr, err := extractPlayerResponse([]byte(page))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pr.VideoDetails == nil || pr.VideoDetails.Title != "Test Video" {
		t.Errorf("videoDetails not decoded: %+v", pr.VideoDetails)
	}
	if pr.Captions == nil {
		t.Fatal("captions not decoded")
	}
	tracks := pr.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) != 1 || tracks[0].LanguageCode != "en" {
		t.Errorf("unexpected caption tracks: %+v", tracks)
	}
}

func TestExtractPlayerResponseMissing(t *testing.T) {
	_, err := extractPlayerResponse([]byte(`<html><body>nothing here</body></html>`))
	if err == nil {
		t.Fatal("expected error for page without player response")
	}
}

func TestExtractPlayerResponseCaptcha(t *testing.T) {
	page := `<html><body><div class="g-recaptcha"></div></body></html>`
	_, err := extractPlayerResponse([]byte(page))
	if !errors.Is(err, ErrTooManyRequests) {
		t.Errorf("expected ErrTooManyRequests for captcha page, got %v", err)
	}
}
