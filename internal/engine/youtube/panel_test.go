package youtube

import (
	"encoding/json"
	"testing"
)

func TestExtractTranscriptToken(t *testing.T) {
	t.Run("plain token", func(t *testing.T) {
		data := []byte(`{"engagementPanels":[{"getTranscriptEndpoint":{"params":"CgNhc3ISAmVu"}}]}`)
		got, err := extractTranscriptToken(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "CgNhc3ISAmVu" {
			t.Errorf("token = %q, want %q", got, "CgNhc3ISAmVu")
		}
	})

	t.Run("url-encoded token is decoded", func(t *testing.T) {
		data := []byte(`{"getTranscriptEndpoint":{"params":"CgNhc3I%3D"}}`)
		got, err := extractTranscriptToken(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "CgNhc3I=" {
			t.Errorf("token = %q, want %q", got, "CgNhc3I=")
		}
	})

	t.Run("missing endpoint", func(t *testing.T) {
		if _, err := extractTranscriptToken([]byte(`{"contents":{}}`)); err == nil {
			t.Fatal("expected error when endpoint missing")
		}
	})
}

func TestJoinTranscriptSegments(t *testing.T) {
	raw := `{"actions":[{"updateEngagementPanelAction":{"content":{"transcriptRenderer":{"content":{"transcriptSearchPanelRenderer":{"body":{"transcriptSegmentListRenderer":{"initialSegments":[
		{"transcriptSegmentRenderer":{"snippet":{"runs":[{"text":"never gonna"},{"text":"give you up"}]}}},
		{"transcriptSegmentRenderer":{"snippet":{"runs":[{"text":"never gonna let you down"}]}}},
		{}
	]}}}}}}}}]}`

	var resp getTranscriptResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("failed to decode fixture: %v", err)
	}

	got := joinTranscriptSegments(resp)
	want := "never gonna give you up never gonna let you down"
	if got != want {
		t.Errorf("joined = %q, want %q", got, want)
	}
}

func TestJoinTranscriptSegmentsEmpty(t *testing.T) {
	if got := joinTranscriptSegments(getTranscriptResponse{}); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
