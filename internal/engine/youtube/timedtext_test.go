package youtube

import "testing"

func TestParseTimedText(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want string
	}{
		{
			name: "plain lines joined with spaces",
			xml: `<?xml version="1.0" encoding="utf-8"?>
<transcript><text start="0" dur="2.5">never gonna</text><text start="2.5" dur="3">give you up</text></transcript>`,
			want: "never gonna give you up",
		},
		{
			name: "html entities unescaped",
			xml:  `<transcript><text start="0" dur="1">it&amp;#39;s ok &amp;amp; fine</text></transcript>`,
			want: "it's ok & fine",
		},
		{
			name: "inline markup stripped",
			xml:  `<transcript><text start="0" dur="1">&lt;b&gt;bold&lt;/b&gt; words</text></transcript>`,
			want: "bold words",
		},
		{
			name: "empty lines skipped",
			xml:  `<transcript><text start="0" dur="1"></text><text start="1" dur="1">hello</text></transcript>`,
			want: "hello",
		},
		{
			name: "empty transcript",
			xml:  `<transcript></transcript>`,
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTimedText([]byte(tt.xml))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseTimedText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseTimedTextInvalid(t *testing.T) {
	if _, err := parseTimedText([]byte("not xml at all <unclosed")); err == nil {
		t.Fatal("expected error for invalid XML")
	}
}
