package engine

import (
	"testing"
	"unicode/utf8"
)

func TestCleanHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "hello world", "hello world"},
		{"simple tags", "<b>hello</b> world", "hello world"},
		{"nested tags", "<div><span>hello</span></div>", "hello"},
		{"surrounding whitespace", "  hello  ", "hello"},
		{"empty", "", ""},
		{"only tags", "<br/><hr/>", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanHTML(tt.in); got != tt.want {
				t.Errorf("CleanHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"shorter than limit", "abc", 10, "abc"},
		{"exactly limit", "abcde", 5, "abcde"},
		{"longer than limit", "abcdef", 3, "abc"},
		{"zero means unlimited", "abcdef", 0, "abcdef"},
		{"negative means unlimited", "abcdef", -1, "abcdef"},
		{"cyrillic cut at rune boundary", "привет мир", 3, "при"},
		{"cjk cut at rune boundary", "こんにちは", 2, "こん"},
		{"cyrillic shorter than limit", "привет", 10, "привет"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.n)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("Truncate(%q, %d) produced invalid UTF-8: %q", tt.in, tt.n, got)
			}
		})
	}
}

func TestNormLang(t *testing.T) {
	Init(Config{DefaultLanguage: "en"})

	if got := NormLang(""); got != "en" {
		t.Errorf("NormLang(\"\") = %q, want %q", got, "en")
	}
	if got := NormLang("de"); got != "de" {
		t.Errorf("NormLang(\"de\") = %q, want %q", got, "de")
	}
}
