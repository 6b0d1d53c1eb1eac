package engine

import (
	"regexp"
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
)

// NormLang normalises a language field: empty string → configured default.
func NormLang(lang string) string {
	if lang == "" {
		return cfg.DefaultLanguage
	}
	return lang
}

// User-Agent strings used across HTTP clients.
const (
	UserAgentBot    = "TranscriptService/1.0"
	UserAgentChrome = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
)

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// CleanHTML strips HTML tags and trims whitespace.
func CleanHTML(s string) string {
	return strings.TrimSpace(htmlTagRe.ReplaceAllString(s, ""))
}

// Truncate caps s at n runes. n <= 0 means unlimited.
// Safe for UTF-8 (Cyrillic, CJK, emoji).
func Truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	return strutil.TruncateWith(s, n, "")
}
