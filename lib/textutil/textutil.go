package textutil

import "strings"

// Truncate shortens a display name to at most max runes, appending an
// ellipsis when anything was cut. Card names are frequently CJK so
// this counts runes, not bytes.
func Truncate(s string, max int) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func NormalizeKeyword(keyword string) string {
	return strings.ToLower(strings.Trim(keyword, " \t\n"))
}

// ValidKeyword reports whether a keyword is worth recording at all:
// the backend ignores anything shorter than two runes.
func ValidKeyword(keyword string) bool {
	return len([]rune(NormalizeKeyword(keyword))) >= 2
}
