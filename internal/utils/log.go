package utils

import "strings"

// TruncateForLog trims the string and shortens it to limit runes, appending an
// ellipsis when something was cut. Newlines are flattened so previews stay on one line.
func TruncateForLog(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
