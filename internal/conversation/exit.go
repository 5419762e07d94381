package conversation

import "strings"

var exitKeywords = []string{"exit", "quit", "end", "stop", "bye", "goodbye"}

// IsExit reports whether the message asks to finish the conversation.
// Matching is a case-insensitive substring test, so "byenow" and "weekend"
// also end the session.
func IsExit(message string) bool {
	lower := strings.ToLower(message)
	for _, keyword := range exitKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
