package utils

import (
	"strings"
)

// NormalizeQuery trims surrounding whitespace and lowercases user input
// so it matches how words were ingested.
func NormalizeQuery(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsExitCommand reports whether normalized input is the configured exit word.
// An empty exit word never matches.
func IsExitCommand(input, exitWord string) bool {
	return exitWord != "" && input == NormalizeQuery(exitWord)
}
