package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultStripPattern matches ASCII punctuation except apostrophes and
// hyphens, plus digits. Matches are removed from corpus lines.
const DefaultStripPattern = "[!\"#$%&()*+,./:;<=>?@\\[\\\\\\]^_`{|}~\\d]"

// TokenFilter cleans corpus lines and splits them into tokens.
type TokenFilter struct {
	strip *regexp.Regexp
}

// NewTokenFilter compiles pattern; an empty pattern uses DefaultStripPattern.
func NewTokenFilter(pattern string) (*TokenFilter, error) {
	if pattern == "" {
		pattern = DefaultStripPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid strip pattern %q: %w", pattern, err)
	}
	return &TokenFilter{strip: re}, nil
}

// Clean trims the line and removes every strip match.
func (f *TokenFilter) Clean(line string) string {
	return f.strip.ReplaceAllString(strings.TrimSpace(line), "")
}

// Tokens cleans line and splits it on single spaces, lowercasing each token.
// Empty tokens left by consecutive spaces are dropped.
func (f *TokenFilter) Tokens(line string) []string {
	cleaned := f.Clean(line)
	if cleaned == "" {
		return nil
	}
	var tokens []string
	for _, p := range strings.Split(cleaned, " ") {
		if p == "" {
			continue
		}
		tokens = append(tokens, strings.ToLower(p))
	}
	return tokens
}
