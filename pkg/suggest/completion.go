package suggest

import (
	"strings"
)

// Query walks the trie along word for as long as characters match.
//
// Nothing matched is a miss. If the whole input matched and ends on a word
// node it is an exact hit carrying the word's use count. Anything else is a
// partial match: the deepest matched node's subtree is ranked for up to
// Limit() suggestions.
//
// Callers are expected to trim the input; it is lowercased here so the
// query side agrees with Insert.
func (t *Trie) Query(word string) QueryResult {
	result, _ := t.QueryRanked(word)
	return result
}

// QueryRanked is Query also returning the ranked suggestions with their use
// counts. The entries line up with result.Suggestions.
func (t *Trie) QueryRanked(word string) (QueryResult, []Entry) {
	runes := []rune(strings.ToLower(word))
	current := t.root
	matched := 0

	for _, r := range runes {
		child, ok := current.children[r]
		if !ok {
			break
		}
		current = child
		matched++
	}

	if matched == 0 {
		return missResult(), []Entry{}
	}

	if current.isWord && matched == len(runes) {
		return QueryResult{
			MatchedPrefix: current.prefix,
			IsWord:        true,
			Suggestions:   []string{},
			UseCount:      current.useCount,
		}, []Entry{}
	}

	entries := []Entry{}
	if current.Len() > 0 {
		entries = RankEntries(current, t.limit)
	}

	return QueryResult{
		MatchedPrefix: current.prefix,
		Suggestions:   entryWords(entries),
	}, entries
}

// Lookup returns the node spelling word exactly, or nil.
func (t *Trie) Lookup(word string) *Node {
	if word == "" {
		return nil
	}
	current := t.root
	for _, r := range strings.ToLower(word) {
		current = current.Child(r)
		if current == nil {
			return nil
		}
	}
	return current
}
