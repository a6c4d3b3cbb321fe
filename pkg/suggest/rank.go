package suggest

import (
	"sort"
)

// Entry is a ranked suggestion with the count it was ranked by.
type Entry struct {
	Word     string
	UseCount uint
}

// Rank returns up to k words from the subtree rooted at node (node
// included), most used first. Equal counts are ordered by the word itself
// so results are reproducible; no word is dropped because it shares a
// count with another.
func Rank(node *Node, k int) []string {
	return entryWords(RankEntries(node, k))
}

func entryWords(entries []Entry) []string {
	words := make([]string, len(entries))
	for i, e := range entries {
		words[i] = e.Word
	}
	return words
}

// RankEntries is Rank keeping the use counts.
func RankEntries(node *Node, k int) []Entry {
	if node == nil || k < 1 {
		return []Entry{}
	}

	entries := collectWords(node)

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].UseCount != entries[j].UseCount {
			return entries[i].UseCount > entries[j].UseCount
		}
		return entries[i].Word < entries[j].Word
	})

	if len(entries) > k {
		entries = entries[:k]
	}
	return entries
}

// collectWords gathers every word terminal below and including node.
func collectWords(node *Node) []Entry {
	entries := []Entry{}
	stack := []*Node{node}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.isWord {
			entries = append(entries, Entry{Word: n.prefix, UseCount: n.useCount})
		}
		for _, child := range n.children {
			stack = append(stack, child)
		}
	}
	return entries
}
