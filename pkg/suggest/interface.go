// Package suggest is the core, a character trie over a corpus vocabulary with
// per-word usage counts, exact lookups and ranked suggestions for partial matches.
package suggest

// IIndex defines the interface for vocabulary indexes
type IIndex interface {
	// Insert adds one occurrence of word to the index
	Insert(word string)

	// Query looks word up, returning an exact hit, a partial match with
	// suggestions, or a miss
	Query(word string) QueryResult
}
