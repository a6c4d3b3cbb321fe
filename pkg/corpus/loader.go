// Package corpus reads a plain text corpus into a vocabulary index.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/bastiangx/wordfind/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Stats describes one ingestion run. It is for reporting only.
type Stats struct {
	Lines       int
	Tokens      int
	Distinct    int
	LongestWord string
	LongestLen  int
	Elapsed     time.Duration
}

// Loader feeds every token of a corpus into an index.
type Loader struct {
	index    suggest.IIndex
	filter   *utils.TokenFilter
	vocab    *patricia.Trie
	distinct int
}

// NewLoader creates a loader inserting into index. stripPattern is the
// character class removed from each line; empty uses utils.DefaultStripPattern.
func NewLoader(index suggest.IIndex, stripPattern string) (*Loader, error) {
	filter, err := utils.NewTokenFilter(stripPattern)
	if err != nil {
		return nil, err
	}
	return &Loader{
		index:  index,
		filter: filter,
		vocab:  patricia.NewTrie(),
	}, nil
}

// LoadFile validates and ingests the corpus file at path.
func (l *Loader) LoadFile(path string) (Stats, error) {
	if err := utils.ValidateTextFile(path); err != nil {
		return Stats{}, fmt.Errorf("invalid corpus: %w", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to open corpus %s: %w", path, err)
	}
	defer file.Close()

	stats, err := l.Load(file)
	if err != nil {
		return stats, fmt.Errorf("failed to load corpus %s: %w", path, err)
	}
	return stats, nil
}

// Load ingests r line by line. Blank lines are skipped; every other line
// is cleaned, split on single spaces and each lowercased token inserted.
// Distinct counts every token this loader has seen, across calls.
func (l *Loader) Load(r io.Reader) (Stats, error) {
	start := time.Now()
	reader := bufio.NewReader(r)
	var stats Stats

	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			l.loadLine(line, &stats)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("failed to read line %d: %w", stats.Lines+1, err)
		}
	}

	stats.Distinct = l.distinct
	stats.Elapsed = time.Since(start)
	log.Debugf("Loaded %d tokens (%d distinct) from %d lines in %v", stats.Tokens, stats.Distinct, stats.Lines, stats.Elapsed)
	return stats, nil
}

func (l *Loader) loadLine(line string, stats *Stats) {
	stats.Lines++
	for _, token := range l.filter.Tokens(line) {
		stats.Tokens++
		if l.vocab.Insert(patricia.Prefix(token), struct{}{}) {
			l.distinct++
		}

		if n := utf8.RuneCountInString(token); n > stats.LongestLen {
			stats.LongestLen = n
			stats.LongestWord = token
		}
		l.index.Insert(token)
	}
}

// Distinct returns how many different tokens this loader has seen.
func (l *Loader) Distinct() int {
	return l.distinct
}

// VisitVocabulary calls fn once for every distinct token seen.
// A non-nil error from fn stops the visit and is returned.
func (l *Loader) VisitVocabulary(fn func(word string) error) error {
	return l.vocab.Visit(func(p patricia.Prefix, _ patricia.Item) error {
		return fn(string(p))
	})
}
