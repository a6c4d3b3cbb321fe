package corpus

import (
	"fmt"

	"github.com/bastiangx/wordfind/pkg/config"
	"github.com/bastiangx/wordfind/pkg/suggest"
	"github.com/charmbracelet/log"
)

// Session holds everything built at startup: the index, how it was
// filled and the config it was built with. It is created once and passed
// to the query loop, the benchmark harness and the server.
type Session struct {
	Index  *suggest.Trie
	Stats  Stats
	Config *config.Config
}

// Open builds a session by ingesting the corpus at path.
func Open(cfg *config.Config, path string) (*Session, error) {
	index := suggest.NewWithLimit(cfg.Query.Suggestions)

	loader, err := NewLoader(index, cfg.Corpus.StripPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to init corpus loader: %w", err)
	}

	stats, err := loader.LoadFile(path)
	if err != nil {
		return nil, err
	}
	log.Infof("Took %v to add all the words in %s", stats.Elapsed, path)

	return &Session{
		Index:  index,
		Stats:  stats,
		Config: cfg,
	}, nil
}
