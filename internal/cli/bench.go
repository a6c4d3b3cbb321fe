package cli

import (
	"strconv"
	"time"

	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/bastiangx/wordfind/pkg/suggest"
	"github.com/charmbracelet/log"
)

// BenchResult is the outcome of repeating one query.
type BenchResult struct {
	Result  suggest.QueryResult
	Repeats int
	Total   time.Duration
	Average time.Duration
}

// ParseRepeats reads a repeat count argument. Anything that isn't a
// positive integer falls back to def.
func ParseRepeats(arg string, def int) int {
	if arg == "" {
		return def
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		log.Warnf("Invalid repeat count %q, using %d", arg, def)
		return def
	}
	return n
}

// Benchmark queries word repeats times and reports the average latency.
// repeats below 1 is treated as 1.
func Benchmark(index suggest.IIndex, word string, repeats int) BenchResult {
	if repeats < 1 {
		repeats = 1
	}
	word = utils.NormalizeQuery(word)

	var result suggest.QueryResult
	start := time.Now()
	for i := 0; i < repeats; i++ {
		result = index.Query(word)
	}
	total := time.Since(start)

	return BenchResult{
		Result:  result,
		Repeats: repeats,
		Total:   total,
		Average: total / time.Duration(repeats),
	}
}
