package cli

import (
	"bytes"
	"testing"

	"github.com/bastiangx/wordfind/pkg/suggest"
	"github.com/stretchr/testify/assert"
)

func TestParseRepeats(t *testing.T) {
	tests := []struct {
		arg      string
		expected int
	}{
		{"", 1000},
		{"25", 25},
		{"1", 1},
		{"0", 1000},
		{"-3", 1000},
		{"ten", 1000},
		{"2.5", 1000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseRepeats(tt.arg, 1000), "arg=%q", tt.arg)
	}
}

func TestBenchmark(t *testing.T) {
	index := newIndex()

	b := Benchmark(index, "  THE ", 50)
	assert.Equal(t, 50, b.Repeats)
	assert.Equal(t, suggest.KindExact, b.Result.Kind())
	assert.Equal(t, uint(1300), b.Result.UseCount)
	assert.Equal(t, b.Total/50, b.Average)

	b = Benchmark(index, "th", 0)
	assert.Equal(t, 1, b.Repeats)
	assert.Equal(t, []string{"the", "then", "there"}, b.Result.Suggestions)
}

func TestRendererBench(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, false)
	out := r.Bench(Benchmark(newIndex(), "xyz", 1200))
	assert.Contains(t, out, "We did not find a match, sorry!")
	assert.Contains(t, out, "over 1,200 queries")
}
