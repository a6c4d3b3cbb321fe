package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/bastiangx/wordfind/pkg/corpus"
	"github.com/bastiangx/wordfind/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
)

// Renderer formats query results for a terminal. Styles degrade to plain
// text when color is off or the output isn't a terminal.
type Renderer struct {
	exact   lipgloss.Style
	partial lipgloss.Style
	hint    lipgloss.Style
	warn    lipgloss.Style
	info    lipgloss.Style
}

// NewRenderer builds styles for out.
func NewRenderer(out io.Writer, color bool) *Renderer {
	if !color {
		plain := lipgloss.NewStyle()
		return &Renderer{exact: plain, partial: plain, hint: plain, warn: plain, info: plain}
	}
	r := lipgloss.NewRenderer(out)
	return &Renderer{
		exact:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		partial: r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		hint:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("8")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("1")),
		info:    r.NewStyle().Foreground(lipgloss.Color("4")),
	}
}

// Result renders one of the three outcomes.
func (r *Renderer) Result(res suggest.QueryResult) string {
	switch res.Kind() {
	case suggest.KindExact:
		return fmt.Sprintf("%s is in the text! It is used %s times",
			r.exact.Render(res.MatchedPrefix), utils.FormatWithCommas(res.UseCount))
	case suggest.KindPartial:
		if len(res.Suggestions) == 0 {
			return fmt.Sprintf("We found a partial match: %s!", r.partial.Render(res.MatchedPrefix))
		}
		return fmt.Sprintf("We found a partial match: %s! Did you mean %s?",
			r.partial.Render(res.MatchedPrefix), r.hint.Render(strings.Join(res.Suggestions, ", ")))
	default:
		return "We did not find a match, sorry!"
	}
}

// Timing renders how long a query took.
func (r *Renderer) Timing(d time.Duration) string {
	return fmt.Sprintf("Took %s milliseconds to find word or suggest matches", utils.FormatMillis(d))
}

// Stats renders the ingestion summary shown before the loop starts.
func (r *Renderer) Stats(s corpus.Stats) string {
	return fmt.Sprintf("Took %s milliseconds to add all the words in the text file\n"+
		"longest word = %s\nlength longest word = %d\ntotal unique words = %s",
		utils.FormatMillis(s.Elapsed), s.LongestWord, s.LongestLen, utils.FormatWithCommas(uint(s.Distinct)))
}

// ExitHint tells the user how to leave the loop.
func (r *Renderer) ExitHint(exitWord string) string {
	return r.warn.Render(fmt.Sprintf("Type '%s' to quit.", exitWord))
}

// Bye is printed when the loop ends on the exit word.
func (r *Renderer) Bye() string {
	return r.info.Render("Bye!")
}

// Bench renders a benchmark run.
func (r *Renderer) Bench(b BenchResult) string {
	return fmt.Sprintf("%s\nAverage of %s milliseconds over %s queries",
		r.Result(b.Result), utils.FormatMillis(b.Average), utils.FormatWithCommas(uint(b.Repeats)))
}
