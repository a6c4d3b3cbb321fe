// Package cli handles the interactive query loop, result rendering and the
// query benchmark harness.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/bastiangx/wordfind/pkg/suggest"
	"github.com/charmbracelet/log"
)

// Prompt is written before every line of input.
const Prompt = "Type a word (or part of it) to see if it's contained in the text: "

// Options control the query loop.
type Options struct {
	ExitWord   string
	Color      bool
	ShowTiming bool
}

// InputHandler reads queries line by line and prints one result per line.
// It stops on the exit word or at the end of input.
type InputHandler struct {
	index        suggest.IIndex
	reader       *bufio.Reader
	out          io.Writer
	render       *Renderer
	opts         Options
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(index suggest.IIndex, in io.Reader, out io.Writer, opts Options) *InputHandler {
	if opts.ExitWord == "" {
		opts.ExitWord = "exit"
	}
	return &InputHandler{
		index:  index,
		reader: bufio.NewReader(in),
		out:    out,
		render: NewRenderer(out, opts.Color),
		opts:   opts,
	}
}

// Start begins the interface loop.
// Reaching the end of input ends the loop without an error; any other read
// error is returned.
func (h *InputHandler) Start() error {
	fmt.Fprintln(h.out, h.render.ExitHint(h.opts.ExitWord))

	for {
		fmt.Fprint(h.out, "\n"+Prompt)
		line, err := h.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("failed to read input: %w", err)
		}

		input := utils.NormalizeQuery(line)
		switch {
		case utils.IsExitCommand(input, h.opts.ExitWord):
			fmt.Fprintln(h.out, h.render.Bye())
			return nil
		case input != "":
			h.handleInput(input)
		}

		if err == io.EOF {
			fmt.Fprintln(h.out)
			return nil
		}
	}
}

// Requests returns how many queries were answered.
func (h *InputHandler) Requests() int {
	return h.requestCount
}

// handleInput runs one normalized query and prints the rendered result.
func (h *InputHandler) handleInput(input string) {
	h.requestCount++

	start := time.Now()
	result := h.index.Query(input)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for '%s' (%s)", elapsed, input, result.Kind())

	if h.opts.ShowTiming {
		fmt.Fprintln(h.out, h.render.Timing(elapsed))
	}
	fmt.Fprintln(h.out, h.render.Result(result))
}
