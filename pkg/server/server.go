package server

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/wordfind/internal/logger"
	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/bastiangx/wordfind/pkg/corpus"
	"github.com/bastiangx/wordfind/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// Index is what the server needs from the vocabulary index.
type Index interface {
	suggest.IIndex
	QueryRanked(word string) (suggest.QueryResult, []suggest.Entry)
	Words() int
	Nodes() int
	Limit() int
}

// Server answers msgpack requests read from in, writing responses to out.
type Server struct {
	index        Index
	stats        corpus.Stats
	dec          *msgpack.Decoder
	enc          *msgpack.Encoder
	logger       *log.Logger
	requestCount int
}

// NewServer creates a server over an already loaded index.
func NewServer(index Index, stats corpus.Stats, in io.Reader, out io.Writer) *Server {
	return &Server{
		index:  index,
		stats:  stats,
		dec:    msgpack.NewDecoder(in),
		enc:    msgpack.NewEncoder(out),
		logger: logger.New("server"),
	}
}

// NewSessionServer creates a server for session.
func NewSessionServer(session *corpus.Session, in io.Reader, out io.Writer) *Server {
	return NewServer(session.Index, session.Stats, in, out)
}

// Start announces readiness and serves requests until the input ends.
// A clean end of input returns nil; a truncated message or a write
// failure is returned as an error.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		raw, err := s.dec.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debugf("Input closed after %d requests", s.requestCount)
				return nil
			}
			return fmt.Errorf("failed to read request: %w", err)
		}
		if err := s.handleRequest(raw); err != nil {
			return err
		}
	}
}

// handleRequest decodes one message and dispatches it on its action.
func (s *Server) handleRequest(raw msgpack.RawMessage) error {
	s.requestCount++

	var req Request
	if err := msgpack.Unmarshal(raw, &req); err != nil {
		s.logger.Errorf("Unmarshaling request: %v", err)
		return s.sendError("", "invalid request", 400)
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	switch req.Action {
	case "", "query":
		return s.send(s.handleQuery(req))
	case "stats":
		return s.send(s.handleStats(req))
	case "health":
		return s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), 400)
	}
}

func (s *Server) handleQuery(req Request) QueryResponse {
	input := utils.NormalizeQuery(req.Query)

	start := time.Now()
	result, entries := s.index.QueryRanked(input)
	elapsed := time.Since(start)

	suggestions := make([]Suggestion, len(entries))
	for i, e := range entries {
		suggestions[i] = Suggestion{Word: e.Word, Used: e.UseCount, Rank: uint16(i + 1)}
	}
	s.logger.Debugf("Took [ %v ] for '%s' (%s)", elapsed, input, result.Kind())

	return QueryResponse{
		ID:          req.ID,
		Match:       result.MatchedPrefix,
		IsWord:      result.IsWord,
		Used:        result.UseCount,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	}
}

func (s *Server) handleStats(req Request) StatsResponse {
	return StatsResponse{
		ID:          req.ID,
		Status:      "ok",
		Lines:       s.stats.Lines,
		Tokens:      s.stats.Tokens,
		Distinct:    s.stats.Distinct,
		Words:       s.index.Words(),
		Nodes:       s.index.Nodes(),
		LongestWord: s.stats.LongestWord,
		Limit:       s.index.Limit(),
	}
}

func (s *Server) send(response any) error {
	if err := s.enc.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
