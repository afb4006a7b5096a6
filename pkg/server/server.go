package server

import (
	"fmt"
	"io"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/typocheck/hunspellgo/internal/logger"
	"github.com/typocheck/hunspellgo/pkg/hunspell"
)

// Server handles msgpack IPC requests against a loaded Dictionary.
type Server struct {
	dict    *hunspell.Dictionary
	limit   int
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
	log     *charmlog.Logger
}

// NewServer builds a Server reading requests from stdin and writing
// responses to stdout, capping suggestion lists at limit entries.
func NewServer(dict *hunspell.Dictionary, limit int) *Server {
	return &Server{
		dict:    dict,
		limit:   limit,
		decoder: msgpack.NewDecoder(os.Stdin),
		encoder: msgpack.NewEncoder(os.Stdout),
		log:     logger.New("server"),
	}
}

// Start reads requests until stdin closes, processing each in turn.
func (s *Server) Start() error {
	s.log.Debug("starting spellcheck server")

	for {
		var req CheckRequest
		if err := s.decoder.Decode(&req); err != nil {
			if err == io.EOF {
				return nil
			}
			s.log.Errorf("decoding request: %v", err)
			s.sendError("", "invalid request", 400)
			continue
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req CheckRequest) {
	switch req.Op {
	case "check", "":
		s.handleCheck(req)
	case "suggest":
		s.handleSuggest(req)
	case "health":
		s.send(map[string]string{"status": "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown op: %s", req.Op), 400)
	}
}

// handleCheck reports whether Word is correct, including suggestions only
// when it isn't.
func (s *Server) handleCheck(req CheckRequest) {
	if req.Word == "" {
		s.sendError(req.ID, "missing 'word' field", 400)
		return
	}

	start := time.Now()
	correct := s.dict.Check(req.Word)
	var suggestions []string
	if !correct {
		suggestions = s.dict.Suggest(req.Word)
		if len(suggestions) > s.limit {
			suggestions = suggestions[:s.limit]
		}
	}
	elapsed := time.Since(start)

	s.send(CheckResponse{
		ID:          req.ID,
		Correct:     correct,
		Suggestions: suggestions,
		TimeTaken:   elapsed.Milliseconds(),
	})
}

// handleSuggest runs Suggest for Word whatever the check result. The
// dictionary's Suggest returns nothing for a correctly spelled word, so
// the response then carries no suggestions.
func (s *Server) handleSuggest(req CheckRequest) {
	if req.Word == "" {
		s.sendError(req.ID, "missing 'word' field", 400)
		return
	}

	start := time.Now()
	correct := s.dict.Check(req.Word)
	suggestions := s.dict.Suggest(req.Word)
	if len(suggestions) > s.limit {
		suggestions = suggestions[:s.limit]
	}
	elapsed := time.Since(start)

	s.send(CheckResponse{
		ID:          req.ID,
		Correct:     correct,
		Suggestions: suggestions,
		TimeTaken:   elapsed.Milliseconds(),
	})
}

func (s *Server) send(v interface{}) {
	if err := s.encoder.Encode(v); err != nil {
		s.log.Errorf("encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
