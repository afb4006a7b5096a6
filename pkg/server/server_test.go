package server

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/typocheck/hunspellgo/internal/logger"
	"github.com/typocheck/hunspellgo/pkg/hunspell"
)

const testAff = `SET UTF-8
TRY esianrtolcdugmphbyfvkwz
`

const testDic = `2
cat
dog
`

// buildServer wires a Server to an in-memory buffer instead of stdin/stdout
// so handleRequest can be exercised without a subprocess.
func buildServer(t *testing.T) (*Server, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	affPath := filepath.Join(dir, "test.aff")
	dicPath := filepath.Join(dir, "test.dic")
	if err := os.WriteFile(affPath, []byte(testAff), 0644); err != nil {
		t.Fatalf("writing aff: %v", err)
	}
	if err := os.WriteFile(dicPath, []byte(testDic), 0644); err != nil {
		t.Fatalf("writing dic: %v", err)
	}
	dict, err := hunspell.Open(affPath, dicPath)
	if err != nil {
		t.Fatalf("hunspell.Open: %v", err)
	}

	out := &bytes.Buffer{}
	return &Server{
		dict:    dict,
		limit:   5,
		encoder: msgpack.NewEncoder(out),
		log:     logger.New("server-test"),
	}, out
}

func TestHandleRequestCheckOp(t *testing.T) {
	s, out := buildServer(t)
	s.handleRequest(CheckRequest{ID: "1", Op: "check", Word: "cat"})

	var resp CheckResponse
	if err := msgpack.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !resp.Correct {
		t.Errorf("Correct = false, want true for known word")
	}
}

func TestHandleRequestSuggestOpOnKnownWord(t *testing.T) {
	s, out := buildServer(t)
	s.handleRequest(CheckRequest{ID: "2", Op: "suggest", Word: "cat"})

	var resp CheckResponse
	if err := msgpack.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !resp.Correct {
		t.Errorf("Correct = false, want true for known word")
	}
}

func TestHandleRequestSuggestOpOnMisspelling(t *testing.T) {
	s, out := buildServer(t)
	s.handleRequest(CheckRequest{ID: "3", Op: "suggest", Word: "caat"})

	var resp CheckResponse
	if err := msgpack.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if resp.Correct {
		t.Error("Correct = true, want false for misspelling")
	}
	found := false
	for _, sug := range resp.Suggestions {
		if sug == "cat" {
			found = true
		}
	}
	if !found {
		t.Errorf("Suggestions = %v, expected to include %q", resp.Suggestions, "cat")
	}
}

func TestHandleRequestUnknownOp(t *testing.T) {
	s, out := buildServer(t)
	s.handleRequest(CheckRequest{ID: "4", Op: "bogus", Word: "cat"})

	var resp ErrorResponse
	if err := msgpack.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if resp.Code != 400 {
		t.Errorf("Code = %d, want 400", resp.Code)
	}
}

func TestHandleRequestHealthOp(t *testing.T) {
	s, out := buildServer(t)
	s.handleRequest(CheckRequest{ID: "5", Op: "health"})

	var status map[string]string
	if err := msgpack.Unmarshal(out.Bytes(), &status); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if status["status"] != "ok" {
		t.Errorf("status = %q, want %q", status["status"], "ok")
	}
}
