// Package cli implements an interactive REPL that checks words typed on
// stdin against a loaded dictionary. No hspell subcommand starts it.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"

	"github.com/typocheck/hunspellgo/internal/logger"
	"github.com/typocheck/hunspellgo/pkg/hunspell"
)

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	suggestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	promptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// InputHandler reads words from stdin, checks them against a loaded
// dictionary, and prints suggestions for anything misspelled.
type InputHandler struct {
	dict         *hunspell.Dictionary
	suggestLimit int
	requestCount int
	log          *charmlog.Logger
}

// NewInputHandler builds an InputHandler over an already-loaded dictionary.
func NewInputHandler(dict *hunspell.Dictionary, suggestLimit int) *InputHandler {
	return &InputHandler{
		dict:         dict,
		suggestLimit: suggestLimit,
		log:          logger.New("cli"),
	}
}

// Start begins the interactive loop: prompt, read a line, check it,
// repeat until stdin closes or Ctrl+C is pressed.
func (h *InputHandler) Start() error {
	h.log.Print("hspell interactive [BETA]")
	reader := bufio.NewReader(os.Stdin)
	h.log.Print("type a word and press Enter to check it (Ctrl+C to exit):")

	for {
		fmt.Print(promptStyle.Render("> "))
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleLine(line)
	}
}

// handleLine checks every whitespace-separated word on the line.
func (h *InputHandler) handleLine(line string) {
	for _, word := range strings.Fields(line) {
		h.requestCount++
		h.checkWord(word)
	}
}

func (h *InputHandler) checkWord(word string) {
	start := time.Now()
	ok := h.dict.Check(word)
	elapsed := time.Since(start)

	if ok {
		h.log.Printf("%s %s", correctStyle.Render("✓"), word)
		return
	}

	suggestions := h.dict.Suggest(word)
	if len(suggestions) > h.suggestLimit {
		suggestions = suggestions[:h.suggestLimit]
	}
	h.log.Debugf("lookup took %v for '%s'", elapsed, word)

	if len(suggestions) == 0 {
		h.log.Printf("%s %s (no suggestions)", incorrectStyle.Render("✗"), word)
		return
	}

	rendered := make([]string, len(suggestions))
	for i, s := range suggestions {
		rendered[i] = suggestStyle.Render(s)
	}
	h.log.Printf("%s %s -> %s", incorrectStyle.Render("✗"), word, strings.Join(rendered, ", "))
}
