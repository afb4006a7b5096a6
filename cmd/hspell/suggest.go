package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	checkGlyph      = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true).Render("✓")
	crossGlyph      = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true).Render("✗")
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// newSuggestCmd implements a one-shot suggestion lookup for a single word.
// Output is styled with lipgloss on a TTY; --plain or a non-TTY stdout
// produces the classic unstyled pipe-mode line instead.
func newSuggestCmd() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "suggest <dic-dir> <word>",
		Short: "print correction candidates for a single word",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := openDictionary(args[0])
			if err != nil {
				return err
			}
			word := args[1]
			styled := !plain && isatty.IsTerminal(os.Stdout.Fd())

			if dict.Check(word) {
				if styled {
					fmt.Printf("%s %s\n", checkGlyph, word)
				} else {
					fmt.Println("*")
				}
				return nil
			}

			suggestions := dict.Suggest(word)
			if len(suggestions) == 0 {
				if styled {
					fmt.Printf("%s %s (no suggestions)\n", crossGlyph, word)
				} else {
					fmt.Printf("& %s 0 0:\n", word)
				}
				return nil
			}

			if styled {
				rendered := make([]string, len(suggestions))
				for i, s := range suggestions {
					rendered[i] = suggestionStyle.Render(s)
				}
				fmt.Printf("%s %s -> %s\n", crossGlyph, word, strings.Join(rendered, ", "))
			} else {
				fmt.Printf("& %s %d 0: %s\n", word, len(suggestions), strings.Join(suggestions, ", "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "force classic unstyled output even on a TTY")
	return cmd
}
