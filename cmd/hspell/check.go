package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/typocheck/hunspellgo/pkg/hunspell"
)

// newCheckCmd implements Hunspell's classic pipe mode: read words from
// stdin, one per line, and report `*` for correct or
// `& word N 0: s1, s2, ...` for incorrect.
func newCheckCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "check <dic-dir>",
		Short: "check words read from stdin, Hunspell pipe-mode style",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := openDictionary(args[0])
			if err != nil {
				return err
			}
			return runCheckLoop(dict, os.Stdin, os.Stdout, limit)
		},
	}
	cmd.Flags().IntVar(&limit, "max", 15, "maximum suggestions to report per misspelling")
	return cmd
}

func runCheckLoop(dict *hunspell.Dictionary, in *os.File, out *os.File, limit int) error {
	scanner := bufio.NewScanner(in)
	w := bufio.NewWriter(out)
	defer w.Flush()

	for scanner.Scan() {
		word := scanner.Text()
		if word == "" {
			continue
		}
		if dict.Check(word) {
			fmt.Fprintln(w, "*")
			continue
		}
		suggestions := dict.Suggest(word)
		reported := suggestions
		if limit > 0 && len(reported) > limit {
			reported = reported[:limit]
		}
		fmt.Fprintf(w, "& %s %d 0:", word, len(reported))
		for i, s := range reported {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, " %s", s)
		}
		fmt.Fprintln(w)
	}
	return scanner.Err()
}
