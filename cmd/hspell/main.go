// Command hspell is a Hunspell-compatible spellchecker: classic pipe-mode
// checking, one-shot suggestion lookup, and an optional msgpack IPC server
// for editor integration.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/typocheck/hunspellgo/pkg/config"
	"github.com/typocheck/hunspellgo/pkg/hunspell"
)

var (
	configPath string
	debugMode  bool
)

func main() {
	root := &cobra.Command{
		Use:           "hspell",
		Short:         "Hunspell-compatible spellchecker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config.toml (default: platform config dir)")
	root.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "enable debug logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if debugMode {
			log.SetLevel(log.DebugLevel)
		}
	}

	root.AddCommand(newCheckCmd(), newSuggestCmd(), newServeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveDictPaths turns a dictionary base path (e.g. "dict/en_US", no
// extension) into its .aff and .dic file paths.
func resolveDictPaths(base string) (affPath, dicPath string) {
	return base + ".aff", base + ".dic"
}

func openDictionary(dicDir string) (*hunspell.Dictionary, error) {
	affPath, dicPath := resolveDictPaths(dicDir)
	return hunspell.Open(affPath, dicPath)
}

func loadConfig() *config.Config {
	cfg, _, err := config.LoadConfigWithPriority(configPath)
	if err != nil {
		log.Warnf("loading config: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}
