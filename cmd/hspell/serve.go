package main

import (
	"github.com/spf13/cobra"

	"github.com/typocheck/hunspellgo/pkg/server"
)

// newServeCmd starts the msgpack IPC server for editor integration.
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve <dic-dir>",
		Short: "run a msgpack IPC server over stdin/stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := openDictionary(args[0])
			if err != nil {
				return err
			}
			cfg := loadConfig()
			srv := server.NewServer(dict, cfg.Server.MaxSuggestions)
			return srv.Start()
		},
	}
	return cmd
}
