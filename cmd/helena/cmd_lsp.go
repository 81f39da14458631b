package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/helena-lang/helena/config"
	"github.com/helena-lang/helena/lsp"
)

const version = "0.1.0"

func newLSPCmd() *cobra.Command {
	var configPath string
	var verbosity int

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			server := lsp.NewServer(version, cfg.Generator())
			return server.RunStdio()
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a helena.yaml config file")
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	return cmd
}
