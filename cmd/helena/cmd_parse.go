package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/helena-lang/helena/ast"
	"github.com/helena-lang/helena/config"
	"github.com/helena-lang/helena/format"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var configPath string
	var watch bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a Helena source file and dump its AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if watch {
				return watchAndParse(filename, outputFormat, cfg.Generator())
			}
			return parseFile(filename, outputFormat, cfg.Generator())
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a helena.yaml config file")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-parse whenever the file changes")

	return cmd
}

func parseFile(filename, outputFormat string, generator ast.Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read source file: %w", err)
	}

	roots, err := ast.Generate(string(data), generator)
	if err != nil {
		return fmt.Errorf("generate ast: %w", err)
	}

	var encoder format.Encoder
	switch outputFormat {
	case "tree":
		encoder = format.NewTreeEncoder(os.Stdout)
	case "json":
		encoder = format.NewASTJSONEncoder(os.Stdout)
	default:
		return fmt.Errorf("unknown format: %s", outputFormat)
	}

	for _, root := range roots {
		if err := encoder.Encode(root); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	}
	return nil
}
