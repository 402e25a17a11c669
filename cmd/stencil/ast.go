package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ysulyma/stencil/internal/diagfmt"
	"github.com/ysulyma/stencil/internal/driver"
)

var astCmd = &cobra.Command{
	Use:   "ast [flags] file.stc",
	Short: "Parse a component source file and output its AST",
	Long:  `Ast parses a component source file and prints the resulting syntax tree without running semantic checks`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAST,
}

func init() {
	astCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runAST(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if st.IsDir() {
		return fmt.Errorf("ast expects a single file; use 'stencil check' for directories")
	}

	result, err := driver.Parse(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Context: 2,
		})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatASTPretty(os.Stdout, result.Builder, result.FileID, result.FileSet)
	case "json":
		return diagfmt.FormatASTJSON(os.Stdout, result.Builder, result.FileID)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
