package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/diagfmt"
	"github.com/ysulyma/stencil/internal/driver"
	"github.com/ysulyma/stencil/internal/observ"
	"github.com/ysulyma/stencil/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.stc|directory>",
	Short: "Check source files and report diagnostics",
	Long:  `Check finds decorator, naming, and payload type issues in a component source file or in all *.stc files within a directory.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	checkCmd.Flags().Bool("preview", false, "show patched source previews with suggestions")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	checkPath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return fmt.Errorf("failed to get suggest flag: %w", err)
	}
	preview, err := cmd.Flags().GetBool("preview")
	if err != nil {
		return fmt.Errorf("failed to get preview flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}

	st, err := os.Stat(checkPath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	showFixes := suggest || preview
	prettyOpts := diagfmt.PrettyOpts{
		Color:       useColor(cmd, os.Stdout),
		Context:     2,
		PathMode:    pathMode,
		ShowNotes:   withNotes,
		ShowFixes:   showFixes,
		ShowPreview: preview,
	}
	jsonOpts := diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         pathMode,
		IncludeNotes:     withNotes,
		IncludeFixes:     showFixes,
		IncludePreviews:  preview,
	}
	opts := driver.Options{MaxDiagnostics: maxDiagnostics}

	timer := observ.NewTimer()
	var hasErrors bool

	if !st.IsDir() {
		hasErrors, err = checkFile(checkPath, format, opts, timer, prettyOpts, jsonOpts, withNotes)
	} else {
		var jobs int
		jobs, err = cmd.Flags().GetInt("jobs")
		if err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
		hasErrors, err = checkDir(cmd, checkPath, format, jobs, opts, timer, prettyOpts, jsonOpts, withNotes, fullPath)
	}
	if err != nil {
		return err
	}

	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	if hasErrors {
		// Diagnostics are already printed.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

func checkFile(path, format string, opts driver.Options, timer *observ.Timer, prettyOpts diagfmt.PrettyOpts, jsonOpts diagfmt.JSONOpts, withNotes bool) (bool, error) {
	fileSet := source.NewFileSetWithBase(filepath.Dir(path))
	idx := timer.Begin("compile")
	result := driver.CompileFile(fileSet, path, opts)
	timer.End(idx, filepath.Base(path))

	switch format {
	case "pretty":
		diagfmt.Pretty(os.Stdout, result.Bag, fileSet, prettyOpts)
	case "short":
		output := diag.FormatGoldenDiagnostics(result.Bag.Items(), fileSet, withNotes)
		if output != "" {
			fmt.Fprintln(os.Stdout, output)
		}
	case "json":
		if err := diagfmt.JSON(os.Stdout, result.Bag, fileSet, jsonOpts); err != nil {
			return false, fmt.Errorf("failed to format diagnostics: %w", err)
		}
	default:
		return false, fmt.Errorf("unknown format: %s", format)
	}
	return result.Bag.HasErrors(), nil
}

func checkDir(cmd *cobra.Command, dir, format string, jobs int, opts driver.Options, timer *observ.Timer, prettyOpts diagfmt.PrettyOpts, jsonOpts diagfmt.JSONOpts, withNotes, fullPath bool) (bool, error) {
	idx := timer.Begin("compile")
	fs, results, err := driver.CompileDir(cmd.Context(), dir, jobs, opts)
	timer.End(idx, fmt.Sprintf("%d files", len(results)))
	if err != nil {
		return false, fmt.Errorf("check failed: %w", err)
	}

	hasErrors := false
	for _, r := range results {
		if r.Bag.HasErrors() {
			hasErrors = true
			break
		}
	}

	switch format {
	case "short":
		merged := driver.MergeBags(results, opts.MaxDiagnostics)
		output := diag.FormatGoldenDiagnostics(merged.Items(), fs, withNotes)
		if output != "" {
			fmt.Fprintln(os.Stdout, output)
		}
	case "pretty":
		for i, r := range results {
			if i > 0 {
				fmt.Fprintln(os.Stdout)
			}
			fmt.Fprintf(os.Stdout, "== %s ==\n", checkDisplayPath(fs, r, fullPath))
			diagfmt.Pretty(os.Stdout, r.Bag, fs, prettyOpts)
		}
	case "json":
		output := make(map[string]diagfmt.DiagnosticsOutput, len(results))
		for _, r := range results {
			output[checkDisplayPath(fs, r, fullPath)] = diagfmt.BuildDiagnosticsOutput(r.Bag, fs, jsonOpts)
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return false, fmt.Errorf("failed to encode diagnostics output: %w", err)
		}
	default:
		return false, fmt.Errorf("unknown format: %s", format)
	}
	return hasErrors, nil
}

// checkDisplayPath picks the path shown for one result. Files that
// failed to load never made it into the file set, so their result path
// is used as-is.
func checkDisplayPath(fs *source.FileSet, r driver.FileResult, fullPath bool) string {
	if file, ok := fs.GetByPath(r.Path); ok {
		mode := "auto"
		if fullPath {
			mode = "absolute"
		}
		return file.FormatPath(mode, fs.BaseDir())
	}
	if fullPath {
		if abs, err := filepath.Abs(r.Path); err == nil {
			return filepath.ToSlash(abs)
		}
	}
	return r.Path
}
