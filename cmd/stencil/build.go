package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ysulyma/stencil/internal/buildpipeline"
	"github.com/ysulyma/stencil/internal/diagfmt"
	"github.com/ysulyma/stencil/internal/driver"
	"github.com/ysulyma/stencil/internal/project"
	"github.com/ysulyma/stencil/internal/types"
)

const noManifestMessage = "no stencil.toml found\nrun 'stencil init' to create a project, or pass its directory, e.g.:\n  stencil build path/to/project"

var buildCmd = &cobra.Command{
	Use:   "build [flags] [path]",
	Short: "Build a component project",
	Long:  "Build a component project: compile every source file under the project's src directory and write the component manifest plus compiled modules to its out directory.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	buildCmd.Flags().String("ui", "auto", "interactive progress (auto|on|off)")
	buildCmd.Flags().String("out", "", "override the output directory")
	buildCmd.Flags().Bool("no-cache", false, "disable the incremental compile cache")
}

func runBuild(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	outOverride, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	startDir := "."
	if len(args) > 0 && args[0] != "" {
		startDir = args[0]
	}
	manifest, found, err := project.Load(startDir)
	if err != nil {
		return err
	}
	if !found {
		return errors.New(noManifestMessage)
	}

	srcDir := manifest.SourceDir()
	if st, statErr := os.Stat(srcDir); statErr != nil || !st.IsDir() {
		return fmt.Errorf("%s: source directory %q does not exist", manifest.Path, manifest.Config.Build.Src)
	}
	outDir := manifest.OutDir()
	if outOverride != "" {
		outDir = outOverride
	}

	var cache *driver.DiskCache
	if !noCache {
		cache, err = driver.OpenDiskCache("stencil")
		if err != nil {
			// A missing cache slows builds down but never fails them.
			fmt.Fprintf(os.Stderr, "warning: compile cache disabled: %v\n", err)
			cache = nil
		}
	}

	interner := types.NewInterner()
	req := buildpipeline.BuildRequest{
		CompileRequest: buildpipeline.CompileRequest{
			SourceDir:      srcDir,
			Jobs:           jobs,
			MaxDiagnostics: maxDiagnostics,
			Types:          interner,
			Cache:          cache,
		},
		OutDir: outDir,
	}

	// Discovery errors surface from the pipeline; here an empty list
	// just skips the TUI.
	files, _ := driver.DiscoverFiles(srcDir)
	displayFiles := buildpipeline.DisplayPaths(files, srcDir)

	var res buildpipeline.BuildResult
	if shouldUseTUI(uiModeValue) && !quiet && len(displayFiles) > 0 {
		res, err = runBuildWithUI(cmd.Context(), "stencil build", displayFiles, &req)
	} else {
		res, err = buildpipeline.Build(cmd.Context(), &req)
	}

	if bag := res.Compile.Bag; bag != nil && bag.Len() > 0 {
		bag.Sort()
		diagfmt.Pretty(os.Stderr, bag, res.Compile.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			Context:   2,
			ShowNotes: true,
			ShowFixes: true,
		})
	}
	if err != nil {
		if errors.Is(err, buildpipeline.ErrDiagnostics) {
			fmt.Fprintln(os.Stderr, "build failed")
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return fmt.Errorf("")
		}
		return err
	}

	if !quiet {
		printBuildSummary(os.Stdout, &res, manifest.Root)
	}
	if showTimings {
		printStageTimings(os.Stdout, res.Timings)
	}
	return nil
}

func printBuildSummary(out *os.File, res *buildpipeline.BuildResult, root string) {
	cached := 0
	for _, fileRes := range res.Compile.Results {
		if fileRes.FromCache {
			cached++
		}
	}
	line := fmt.Sprintf("compiled %d components from %d files", res.Manifest.ComponentCount(), len(res.Compile.Results))
	if cached > 0 {
		line += fmt.Sprintf(" (%d cached)", cached)
	}
	fmt.Fprintln(out, line)
	fmt.Fprintf(out, "wrote %s\n", formatPathForOutput(root, res.ManifestPath))
	for _, path := range res.ModulePaths {
		fmt.Fprintf(out, "wrote %s\n", formatPathForOutput(root, path))
	}
}

func formatPathForOutput(root, path string) string {
	if root == "" || path == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	if strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}
