package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ysulyma/stencil/internal/driver"
	"github.com/ysulyma/stencil/internal/project"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [path]",
	Short: "Remove build artifacts",
	Long:  "Remove the project's output directory. With --cache, also drop the shared compile cache.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClean,
}

func init() {
	cleanCmd.Flags().Bool("cache", false, "also drop the shared compile cache")
}

func runClean(cmd *cobra.Command, args []string) error {
	dropCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return err
	}

	baseDir := "."
	if len(args) > 0 && args[0] != "" {
		baseDir = args[0]
	}
	outDir, root, err := resolveCleanTarget(baseDir)
	if err != nil {
		return err
	}

	info, err := os.Stat(outDir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		fmt.Fprintln(os.Stdout, "output directory not found")
	case err != nil:
		return fmt.Errorf("failed to stat %q: %w", outDir, err)
	case !info.IsDir():
		return fmt.Errorf("%q is not a directory", outDir)
	default:
		if err := os.RemoveAll(outDir); err != nil {
			return fmt.Errorf("failed to remove %q: %w", outDir, err)
		}
		fmt.Fprintf(os.Stdout, "removed %s\n", formatPathForOutput(root, outDir))
	}

	if dropCache {
		cache, err := driver.OpenDiskCache("stencil")
		if err != nil {
			return fmt.Errorf("failed to open compile cache: %w", err)
		}
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to drop compile cache: %w", err)
		}
		fmt.Fprintln(os.Stdout, "dropped compile cache")
	}
	return nil
}

// resolveCleanTarget maps the argument to an output directory. Inside a
// project the manifest decides; outside one the default dist/ under the
// argument is assumed.
func resolveCleanTarget(base string) (outDir, root string, err error) {
	info, err := os.Stat(base)
	if err != nil {
		return "", "", fmt.Errorf("failed to stat %q: %w", base, err)
	}
	if !info.IsDir() {
		base = filepath.Dir(base)
	}
	manifest, ok, err := project.Load(base)
	if err != nil {
		return "", "", err
	}
	if ok {
		return manifest.OutDir(), manifest.Root, nil
	}
	abs, absErr := filepath.Abs(base)
	if absErr != nil {
		abs = base
	}
	return filepath.Join(abs, "dist"), abs, nil
}
