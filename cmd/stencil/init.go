package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ysulyma/stencil/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new component project",
	Long: `Initialize a new component project by creating a project manifest
(stencil.toml) and an example component under src/. If [path|name] is omitted,
initializes the current directory. If a non-existing name is provided, a
directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "stencil-project"
	}

	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	if err := os.WriteFile(manifestPath, []byte(buildDefaultManifest(name)), 0o600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	srcDir := filepath.Join(target, "src")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return fmt.Errorf("failed to create src directory: %w", err)
	}
	examplePath := filepath.Join(srcDir, "my-component.stc")
	createdExample := false
	if _, err := os.Stat(examplePath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(examplePath, []byte(defaultComponent()), 0o600); err != nil {
			return fmt.Errorf("failed to write example component: %w", err)
		}
		createdExample = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized component project in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - %s\n", project.ManifestName)
	if createdExample {
		fmt.Fprintf(os.Stdout, "  - src/my-component.stc\n")
	} else {
		fmt.Fprintf(os.Stdout, "  - src/my-component.stc (existing)\n")
	}
	return nil
}

// buildDefaultManifest returns a minimal TOML manifest used as the
// project marker.
func buildDefaultManifest(name string) string {
	return fmt.Sprintf(`# Component project manifest
[package]
name = "%s"

[build]
src = "src"
out = "dist"
`, name)
}

// defaultComponent returns the placeholder component written by init.
func defaultComponent() string {
	return `/** A starter component. Rename the tag before shipping. */
@Component({ tag: "my-component" })
class MyComponent {
  /** Fired when the component has rendered. */
  @Event() ready: EventEmitter<void>;

  @Prop() label: string = "hello";
}
`
}
