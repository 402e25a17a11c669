// Package project locates and loads the stencil.toml manifest that
// marks a component project root.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file that marks a project root.
const ManifestName = "stencil.toml"

// Manifest is a loaded project manifest with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the TOML layout of stencil.toml.
type Config struct {
	Package PackageConfig `toml:"package"`
	Build   BuildConfig   `toml:"build"`
}

// PackageConfig is the required [package] section.
type PackageConfig struct {
	Name string `toml:"name"`
}

// BuildConfig is the optional [build] section. Src and Out are
// relative to the project root.
type BuildConfig struct {
	Src string `toml:"src"`
	Out string `toml:"out"`
}

const (
	defaultSrcDir = "src"
	defaultOutDir = "dist"
)

// FindManifest walks up from startDir to locate stencil.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// FindRoot returns the directory containing stencil.toml, if any.
func FindRoot(startDir string) (root string, ok bool, err error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return "", ok, err
	}
	return filepath.Dir(manifestPath), true, nil
}

// Load searches upward from startDir and loads the first manifest
// found. ok is false when no manifest exists on the path to the
// filesystem root.
func Load(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// LoadConfig parses and validates one manifest file. [package].name is
// required; [build] falls back to src/ and dist/.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if meta.IsDefined("build", "src") && strings.TrimSpace(cfg.Build.Src) == "" {
		return Config{}, fmt.Errorf("%s: [build].src must not be blank", path)
	}
	if meta.IsDefined("build", "out") && strings.TrimSpace(cfg.Build.Out) == "" {
		return Config{}, fmt.Errorf("%s: [build].out must not be blank", path)
	}
	if cfg.Build.Src == "" {
		cfg.Build.Src = defaultSrcDir
	}
	if cfg.Build.Out == "" {
		cfg.Build.Out = defaultOutDir
	}
	return cfg, nil
}

// SourceDir returns the absolute source directory of the project.
func (m *Manifest) SourceDir() string {
	return filepath.Join(m.Root, filepath.FromSlash(m.Config.Build.Src))
}

// OutDir returns the absolute artifact directory of the project.
func (m *Manifest) OutDir() string {
	return filepath.Join(m.Root, filepath.FromSlash(m.Config.Build.Out))
}
