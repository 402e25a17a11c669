// Package buildpipeline orchestrates full project builds: discovery,
// parallel compilation, cross-file validation, and artifact emission,
// with progress events for interactive frontends.
package buildpipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ysulyma/stencil/internal/driver"
	"github.com/ysulyma/stencil/internal/emit"
	"github.com/ysulyma/stencil/internal/version"
)

// ManifestFileName is the manifest artifact inside the out dir.
const ManifestFileName = "components.json"

// CompiledExt replaces driver.SourceExt on emitted module files.
const CompiledExt = ".js"

// ErrDiagnostics is returned by Build when compilation produced error
// diagnostics. The caller renders CompileResult.Bag; the error itself
// carries no detail.
var ErrDiagnostics = errors.New("build failed with diagnostics")

// BuildRequest configures output generation for a compilation.
type BuildRequest struct {
	CompileRequest
	OutDir string
	// Generator names the producing tool inside the manifest. Defaults
	// to the running CLI version.
	Generator string
}

// BuildResult captures build artefacts and timings.
type BuildResult struct {
	Compile      CompileResult
	Manifest     emit.Manifest
	ManifestPath string
	// ModulePaths lists every compiled module written, in output order.
	ModulePaths []string
	Timings     Timings
}

// Build compiles the project and writes the component manifest plus one
// compiled module per source file that declared components. Files
// without components produce no module, and an empty project still
// produces a manifest.
func Build(ctx context.Context, req *BuildRequest) (BuildResult, error) {
	var result BuildResult
	if req == nil {
		return result, fmt.Errorf("missing build request")
	}
	reqCopy := *req
	req = &reqCopy

	if req.OutDir == "" {
		req.OutDir = "dist"
	}
	if req.Generator == "" {
		req.Generator = version.Generator()
	}

	compileRes, err := Compile(ctx, &req.CompileRequest)
	result.Compile = compileRes
	result.Timings = compileRes.Timings
	if err != nil {
		return result, err
	}

	CheckTagCollisions(&result.Compile)
	if result.Compile.HasErrors() {
		emitStage(req.Progress, nil, StageEmit, StatusError, ErrDiagnostics, 0)
		return result, ErrDiagnostics
	}

	emitStart := time.Now()
	emitStage(req.Progress, nil, StageEmit, StatusWorking, nil, 0)

	artifacts := make([]emit.FileArtifact, 0, len(compileRes.Results))
	for i, res := range compileRes.Results {
		path := res.Path
		if i < len(compileRes.Files) {
			path = compileRes.Files[i]
		}
		artifacts = append(artifacts, emit.FileArtifact{Path: path, Components: res.Components})
	}
	result.Manifest = emit.BuildManifest(req.Generator, artifacts)

	if err := os.MkdirAll(req.OutDir, 0o750); err != nil {
		err = fmt.Errorf("failed to create output dir: %w", err)
		emitStage(req.Progress, nil, StageEmit, StatusError, err, 0)
		return result, err
	}

	manifestPath := filepath.Join(req.OutDir, ManifestFileName)
	if err := writeManifest(manifestPath, result.Manifest); err != nil {
		emitStage(req.Progress, nil, StageEmit, StatusError, err, 0)
		return result, err
	}
	result.ManifestPath = manifestPath

	for _, artifact := range result.Manifest.Files {
		outPath := filepath.Join(req.OutDir, ModulePath(artifact.Path))
		if err := os.MkdirAll(filepath.Dir(outPath), 0o750); err != nil {
			err = fmt.Errorf("failed to create module dir: %w", err)
			emitStage(req.Progress, nil, StageEmit, StatusError, err, 0)
			return result, err
		}
		if err := os.WriteFile(outPath, []byte(emit.RenderModule(artifact)), 0o600); err != nil {
			err = fmt.Errorf("failed to write module %q: %w", outPath, err)
			emitStage(req.Progress, nil, StageEmit, StatusError, err, 0)
			return result, err
		}
		result.ModulePaths = append(result.ModulePaths, outPath)
		if req.Progress != nil {
			req.Progress.OnEvent(Event{File: artifact.Path, Stage: StageEmit, Status: StatusDone})
		}
	}

	result.Timings.Set(StageEmit, time.Since(emitStart))
	emitStage(req.Progress, nil, StageEmit, StatusDone, nil, result.Timings.Duration(StageEmit))
	return result, nil
}

func writeManifest(path string, manifest emit.Manifest) error {
	var buf bytes.Buffer
	if err := manifest.WriteJSON(&buf); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// ModulePath maps a display source path to its compiled artifact path
// relative to the out dir.
func ModulePath(displayPath string) string {
	path := filepath.FromSlash(displayPath)
	path = strings.TrimSuffix(path, driver.SourceExt)
	return path + CompiledExt
}
