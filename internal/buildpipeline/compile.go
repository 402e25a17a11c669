package buildpipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/driver"
	"github.com/ysulyma/stencil/internal/source"
	"github.com/ysulyma/stencil/internal/types"
)

// CompileRequest configures the shared compilation pipeline.
type CompileRequest struct {
	SourceDir      string
	Jobs           int
	MaxDiagnostics int
	Types          *types.Interner
	Cache          *driver.DiskCache
	Progress       ProgressSink
}

// CompileResult captures compilation artefacts and stage timings.
type CompileResult struct {
	FileSet *source.FileSet
	Results []driver.FileResult
	// Files holds the display path of every discovered source file in
	// compile order; Results[i] belongs to Files[i].
	Files []string
	// Bag folds the per-file diagnostics in compile order.
	Bag     *diag.Bag
	Timings Timings
}

// Compile discovers and compiles every source file under SourceDir,
// reporting per-file progress to the configured sink. Diagnostics do
// not fail the compile; callers inspect Bag.
func Compile(ctx context.Context, req *CompileRequest) (CompileResult, error) {
	var result CompileResult
	if ctx == nil {
		ctx = context.Background()
	}
	if req == nil {
		return result, fmt.Errorf("missing compile request")
	}
	reqCopy := *req
	req = &reqCopy
	if req.SourceDir == "" {
		return result, fmt.Errorf("missing source directory")
	}
	if req.MaxDiagnostics <= 0 {
		req.MaxDiagnostics = 100
	}

	scanStart := time.Now()
	emitStage(req.Progress, nil, StageScan, StatusWorking, nil, 0)
	files, err := driver.DiscoverFiles(req.SourceDir)
	if err != nil {
		err = fmt.Errorf("failed to scan %q: %w", req.SourceDir, err)
		emitStage(req.Progress, nil, StageScan, StatusError, err, 0)
		return result, err
	}
	display := DisplayPaths(files, req.SourceDir)
	result.Files = display
	result.Timings.Set(StageScan, time.Since(scanStart))
	emitStage(req.Progress, nil, StageScan, StatusDone, nil, result.Timings.Duration(StageScan))

	emitQueued(req.Progress, display)
	compileStart := time.Now()
	emitStage(req.Progress, nil, StageCompile, StatusWorking, nil, 0)

	opts := driver.Options{
		MaxDiagnostics: req.MaxDiagnostics,
		Types:          req.Types,
		Cache:          req.Cache,
		Observer:       compileObserver(req.Progress, files, display),
	}
	fileSet, results, err := driver.CompileFiles(ctx, req.SourceDir, files, req.Jobs, opts)
	result.FileSet = fileSet
	result.Results = results
	if err != nil {
		emitStage(req.Progress, nil, StageCompile, StatusError, err, 0)
		return result, err
	}

	result.Bag = driver.MergeBags(results, req.MaxDiagnostics)
	result.Timings.Set(StageCompile, time.Since(compileStart))
	emitStage(req.Progress, nil, StageCompile, StatusDone, nil, result.Timings.Duration(StageCompile))
	return result, nil
}

// HasErrors reports whether any compiled file produced error
// diagnostics.
func (r CompileResult) HasErrors() bool {
	return r.Bag != nil && r.Bag.HasErrors()
}

// ComponentCount returns the number of components across all results.
func (r CompileResult) ComponentCount() int {
	n := 0
	for _, res := range r.Results {
		n += len(res.Components)
	}
	return n
}

// compileObserver adapts driver file events into progress events keyed
// by display path.
func compileObserver(sink ProgressSink, files, display []string) driver.FileObserver {
	if sink == nil {
		return nil
	}
	names := make(map[string]string, len(files))
	for i, file := range files {
		names[file] = display[i]
	}
	return func(ev driver.FileEvent) {
		name, ok := names[ev.Path]
		if !ok {
			name = ev.Path
		}
		out := Event{
			File:      name,
			Stage:     StageCompile,
			FromCache: ev.FromCache,
			Elapsed:   ev.Elapsed,
		}
		switch {
		case ev.Status == driver.FileStart:
			out.Status = StatusWorking
		case ev.Failed:
			out.Status = StatusError
		default:
			out.Status = StatusDone
		}
		sink.OnEvent(out)
	}
}
