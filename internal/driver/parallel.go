package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/source"
)

// SourceExt is the extension of component source files.
const SourceExt = ".stc"

// DiscoverFiles returns the sorted list of all *.stc files under dir.
func DiscoverFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Sorted for a deterministic compile order.
	sort.Strings(files)
	return files, nil
}

// CompileDir compiles every *.stc file under dir, one goroutine per
// file. Results come back in discovery order regardless of completion
// order; jobs <= 0 means GOMAXPROCS.
func CompileDir(ctx context.Context, dir string, jobs int, opts Options) (*source.FileSet, []FileResult, error) {
	files, err := DiscoverFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	return CompileFiles(ctx, dir, files, jobs, opts)
}

// CompileFiles compiles an explicit file list with dir as the display
// base. Callers that already discovered the files use this to avoid a
// second directory walk.
func CompileFiles(ctx context.Context, dir string, files []string, jobs int, opts Options) (*source.FileSet, []FileResult, error) {
	opts = opts.withDefaults()

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Preload sequentially; FileSet is not safe for concurrent writes.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine owns one slot, so no mutex is needed.
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if opts.Observer != nil {
				opts.Observer(FileEvent{Path: path, Status: FileStart})
			}
			start := time.Now()

			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
				})
				results[i] = FileResult{Path: path, Bag: bag}
			} else {
				results[i] = compileLoaded(fileSet, fileIDs[path], path, opts)
			}

			if opts.Observer != nil {
				opts.Observer(FileEvent{
					Path:      path,
					Status:    FileEnd,
					FromCache: results[i].FromCache,
					Failed:    results[i].Bag.HasErrors(),
					Elapsed:   time.Since(start),
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}

	return fileSet, results, nil
}

// MergeBags folds per-file diagnostics into one bag in result order,
// so multi-file output stays deterministic.
func MergeBags(results []FileResult, max int) *diag.Bag {
	merged := diag.NewBag(max)
	for _, res := range results {
		merged.Merge(res.Bag)
	}
	return merged
}
