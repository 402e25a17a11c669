package driver

import "time"

// FileStatus reports whether a file compile started or finished.
type FileStatus int

const (
	// FileStart indicates that compilation of a file has begun.
	FileStart FileStatus = iota
	FileEnd
)

// FileEvent describes one file passing through a directory compile.
type FileEvent struct {
	Path      string
	Status    FileStatus
	FromCache bool
	// Failed is set on FileEnd when the file produced error diagnostics.
	Failed  bool
	Elapsed time.Duration
}

// FileObserver receives per-file events during CompileDir and
// CompileFiles. Callbacks arrive from worker goroutines, so
// implementations must be safe for concurrent use.
type FileObserver func(FileEvent)
