// Package emit assembles build artifacts: the JSON component manifest
// and the compiled module text for each source file.
package emit

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/ysulyma/stencil/internal/meta"
)

// SchemaVersion identifies the manifest layout. Bump on any change to
// the serialized shape.
const SchemaVersion = 1

// FileArtifact is the compiled outcome of one source file.
type FileArtifact struct {
	// Path is the source path relative to the project root.
	Path       string               `json:"path"`
	Components []meta.ComponentMeta `json:"components"`
}

// Manifest is the machine-readable description of every component a
// build produced.
type Manifest struct {
	Schema    int            `json:"schema"`
	Generator string         `json:"generator"`
	Files     []FileArtifact `json:"files"`
}

// BuildManifest assembles a manifest from per-file artifacts. Files
// that produced no components are dropped, and the rest are ordered by
// path so the output does not depend on compile order.
func BuildManifest(generator string, files []FileArtifact) Manifest {
	kept := make([]FileArtifact, 0, len(files))
	for _, f := range files {
		if len(f.Components) == 0 {
			continue
		}
		kept = append(kept, f)
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Path < kept[j].Path
	})
	return Manifest{
		Schema:    SchemaVersion,
		Generator: generator,
		Files:     kept,
	}
}

// ComponentCount returns the number of components across all files.
func (m Manifest) ComponentCount() int {
	n := 0
	for _, f := range m.Files {
		n += len(f.Components)
	}
	return n
}

// WriteJSON renders the manifest as indented JSON.
func (m Manifest) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}
