package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10

// addCorpusSeeds loads the baseline seeds plus every *.stc file under
// the local testdata corpus.
func addCorpusSeeds(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("class Empty {}\n"))
	f.Add([]byte(`@Component({ tag: "todo-list" })
class TodoList {
  @Event() todoCompleted: EventEmitter<string>;
  @Prop() label: string = "todos";
}
`))
	f.Add([]byte(`@Component({ tag: "x" }) class X { @Event({ eventName: " spaced " , bubbles: false }) e: EventEmitter<void>; }`))
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := "testdata"
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".stc" {
			return nil
		}
		// #nosec G304 -- path comes from the local testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
