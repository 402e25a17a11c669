package driver

import (
	"encoding/json"
	"testing"

	"github.com/ysulyma/stencil/internal/meta"
	"github.com/ysulyma/stencil/internal/project"
	"github.com/ysulyma/stencil/internal/source"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}

	key := project.DigestOf([]byte("todo-list.stc"))
	payload := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        "todo-list.stc",
		ContentHash: project.DigestOf([]byte("class TodoList {}")),
		Components: []meta.ComponentMeta{
			{ClassName: "TodoList", Tag: "todo-list"},
		},
	}
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got DiskPayload
	ok, err := cache.Get(key, &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if got.Path != payload.Path || got.ContentHash != payload.ContentHash {
		t.Errorf("payload = %+v", got)
	}
	if len(got.Components) != 1 || got.Components[0].ClassName != "TodoList" {
		t.Errorf("components = %+v", got.Components)
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}

	var got DiskPayload
	ok, err := cache.Get(project.DigestOf([]byte("absent")), &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("expected a miss for an unknown key")
	}
}

func TestNilDiskCacheIsInert(t *testing.T) {
	var cache *DiskCache

	if err := cache.Put(project.Digest{}, &DiskPayload{}); err != nil {
		t.Errorf("Put on nil cache: %v", err)
	}
	ok, err := cache.Get(project.Digest{}, &DiskPayload{})
	if ok || err != nil {
		t.Errorf("Get on nil cache = %v, %v", ok, err)
	}
	if err := cache.DropAll(); err != nil {
		t.Errorf("DropAll on nil cache: %v", err)
	}
}

func TestCompileFileUsesCache(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}

	dir, path := writeTempSource(t, "todo-list.stc", todoListSource)
	opts := Options{Cache: cache}

	first := CompileFile(source.NewFileSetWithBase(dir), path, opts)
	if first.FromCache {
		t.Fatal("first compile hit an empty cache")
	}
	if first.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %d", first.Bag.Len())
	}

	// A fresh file set assigns fresh IDs, so the restore path has to
	// rebind everything it returns.
	second := CompileFile(source.NewFileSetWithBase(dir), path, opts)
	if !second.FromCache {
		t.Fatal("second compile should restore from cache")
	}
	if second.Builder != nil {
		t.Error("cache hits carry no AST builder")
	}

	// The restored metadata must render identically to the fresh one.
	fresh, err := json.Marshal(first.Components)
	if err != nil {
		t.Fatalf("marshal fresh components: %v", err)
	}
	restored, err := json.Marshal(second.Components)
	if err != nil {
		t.Fatalf("marshal restored components: %v", err)
	}
	if string(fresh) != string(restored) {
		t.Errorf("components diverged:\nfresh:    %s\nrestored: %s", fresh, restored)
	}
}

func TestCompileFileCacheRebindsDiagnostics(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}

	src := `
@Component({ tag: "oops" })
class Oops {
  @Event() Ready: EventEmitter<void>;
}
`
	dir, path := writeTempSource(t, "oops.stc", src)
	opts := Options{Cache: cache}

	first := CompileFile(source.NewFileSetWithBase(dir), path, opts)
	if first.Bag.Len() == 0 {
		t.Fatal("expected a naming diagnostic")
	}

	fileSet := source.NewFileSetWithBase(dir)
	// Occupy an ID so the cached spans cannot match by accident.
	fileSet.AddVirtual("pad.stc", nil)

	second := CompileFile(fileSet, path, opts)
	if !second.FromCache {
		t.Fatal("second compile should restore from cache")
	}
	if second.Bag.Len() != first.Bag.Len() {
		t.Fatalf("diagnostics = %d, want %d", second.Bag.Len(), first.Bag.Len())
	}
	for _, d := range second.Bag.Items() {
		if d.Primary.File != second.FileID {
			t.Errorf("diagnostic %s still points at file %d, want %d", d.Code.ID(), d.Primary.File, second.FileID)
		}
		for _, f := range d.Fixes {
			for _, e := range f.Edits {
				if e.Span.File != second.FileID {
					t.Errorf("fix edit points at file %d, want %d", e.Span.File, second.FileID)
				}
			}
		}
	}
}

func TestDiskCacheDropAll(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}

	key := project.DigestOf([]byte("entry"))
	if err := cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion, Path: "entry.stc"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}

	var got DiskPayload
	ok, err := cache.Get(key, &got)
	if err != nil {
		t.Fatalf("Get after DropAll: %v", err)
	}
	if ok {
		t.Error("cache still serves entries after DropAll")
	}
}
