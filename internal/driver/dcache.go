package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/meta"
	"github.com/ysulyma/stencil/internal/project"
	"github.com/ysulyma/stencil/internal/source"
)

// diskCacheSchemaVersion invalidates stored payloads when the payload
// layout changes.
const diskCacheSchemaVersion uint16 = 1

// DiskCache persists per-file compile results keyed by content hash.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the serialized compile result of one source file.
// Diagnostic spans are stored with their original byte offsets; the
// key covers the content hash, so offsets stay valid on a hit.
type DiskPayload struct {
	Schema      uint16
	Path        string
	ContentHash project.Digest
	Components  []meta.ComponentMeta
	Diagnostics []diag.Diagnostic
	Broken      bool
}

// OpenDiskCache initializes a cache at the standard location:
// STENCIL_CACHE_DIR when set, otherwise the XDG cache directory.
func OpenDiskCache(app string) (*DiskCache, error) {
	if dir := os.Getenv("STENCIL_CACHE_DIR"); dir != "" {
		return OpenDiskCacheAt(dir)
	}
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt initializes a cache in an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Subdirectory keeps the cache root listable and easy to clear.
	return filepath.Join(c.dir, "files", hexKey+".mp")
}

// CacheKey derives the cache key for a file: the content hash chained
// with the payload schema, so changing either invalidates the entry.
func CacheKey(file *source.File) project.Digest {
	schema := project.DigestOf(fmt.Appendf(nil, "stencil-disk-cache-v%d", diskCacheSchemaVersion))
	return project.Combine(project.Digest(file.Hash), schema)
}

// Put serializes and writes a payload to the disk cache atomically.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	defer func() {
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, p); err != nil {
		return err
	}
	tmpName = ""
	return nil
}

// Get reads and deserializes a payload from the disk cache. ok is
// false on a clean miss.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		_ = f.Close()
	}()
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// restore rebuilds a FileResult from a cached payload. The stored
// spans carry the FileID of the original run, so every span is rebound
// to the current one.
func (c *DiskCache) restore(path string, fileID source.FileID, file *source.File, maxDiagnostics int) (FileResult, bool) {
	var payload DiskPayload
	ok, err := c.Get(CacheKey(file), &payload)
	if err != nil || !ok {
		return FileResult{}, false
	}
	if payload.Schema != diskCacheSchemaVersion {
		return FileResult{}, false
	}

	bag := diag.NewBag(maxDiagnostics)
	for _, d := range payload.Diagnostics {
		rebindSpans(&d, fileID)
		bag.Add(d)
	}
	return FileResult{
		Path:       path,
		FileID:     fileID,
		Components: payload.Components,
		Bag:        bag,
		FromCache:  true,
	}, true
}

func rebindSpans(d *diag.Diagnostic, fileID source.FileID) {
	d.Primary.File = fileID
	for i := range d.Notes {
		d.Notes[i].Span.File = fileID
	}
	for i := range d.Fixes {
		for j := range d.Fixes[i].Edits {
			d.Fixes[i].Edits[j].Span.File = fileID
		}
	}
}

// store persists a compile result. Cache write failures never fail the
// build.
func (c *DiskCache) store(file *source.File, res FileResult) {
	if c == nil || res.Bag == nil {
		return
	}
	payload := DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        res.Path,
		ContentHash: project.Digest(file.Hash),
		Components:  res.Components,
		Diagnostics: res.Bag.Items(),
		Broken:      res.Bag.HasErrors(),
	}
	_ = c.Put(CacheKey(file), &payload)
}
