package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"helios/internal/diag"
	"helios/internal/project"
	"helios/internal/source"
)

// Current schema version - increment when DiskPayload format changes.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores per-file check results on disk, keyed by content
// hash, so clean re-checks of unchanged files skip analysis.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskDiagnostic is one cached diagnostic. Spans are stored as offsets
// relative to the file start because global positions depend on load
// order and are not stable across runs.
type DiskDiagnostic struct {
	Severity uint8
	Code     uint16
	Message  string
	Lo, Hi   uint32
	Dummy    bool
	Notes    []DiskNote
}

// DiskNote is one cached secondary note.
type DiskNote struct {
	Message string
	Lo, Hi  uint32
	Dummy   bool
}

// DiskPayload stores the cached outcome of checking one file.
type DiskPayload struct {
	Schema      uint16
	Path        string
	ContentHash project.Digest
	Diagnostics []DiskDiagnostic
	ErrorCount  int
}

// OpenDiskCache initializes and returns a disk cache at the standard
// location ($XDG_CACHE_HOME/<app> or ~/.cache/<app>).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes a disk cache rooted at dir. Tests use it
// to keep cache state inside a temporary directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Subdirectory "checks" keeps the cache easy to inspect and clear.
	return filepath.Join(c.dir, "checks", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
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
	defer func() { _ = os.Remove(f.Name()) }()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace.
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = f.Close() }()

	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

// bagToDiskPayload converts a file's diagnostics into the cacheable
// form, rebasing spans to be file-relative.
func bagToDiskPayload(path string, f *source.File, bag *diag.Bag) *DiskPayload {
	payload := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        path,
		ContentHash: f.Hash,
		ErrorCount:  bag.ErrorCount(),
	}
	for _, d := range bag.Items() {
		dd := DiskDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
		}
		dd.Lo, dd.Hi, dd.Dummy = relSpan(f, d.Primary)
		for _, n := range d.Notes {
			dn := DiskNote{Message: n.Msg}
			dn.Lo, dn.Hi, dn.Dummy = relSpan(f, n.Span)
			dd.Notes = append(dd.Notes, dn)
		}
		payload.Diagnostics = append(payload.Diagnostics, dd)
	}
	return payload
}

// replayDiskPayload re-emits cached diagnostics into bag, rebasing the
// stored file-relative spans onto the file's current base.
func replayDiskPayload(payload *DiskPayload, f *source.File, bag *diag.Bag) {
	for _, dd := range payload.Diagnostics {
		d := diag.New(diag.Severity(dd.Severity), diag.Code(dd.Code),
			absSpan(f, dd.Lo, dd.Hi, dd.Dummy), dd.Message)
		for _, dn := range dd.Notes {
			d = d.WithNote(absSpan(f, dn.Lo, dn.Hi, dn.Dummy), dn.Message)
		}
		bag.Emit(d)
	}
}

func relSpan(f *source.File, sp source.Span) (lo, hi uint32, dummy bool) {
	if sp.IsDummy() || !f.ContainsPos(sp.Lo) || !f.ContainsPos(sp.Hi) {
		return 0, 0, true
	}
	return f.RelPos(sp.Lo), f.RelPos(sp.Hi), false
}

func absSpan(f *source.File, lo, hi uint32, dummy bool) source.Span {
	if dummy {
		return source.DummySpan
	}
	return source.NewSpan(f.Base.Add(lo), f.Base.Add(hi))
}
