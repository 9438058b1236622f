package cache

import (
	"os"
	"sync"
	"time"
)

// LoadFunc parses the file at path into an immutable snapshot.
type LoadFunc func(path string) (any, error)

// Options tune cache behaviour.
type Options struct {
	// TTL bounds how long a loaded snapshot is served without re-reading the
	// file. Zero means the snapshot never expires on age alone.
	TTL time.Duration
	// CheckModTime reloads before the TTL elapses when the file's
	// modification time advances past the cached one.
	CheckModTime bool
	// Clock overrides time.Now, for tests.
	Clock func() time.Time
}

// File memoizes one parsed file together with the load instant and the file
// modification time the snapshot was built from. Concurrent callers observe
// a consistent snapshot; a reload swaps the whole value at once.
type File struct {
	path string
	load LoadFunc
	opts Options

	mu       sync.Mutex
	value    any
	loadedAt time.Time
	modTime  time.Time
	loaded   bool
}

// NewFile builds a cache around path and its loader.
func NewFile(path string, load LoadFunc, opts Options) *File {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &File{path: path, load: load, opts: opts}
}

// Get returns the cached snapshot, reloading when no snapshot exists, the
// TTL has elapsed, or the backing file changed on disk. The returned time is
// the modification time the snapshot was parsed from.
func (f *File) Get() (any, time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.opts.Clock()
	if f.loaded && !f.expired(now) && !f.modified() {
		return f.value, f.modTime, nil
	}

	info, err := os.Stat(f.path)
	if err != nil {
		return nil, time.Time{}, err
	}
	value, err := f.load(f.path)
	if err != nil {
		return nil, time.Time{}, err
	}

	f.value = value
	f.loadedAt = now
	f.modTime = info.ModTime()
	f.loaded = true
	return f.value, f.modTime, nil
}

// Invalidate drops the snapshot so the next Get re-reads the file.
func (f *File) Invalidate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loaded = false
	f.value = nil
}

func (f *File) expired(now time.Time) bool {
	if f.opts.TTL <= 0 {
		return false
	}
	return now.Sub(f.loadedAt) >= f.opts.TTL
}

// modified stats the file without failing the hit path: if the stat errors,
// the decision is left to the next expiry-driven reload.
func (f *File) modified() bool {
	if !f.opts.CheckModTime {
		return false
	}
	info, err := os.Stat(f.path)
	if err != nil {
		return false
	}
	return info.ModTime().After(f.modTime)
}
