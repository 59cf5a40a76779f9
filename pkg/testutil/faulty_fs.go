package testutil

import (
	"io"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/measurefs/pkg/types"
)

// Op names a types.FS method that FaultyFS can fail.
type Op string

const (
	OpOpen    Op = "open"
	OpCreate  Op = "create"
	OpMkdir   Op = "mkdir"
	OpReadDir Op = "readdir"
)

// FaultyFS wraps a types.FS and returns injected errors for selected
// (operation, path) pairs. Everything else passes through.
type FaultyFS struct {
	types.FS

	mu     sync.Mutex
	faults map[Op]map[string]error
}

// NewFaultyFS wraps base.
func NewFaultyFS(base types.FS) *FaultyFS {
	return &FaultyFS{FS: base, faults: make(map[Op]map[string]error)}
}

// Fail makes op on path return err.
func (f *FaultyFS) Fail(op Op, path string, err error) *FaultyFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.faults[op] == nil {
		f.faults[op] = make(map[string]error)
	}
	f.faults[op][filepath.Clean(path)] = err
	return f
}

func (f *FaultyFS) fault(op Op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.faults[op][filepath.Clean(path)]; ok {
		return &fs.PathError{Op: string(op), Path: path, Err: err}
	}
	return nil
}

func (f *FaultyFS) Open(name string) (io.ReadCloser, error) {
	if err := f.fault(OpOpen, name); err != nil {
		return nil, err
	}
	return f.FS.Open(name)
}

func (f *FaultyFS) Create(name string, perm fs.FileMode) (io.WriteCloser, error) {
	if err := f.fault(OpCreate, name); err != nil {
		return nil, err
	}
	return f.FS.Create(name, perm)
}

func (f *FaultyFS) Mkdir(path string, perm fs.FileMode) error {
	if err := f.fault(OpMkdir, path); err != nil {
		return err
	}
	return f.FS.Mkdir(path, perm)
}

func (f *FaultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.fault(OpReadDir, name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}
