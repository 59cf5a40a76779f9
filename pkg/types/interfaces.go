package types

import (
	"io"
	"io/fs"
)

// FS is the subset of filesystem operations consumed by measurefs.
type FS interface {
	// Queries
	Stat(name string) (fs.FileInfo, error)
	// Lstat does not follow a final symlink. Implementations without
	// symlink support may fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)

	// Whole-file operations
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Streaming operations. Create fails if name already exists.
	Open(name string) (io.ReadCloser, error)
	Create(name string, perm fs.FileMode) (io.WriteCloser, error)

	// Directory operations. Mkdir creates a single level only.
	Mkdir(path string, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error

	// Removal
	Remove(name string) error
	RemoveAll(path string) error

	// EvalSymlinks returns path with all symbolic links resolved.
	EvalSymlinks(path string) (string, error)
}

// Predicate reports whether a forward-slash path, relative to a traversal
// root, is excluded.
type Predicate func(rel string) bool
