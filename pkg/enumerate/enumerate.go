// Package enumerate lists the contents of a directory tree as relative
// entries.
//
// Enumerate validates the root up front and returns a lazy sequence. The
// sequence walks depth first in the order ReadDir reports entries and is
// restartable: ranging over it again re-reads the filesystem. Nothing is
// cached and every directory listing is fully read before its entries are
// yielded, so no handle outlives a single step.
package enumerate

import (
	"io/fs"
	"iter"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/measurefs/pkg/errors"
	"github.com/arthur-debert/measurefs/pkg/logging"
	"github.com/arthur-debert/measurefs/pkg/paths"
	"github.com/arthur-debert/measurefs/pkg/types"
	"github.com/rs/zerolog"
)

// Options control a walk.
type Options struct {
	// Recursive walks the whole tree and yields regular files only.
	// Otherwise the immediate children of the root are yielded, files and
	// directories alike.
	Recursive bool

	// Exclude is consulted once per visited entry before it is emitted or
	// descended into. Excluded directories are pruned.
	Exclude types.Predicate

	// Logger receives traversal diagnostics. Defaults to the "enumerate"
	// channel.
	Logger *zerolog.Logger
}

// Entry is one emitted entry. Rel is the normalised relative entry and
// Path the host path it was found at, which keeps the on-disk spelling of
// every segment.
type Entry struct {
	Rel  string
	Path string
}

// Enumerate returns the entries below root. It fails with SOURCE_NOT_FOUND
// or SOURCE_NOT_DIR before any walking when root is unusable. A directory
// that cannot be read mid-walk yields a single DIR_READ error and ends the
// sequence.
func Enumerate(fsys types.FS, root string, opts Options) (iter.Seq2[string, error], error) {
	entries, err := Entries(fsys, root, opts)
	if err != nil {
		return nil, err
	}
	return func(yield func(string, error) bool) {
		for entry, err := range entries {
			if !yield(entry.Rel, err) {
				return
			}
		}
	}, nil
}

// Entries is Enumerate yielding host paths along with relative entries.
func Entries(fsys types.FS, root string, opts Options) (iter.Seq2[Entry, error], error) {
	if err := CheckRoot(fsys, root); err != nil {
		return nil, err
	}

	logger := logging.GetLogger("enumerate")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	w := &walker{fsys: fsys, opts: opts, logger: logger}
	return func(yield func(Entry, error) bool) {
		w.walk("", root, yield)
	}, nil
}

// CheckRoot verifies that root exists and is a directory.
func CheckRoot(fsys types.FS, root string) error {
	info, err := fsys.Stat(root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrSourceNotFound,
			"source directory %q does not exist", root).WithDetail("path", root)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrSourceNotDir,
			"source %q is not a directory", root).WithDetail("path", root)
	}
	return nil
}

type walker struct {
	fsys   types.FS
	opts   Options
	logger zerolog.Logger
}

// walk yields the entries below dir, whose relative entry is rel. Host
// paths are built from the names ReadDir returns, never from the
// normalised entries. It returns false once the consumer has stopped or an
// error was yielded.
func (w *walker) walk(rel, dir string, yield func(Entry, error) bool) bool {
	entries, err := w.fsys.ReadDir(dir)
	if err != nil {
		yield(Entry{}, errors.Wrapf(err, errors.ErrDirRead, "cannot list %q", dir).WithDetail("path", dir))
		return false
	}

	for _, entry := range entries {
		child := paths.Child(rel, entry.Name())
		if w.opts.Exclude != nil && w.opts.Exclude(child) {
			w.logger.Trace().Str("path", child).Msg("Excluded")
			continue
		}
		host := filepath.Join(dir, entry.Name())

		if !w.opts.Recursive {
			if !yield(Entry{Rel: child, Path: host}, nil) {
				return false
			}
			continue
		}

		switch w.kindOf(child, host, entry.Type()) {
		case kindDir:
			if !w.walk(child, host, yield) {
				return false
			}
		case kindFile:
			if !yield(Entry{Rel: child, Path: host}, nil) {
				return false
			}
		}
	}
	return true
}

type kind int

const (
	kindOther kind = iota
	kindFile
	kindDir
)

func (w *walker) kindOf(rel, host string, typ fs.FileMode) kind {
	switch {
	case typ.IsDir():
		return kindDir
	case typ.IsRegular():
		return kindFile
	}

	// Links count as files when they point at one. Linked directories are
	// not followed, which keeps link cycles out of the walk.
	info, err := w.fsys.Stat(host)
	if err != nil {
		w.logger.Debug().Err(err).Str("path", rel).Msg("Skipping dangling entry")
		return kindOther
	}
	if info.Mode().IsRegular() {
		return kindFile
	}
	w.logger.Debug().Str("path", rel).Str("mode", info.Mode().String()).Msg("Skipping non-regular entry")
	return kindOther
}

// Collect drains a walk into a slice, stopping at the first error.
func Collect(fsys types.FS, root string, opts Options) ([]string, error) {
	seq, err := Enumerate(fsys, root, opts)
	if err != nil {
		return nil, err
	}
	var out []string
	for rel, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, rel)
	}
	return out, nil
}

// Sorted is Collect with the result in lexical order, for comparing trees.
func Sorted(fsys types.FS, root string, opts Options) ([]string, error) {
	out, err := Collect(fsys, root, opts)
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}

// Set is Collect as a set.
func Set(fsys types.FS, root string, opts Options) (map[string]struct{}, error) {
	out, err := Collect(fsys, root, opts)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(out))
	for _, rel := range out {
		set[rel] = struct{}{}
	}
	return set, nil
}

// Paths drains a walk into a map from relative entry to host path.
func Paths(fsys types.FS, root string, opts Options) (map[string]string, error) {
	entries, err := Entries(fsys, root, opts)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string)
	for entry, err := range entries {
		if err != nil {
			return nil, err
		}
		out[entry.Rel] = entry.Path
	}
	return out, nil
}
