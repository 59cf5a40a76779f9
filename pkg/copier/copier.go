// Package copier clones a directory tree into a fresh destination.
//
// Errors come in two kinds with different handling:
//
//   - Structural errors (unusable source, existing destination, a
//     directory that cannot be created or listed) abort the whole copy.
//     Nothing already written is cleaned up, so a partial destination tree
//     may remain.
//   - Leaf errors (one file that fails to copy) are logged and recorded in
//     the Result, the partial file is removed, and the copy carries on with
//     the next sibling. They do not affect Result.Success.
package copier

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/measurefs/pkg/enumerate"
	"github.com/arthur-debert/measurefs/pkg/errors"
	"github.com/arthur-debert/measurefs/pkg/filesystem"
	"github.com/arthur-debert/measurefs/pkg/logging"
	"github.com/arthur-debert/measurefs/pkg/paths"
	"github.com/arthur-debert/measurefs/pkg/rules"
	"github.com/arthur-debert/measurefs/pkg/types"
	"github.com/rs/zerolog"
)

// Copier copies trees on a single filesystem.
type Copier struct {
	fsys          types.FS
	logger        zerolog.Logger
	createParents bool
}

// Option configures a Copier.
type Option func(*Copier)

// WithLogger sets the diagnostic sink.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Copier) { c.logger = logger }
}

// WithCreateParents creates missing parents of the destination. By default
// the destination's parent must already exist.
func WithCreateParents(enabled bool) Option {
	return func(c *Copier) { c.createParents = enabled }
}

// New creates a Copier for fsys.
func New(fsys types.FS, opts ...Option) *Copier {
	c := &Copier{
		fsys:   fsys,
		logger: logging.GetLogger("copier"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Options control a single copy.
type Options struct {
	// Exclude is evaluated against paths relative to the top-level source.
	// Excluded files are not copied and excluded directories are neither
	// created nor descended into.
	Exclude types.Predicate
}

// Result describes a finished copy.
type Result struct {
	Source      string
	Destination string

	// Success is true when no structural error occurred.
	Success bool

	// Files and Dirs list what was created, as relative entries in walk order.
	Files []string
	Dirs  []string

	// Skipped lists excluded entries and linked directories that were not
	// followed.
	Skipped []string

	// Errors holds every leaf error and, when Success is false, the
	// structural error last.
	Errors []error

	structural error
}

// Err returns the structural error that aborted the copy, if any.
func (r *Result) Err() error {
	return r.structural
}

// Failed returns the tolerated leaf errors.
func (r *Result) Failed() []error {
	var out []error
	for _, err := range r.Errors {
		if err != r.structural {
			out = append(out, err)
		}
	}
	return out
}

func (r *Result) abort(err error) *Result {
	r.structural = err
	r.Errors = append(r.Errors, err)
	r.Success = false
	return r
}

// CopyTree copies source into destination, which must not exist.
func (c *Copier) CopyTree(source, destination string, opts Options) *Result {
	logger := c.logger.With().Str("source", source).Str("destination", destination).Logger()
	done := logging.LogOperationStart(logger, "copy_tree")
	defer done()

	res := &Result{Source: source, Destination: destination}

	if err := c.checkPreconditions(source, destination); err != nil {
		logger.Error().Err(err).Msg("Copy precondition failed")
		return res.abort(err)
	}

	if c.createParents {
		parent := filepath.Dir(destination)
		if err := c.fsys.MkdirAll(parent, filesystem.DirMode); err != nil {
			err = errors.Wrapf(err, errors.ErrDirCreate, "unable to create parent directory %q", parent).
				WithDetail("path", parent)
			logger.Error().Err(err).Msg("Copy aborted")
			return res.abort(err)
		}
	}
	if err := c.fsys.Mkdir(destination, filesystem.DirMode); err != nil {
		err = errors.Wrapf(err, errors.ErrDirCreate, "unable to create destination directory %q", destination).
			WithDetail("path", destination)
		logger.Error().Err(err).Msg("Copy aborted")
		return res.abort(err)
	}

	if err := c.copyDir(res, source, destination, "", opts, logger); err != nil {
		logger.Error().Err(err).Msg("Copy aborted")
		return res.abort(err)
	}

	res.Success = true
	logger.Info().
		Int("files", len(res.Files)).
		Int("dirs", len(res.Dirs)).
		Int("skipped", len(res.Skipped)).
		Int("failed", len(res.Errors)).
		Msg("Copy finished")
	return res
}

func (c *Copier) checkPreconditions(source, destination string) error {
	if err := enumerate.CheckRoot(c.fsys, source); err != nil {
		return err
	}
	_, err := c.fsys.Lstat(destination)
	if err == nil {
		return errors.Newf(errors.ErrDestExists, "destination %q already exists", destination).
			WithDetail("path", destination)
	}
	if !stderrors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(err, errors.ErrDestAccess, "cannot inspect destination %q", destination).
			WithDetail("path", destination)
	}
	return nil
}

// copyDir replicates the entries of srcDir (rel below the top-level source)
// into dstDir, which already exists. The returned error is structural.
func (c *Copier) copyDir(res *Result, srcDir, dstDir, rel string, opts Options, logger zerolog.Logger) error {
	entries, err := c.fsys.ReadDir(srcDir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDirRead, "cannot list %q", srcDir).WithDetail("path", srcDir)
	}

	for _, entry := range entries {
		child := paths.Child(rel, entry.Name())
		if opts.Exclude != nil && opts.Exclude(child) {
			logger.Debug().Str("path", child).Msg("Skipping excluded entry")
			res.Skipped = append(res.Skipped, child)
			continue
		}

		srcPath := filepath.Join(srcDir, entry.Name())
		dstPath := filepath.Join(dstDir, entry.Name())

		if entry.IsDir() {
			if err := c.fsys.Mkdir(dstPath, filesystem.DirMode); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "unable to create directory %q", dstPath).
					WithDetail("path", dstPath)
			}
			res.Dirs = append(res.Dirs, child)
			if err := c.copyDir(res, srcPath, dstPath, child, opts, logger); err != nil {
				return err
			}
			continue
		}

		// Only regular files, or links to them, are opened.
		if !entry.Type().IsRegular() {
			info, err := c.fsys.Stat(srcPath)
			if err != nil {
				c.fileFailed(res, logger, err, child, srcPath, dstPath)
				continue
			}
			if info.IsDir() {
				logger.Debug().Str("path", child).Msg("Not following linked directory")
				res.Skipped = append(res.Skipped, child)
				continue
			}
			if !info.Mode().IsRegular() {
				logger.Debug().Str("path", child).Str("mode", info.Mode().String()).Msg("Skipping non-regular entry")
				res.Skipped = append(res.Skipped, child)
				continue
			}
		}

		if err := filesystem.CopyFile(c.fsys, srcPath, dstPath); err != nil {
			c.fileFailed(res, logger, err, child, srcPath, dstPath)
			continue
		}
		res.Files = append(res.Files, child)
	}
	return nil
}

// fileFailed records a leaf error for child and lets the copy go on.
func (c *Copier) fileFailed(res *Result, logger zerolog.Logger, err error, child, srcPath, dstPath string) {
	err = errors.Wrapf(err, errors.ErrFileCopy, "unable to copy %q", child).
		WithDetail("source", srcPath).WithDetail("destination", dstPath)
	logger.Error().Err(err).Str("path", child).Msg("File copy failed, continuing")
	res.Errors = append(res.Errors, err)
}

// CopyTree copies source into the nonexistent destination on fsys,
// skipping the ignored relative paths, and reports structural success.
func CopyTree(fsys types.FS, source, destination string, ignored ...string) bool {
	exclude := rules.NewExclusionSet(ignored...).Predicate()
	return New(fsys).CopyTree(source, destination, Options{Exclude: exclude}).Success
}
