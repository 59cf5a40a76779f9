package filesystem

import (
	"path/filepath"

	"github.com/arthur-debert/measurefs/pkg/types"
)

// Canonical returns the absolute form of p with every symlink, "." and ".."
// resolved. p must exist.
func Canonical(fsys types.FS, p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return fsys.EvalSymlinks(abs)
}

// WeaklyCanonical canonicalises the longest existing prefix of p and
// appends the remaining, lexically cleaned, components. Unlike Canonical
// p itself need not exist.
func WeaklyCanonical(fsys types.FS, p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}

	head, tail := abs, ""
	for {
		if _, err := fsys.Lstat(head); err == nil {
			break
		}
		parent := filepath.Dir(head)
		if parent == head {
			// Nothing exists, not even the volume root.
			return abs, nil
		}
		tail = filepath.Join(filepath.Base(head), tail)
		head = parent
	}

	resolved, err := fsys.EvalSymlinks(head)
	if err != nil {
		return "", err
	}
	if tail == "" {
		return resolved, nil
	}
	return filepath.Join(resolved, tail), nil
}

// Ancestors returns p followed by each of its parents, ending with the
// root of the volume.
func Ancestors(p string) []string {
	p = filepath.Clean(p)
	out := []string{p}
	for {
		parent := filepath.Dir(p)
		if parent == p {
			return out
		}
		out = append(out, parent)
		p = parent
	}
}
