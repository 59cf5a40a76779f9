// Package paths converts between host paths and relative entries.
//
// A relative entry is a path below a traversal root written with forward
// slashes and in Unicode NFC form, so listings produced on different
// platforms, or for a source and its copy, compare equal.
package paths

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Rel returns target relative to root as a relative entry. The root itself
// maps to "". Targets outside root are an error.
func Rel(root, target string) (string, error) {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return "", err
	}
	if rel == "." {
		return "", nil
	}
	rel = ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%s is not below %s", target, root)
	}
	return rel, nil
}

// ToSlash normalises a host relative path into a relative entry.
func ToSlash(rel string) string {
	return norm.NFC.String(filepath.ToSlash(rel))
}

// Join appends a relative entry to a host root path.
func Join(root, rel string) string {
	if rel == "" {
		return root
	}
	return filepath.Join(root, filepath.FromSlash(rel))
}

// Child extends a relative entry by one segment.
func Child(rel, name string) string {
	name = norm.NFC.String(name)
	if rel == "" {
		return name
	}
	return rel + "/" + name
}

// Clean normalises a user supplied pattern: backslashes become slashes,
// leading "./" and "/" and trailing "/" are dropped. It returns "" for
// patterns that name the root itself or climb above it with "..".
func Clean(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = path.Clean(strings.TrimLeft(p, "/"))
	if p == "." || p == ".." || strings.HasPrefix(p, "../") {
		return ""
	}
	return norm.NFC.String(p)
}

// Segments splits a relative entry into its components.
func Segments(rel string) []string {
	if rel == "" {
		return nil
	}
	return strings.Split(rel, "/")
}

// FirstSegment returns the top-level component of rel.
func FirstSegment(rel string) string {
	first, _, _ := strings.Cut(rel, "/")
	return first
}

// IsHidden reports whether a single segment is a dotfile name.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// HasPrefix reports whether rel is prefix or lies beneath it, comparing
// whole segments only.
func HasPrefix(rel, prefix string) bool {
	if prefix == "" {
		return true
	}
	if rel == prefix {
		return true
	}
	return strings.HasPrefix(rel, prefix+"/")
}
