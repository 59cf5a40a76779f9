package testutil

import (
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/arthur-debert/measurefs/pkg/types"
)

// CreateFile writes content at dir/rel on fsys, creating parents.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, fsys types.FS, dir, rel, content string) string {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// CreateDir creates dir/rel on fsys.
// It fails the test if the directory cannot be created.
func CreateDir(t *testing.T, fsys types.FS, dir, rel string) string {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := fsys.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}
	return path
}

// WriteTree creates every file in files (relative entry to content) and
// every directory in dirs under root.
func WriteTree(t *testing.T, fsys types.FS, root string, files map[string]string, dirs ...string) {
	t.Helper()

	CreateDir(t, fsys, root, "")
	for _, d := range dirs {
		CreateDir(t, fsys, root, d)
	}
	for rel, content := range files {
		CreateFile(t, fsys, root, rel, content)
	}
}

// SortedKeys returns the keys of m in sorted order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WithPrefix returns the entries of list that equal prefix or start with
// prefix followed by a slash.
func WithPrefix(list []string, prefix string) []string {
	var out []string
	for _, p := range list {
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			out = append(out, p)
		}
	}
	return out
}
