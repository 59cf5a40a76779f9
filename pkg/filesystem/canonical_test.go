package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical(t *testing.T) {
	fs := NewOS()
	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, fs.MkdirAll(filepath.Join(tmpDir, "a", "b"), 0755))

	got, err := Canonical(fs, filepath.Join(tmpDir, "a", "b", "..", ".", "b"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "a", "b"), got)

	_, err = Canonical(fs, filepath.Join(tmpDir, "missing"))
	assert.True(t, os.IsNotExist(err))
}

func TestWeaklyCanonical(t *testing.T) {
	fs := NewOS()
	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, fs.MkdirAll(filepath.Join(tmpDir, "real"), 0755))

	link := filepath.Join(tmpDir, "link")
	if err := os.Symlink(filepath.Join(tmpDir, "real"), link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	got, err := WeaklyCanonical(fs, filepath.Join(link, "not", "yet", "here.txt"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "real", "not", "yet", "here.txt"), got)

	got, err = WeaklyCanonical(fs, link)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "real"), got)
}

func TestAncestors(t *testing.T) {
	got := Ancestors("/a/b/c")
	assert.Equal(t, []string{"/a/b/c", "/a/b", "/a", "/"}, got)

	abs, err := filepath.Abs(".")
	require.NoError(t, err)
	chain := Ancestors(abs)
	assert.Equal(t, abs, chain[0])
	last := chain[len(chain)-1]
	assert.Equal(t, last, filepath.Dir(last))
}
