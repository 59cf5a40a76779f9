package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	assert.NotNil(t, fs)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	testContent := []byte("hello world")

	err := fs.WriteFile(testFile, testContent, 0644)
	require.NoError(t, err)

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	subDir := filepath.Join(tmpDir, "sub", "dir")
	require.NoError(t, fs.MkdirAll(subDir, 0755))

	entries, err := fs.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2) // test.txt and sub/

	require.NoError(t, fs.Remove(testFile))
	_, err = fs.Stat(testFile)
	assert.True(t, os.IsNotExist(err))
}

func TestOSCreateIsExclusive(t *testing.T) {
	fs := NewOS()
	path := filepath.Join(t.TempDir(), "once.txt")

	w, err := fs.Create(path, 0644)
	require.NoError(t, err)
	_, err = io.WriteString(w, "first")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = fs.Create(path, 0644)
	assert.True(t, os.IsExist(err))

	content, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(content))
}

func TestOSMkdirIsSingleLevel(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()

	err := fs.Mkdir(filepath.Join(tmpDir, "missing", "child"), 0755)
	assert.Error(t, err)

	require.NoError(t, fs.Mkdir(filepath.Join(tmpDir, "child"), 0755))
	assert.True(t, IsDir(fs, filepath.Join(tmpDir, "child")))
}

func TestOSLstatSeesSymlink(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "target.txt")
	link := filepath.Join(tmpDir, "link.txt")
	require.NoError(t, fs.WriteFile(target, []byte("x"), 0644))
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	assert.True(t, IsSymlink(fs, link))
	assert.False(t, IsSymlink(fs, target))
	assert.True(t, IsRegular(fs, link))

	resolved, err := fs.EvalSymlinks(link)
	require.NoError(t, err)
	expected, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	assert.Equal(t, expected, resolved)
}
