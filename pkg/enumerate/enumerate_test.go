package enumerate

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/measurefs/pkg/errors"
	"github.com/arthur-debert/measurefs/pkg/filesystem"
	"github.com/arthur-debert/measurefs/pkg/rules"
	"github.com/arthur-debert/measurefs/pkg/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerateRecursive(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.CreateSourceTree(t, fsys, "/src")

	got, err := Sorted(fsys, "/src", Options{Recursive: true})
	require.NoError(t, err)

	assert.Len(t, got, 14)
	assert.Equal(t, testutil.SortedKeys(testutil.SourceTreeFiles), got)
	for _, rel := range got {
		assert.False(t, strings.HasPrefix(rel, "/"), rel)
		assert.False(t, strings.HasPrefix(rel, "src"), rel)
	}
}

func TestEnumerateRecursiveOnDisk(t *testing.T) {
	fsys := filesystem.NewOS()
	root := filepath.Join(t.TempDir(), "ori_measure_dir")
	testutil.CreateSourceTree(t, fsys, root)

	got, err := Sorted(fsys, root, Options{Recursive: true})
	require.NoError(t, err)
	assert.Equal(t, testutil.SortedKeys(testutil.SourceTreeFiles), got)
}

func TestEnumerateNonRecursive(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.CreateSourceTree(t, fsys, "/src")

	got, err := Sorted(fsys, "/src", Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		".gitkeep", "LICENSE.md", "README.md", "docs", "measure.rb", "measure.xml", "resources", "tests",
	}, got)
}

func TestEnumerateExclusionPrunes(t *testing.T) {
	base := testutil.NewTestFS()
	testutil.CreateSourceTree(t, base, "/src")
	// Descending into the excluded directory would surface this error.
	fsys := testutil.NewFaultyFS(base).Fail(testutil.OpReadDir, "/src/tests", stderrors.New("must not list"))

	exclude := rules.NewExclusionSet("tests", "resources/data/weather").Predicate()
	got, err := Collect(fsys, "/src", Options{Recursive: true, Exclude: exclude})
	require.NoError(t, err)

	assert.Empty(t, testutil.WithPrefix(got, "tests"))
	assert.Empty(t, testutil.WithPrefix(got, "resources/data/weather"))
	assert.Contains(t, got, "resources/data/schedule.csv")
	assert.Len(t, got, 14-4-1)
}

func TestEnumerateExclusionSkipsFiles(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.CreateSourceTree(t, fsys, "/src")

	exclude := rules.NewExclusionSet("tests/output/output.txt").Predicate()
	got, err := Collect(fsys, "/src", Options{Recursive: true, Exclude: exclude})
	require.NoError(t, err)
	assert.NotContains(t, got, "tests/output/output.txt")
	assert.Len(t, got, 13)
}

func TestEnumerateExclusionNonRecursive(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.CreateSourceTree(t, fsys, "/src")

	got, err := Sorted(fsys, "/src", Options{Exclude: rules.DefaultPolicy().Exclude()})
	require.NoError(t, err)
	assert.NotContains(t, got, "root_file.txt")
	assert.Contains(t, got, ".gitkeep")
	assert.Contains(t, got, "docs")
}

func TestEnumerateRootErrors(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.CreateFile(t, fsys, "/", "file.txt", "x")

	_, err := Enumerate(fsys, "/missing", Options{Recursive: true})
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceNotFound))
	assert.True(t, stderrors.Is(err, os.ErrNotExist))

	_, err = Enumerate(fsys, "/file.txt", Options{Recursive: true})
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceNotDir))

	_, err = Collect(fsys, "/missing", Options{})
	assert.Error(t, err)
}

func TestEnumerateIsRestartable(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.CreateSourceTree(t, fsys, "/src")

	seq, err := Enumerate(fsys, "/src", Options{Recursive: true})
	require.NoError(t, err)

	drain := func() map[string]struct{} {
		set := map[string]struct{}{}
		for rel, err := range seq {
			require.NoError(t, err)
			set[rel] = struct{}{}
		}
		return set
	}
	first := drain()
	second := drain()
	assert.Equal(t, first, second)
	assert.Len(t, first, 14)

	// A later walk observes changes made between walks.
	testutil.CreateFile(t, fsys, "/src", "docs/added.md", "new")
	assert.Len(t, drain(), 15)
}

func TestEnumerateIdempotentSets(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.CreateSourceTree(t, fsys, "/src")

	a, err := Set(fsys, "/src", Options{Recursive: true})
	require.NoError(t, err)
	b, err := Set(fsys, "/src", Options{Recursive: true})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEnumerateEarlyBreak(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.CreateSourceTree(t, fsys, "/src")

	seq, err := Enumerate(fsys, "/src", Options{Recursive: true})
	require.NoError(t, err)

	count := 0
	for range seq {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestEnumerateReadDirFailure(t *testing.T) {
	base := testutil.NewTestFS()
	testutil.CreateSourceTree(t, base, "/src")
	fsys := testutil.NewFaultyFS(base).Fail(testutil.OpReadDir, "/src/resources", os.ErrPermission)

	got, err := Collect(fsys, "/src", Options{Recursive: true})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirRead))
	assert.True(t, stderrors.Is(err, os.ErrPermission))
	assert.Empty(t, testutil.WithPrefix(got, "resources"))
}

func TestEnumerateSymlinks(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()
	testutil.CreateFile(t, fsys, root, "real/file.txt", "data")
	testutil.CreateFile(t, fsys, root, "target.txt", "target")

	if err := os.Symlink(filepath.Join(root, "target.txt"), filepath.Join(root, "file_link.txt")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "dir_link")))
	require.NoError(t, os.Symlink(filepath.Join(root, "gone.txt"), filepath.Join(root, "dangling")))

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	got, err := Sorted(fsys, root, Options{Recursive: true, Logger: &logger})
	require.NoError(t, err)
	assert.Equal(t, []string{"file_link.txt", "real/file.txt", "target.txt"}, got)
	assert.Contains(t, buf.String(), "dangling")
	assert.Contains(t, buf.String(), "dir_link")

	top, err := Sorted(fsys, root, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"dangling", "dir_link", "file_link.txt", "real", "target.txt"}, top)
}

func TestEnumerateDecomposedNamesOnDisk(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()
	decomposedDir := filepath.Join(root, "cafe\u0301")
	require.NoError(t, os.MkdirAll(decomposedDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(decomposedDir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "re\u0301sume\u0301.txt"), []byte("cv"), 0o644))

	want := []string{"caf\u00e9/a.txt", "r\u00e9sum\u00e9.txt"}
	got, err := Sorted(fsys, root, Options{Recursive: true})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	again, err := Set(fsys, root, Options{Recursive: true})
	require.NoError(t, err)
	first, err := Set(fsys, root, Options{Recursive: true})
	require.NoError(t, err)
	assert.Equal(t, first, again)

	hosts, err := Paths(fsys, root, Options{Recursive: true})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(decomposedDir, "a.txt"), hosts["caf\u00e9/a.txt"])
	assert.Equal(t, filepath.Join(root, "re\u0301sume\u0301.txt"), hosts["r\u00e9sum\u00e9.txt"])
	for _, host := range hosts {
		assert.True(t, filesystem.Exists(fsys, host), host)
	}
}
