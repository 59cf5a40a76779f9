package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRel(t *testing.T) {
	root := filepath.Join("base", "measure")

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"root itself", root, ""},
		{"direct child", filepath.Join(root, "measure.rb"), "measure.rb"},
		{"nested", filepath.Join(root, "tests", "output", "output.txt"), "tests/output/output.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Rel(root, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Rel(root, filepath.Join("base", "other"))
	assert.Error(t, err)
}

func TestRelNormalisesUnicode(t *testing.T) {
	// "e" + combining acute (NFD) must compare equal to the precomposed form.
	got, err := Rel("/r", "/r/cafe\u0301.txt")
	require.NoError(t, err)
	assert.Equal(t, "caf\u00e9.txt", got)
}

func TestJoinAndChild(t *testing.T) {
	assert.Equal(t, "root", Join("root", ""))
	assert.Equal(t, filepath.Join("root", "a", "b.txt"), Join("root", "a/b.txt"))

	assert.Equal(t, "a", Child("", "a"))
	assert.Equal(t, "a/b", Child("a", "b"))
}

func TestClean(t *testing.T) {
	tests := map[string]string{
		".git":                    ".git",
		"./tests/output/":         "tests/output",
		"/docs":                   "docs",
		`tests\output\output.txt`: "tests/output/output.txt",
		".":                       "",
		"":                        "",
		"a/../b":                  "b",
		"..":                      "",
		"../x":                    "",
		"a/../../x":               "",
		"/../x":                   "",
		"..foo/bar":               "..foo/bar",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, Clean(in))
		})
	}
}

func TestSegments(t *testing.T) {
	assert.Nil(t, Segments(""))
	assert.Equal(t, []string{"tests", "subfolder", "subfolder_file.txt"}, Segments("tests/subfolder/subfolder_file.txt"))
	assert.Equal(t, "tests", FirstSegment("tests/subfolder/subfolder_file.txt"))
	assert.Equal(t, "measure.rb", FirstSegment("measure.rb"))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden(".git"))
	assert.True(t, IsHidden(".gitkeep"))
	assert.False(t, IsHidden("README.md"))
	assert.False(t, IsHidden("."))
	assert.False(t, IsHidden(".."))
}

func TestHasPrefix(t *testing.T) {
	assert.True(t, HasPrefix(".git", ".git"))
	assert.True(t, HasPrefix(".git/index", ".git"))
	assert.False(t, HasPrefix(".gitkeep", ".git"))
	assert.False(t, HasPrefix("tests/output2/x", "tests/output"))
	assert.True(t, HasPrefix("anything", ""))
}
