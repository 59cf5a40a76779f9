package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExclusionSetExcludes(t *testing.T) {
	set := NewExclusionSet(".git", "tests/output/output.txt", "./resources/tmp/")

	tests := []struct {
		path string
		want bool
	}{
		{".git", true},
		{".git/index", true},
		{".git/objects/ab/cdef", true},
		{".gitkeep", false},
		{".github/workflows/ci.yml", false},
		{"tests/output/output.txt", true},
		{"tests/output/other.txt", false},
		{"tests/output", false},
		{"resources/tmp", true},
		{"resources/tmp/x.bin", true},
		{"resources/tmpfile", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, set.Excludes(tt.path))
		})
	}
}

func TestExclusionSetPatterns(t *testing.T) {
	set := NewExclusionSet("b", "a/", ".", "", `c\d`)
	assert.Equal(t, []string{"a", "b", "c/d"}, set.Patterns())
	assert.Equal(t, 3, set.Len())
}

func TestExclusionSetDropsPatternsAboveRoot(t *testing.T) {
	set := NewExclusionSet("../tests", "a/../../tests/output", "..", "docs/../resources")
	assert.Equal(t, []string{"resources"}, set.Patterns())
	assert.False(t, set.Excludes("tests"))
	assert.False(t, set.Excludes("tests/output/output.txt"))
	assert.True(t, set.Excludes("resources/data.csv"))
}

func TestExclusionSetPredicate(t *testing.T) {
	assert.Nil(t, NewExclusionSet().Predicate())

	pred := NewExclusionSet(".git").Predicate()
	if assert.NotNil(t, pred) {
		assert.True(t, pred(".git/HEAD"))
		assert.False(t, pred("measure.rb"))
	}
}

func TestAnyAndNot(t *testing.T) {
	assert.Nil(t, Any(nil, nil))

	git := NewExclusionSet(".git").Predicate()
	assert.NotNil(t, Any(nil, git))

	combined := Any(git, NewExclusionSet("tests/output").Predicate())
	assert.True(t, combined(".git/index"))
	assert.True(t, combined("tests/output/output.txt"))
	assert.False(t, combined("tests/measure_test.rb"))

	notGit := Not(git)
	assert.False(t, notGit(".git"))
	assert.True(t, notGit("measure.rb"))

	assert.True(t, Not(nil)("anything"))
}
