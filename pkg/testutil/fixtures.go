package testutil

import (
	"path"
	"strings"
	"testing"

	"github.com/arthur-debert/measurefs/pkg/paths"
	"github.com/arthur-debert/measurefs/pkg/types"
)

// SourceTreeFiles is a measure bundle with 14 regular files spread over
// nested folders. Sizes differ so a size comparison means something, and
// one file is empty.
var SourceTreeFiles = map[string]string{
	".gitkeep":                       "",
	"measure.rb":                     "class ReduceLightingLoads < OpenStudio::Measure::ModelMeasure\nend\n",
	"measure.xml":                    "<?xml version=\"1.0\"?>\n<measure><name>reduce_lighting_loads</name></measure>\n",
	"README.md":                      "# Reduce Lighting Loads\n",
	"LICENSE.md":                     "BSD-3-Clause\n",
	"docs/overview.md":               "Scales lighting power density.\n",
	"docs/images/diagram.txt":        "+--+\n|  |\n+--+\n",
	"resources/helpers.rb":           "module Helpers; end\n",
	"resources/data/schedule.csv":    "hour,value\n0,0.1\n1,0.1\n",
	"resources/data/weather/epw.txt": strings.Repeat("8760 hourly rows\n", 64),
	"tests/measure_test.rb":          "require 'minitest/autorun'\n",
	"tests/models/example.osm":       "OS:Version,\n  3.7.0;\n",
	"tests/models/notes.txt":         "x",
	"tests/output/output.txt":        "generated\n",
}

// SourceTreeEmptyDirs are directories in the source tree that hold no files.
var SourceTreeEmptyDirs = []string{"docs/empty", "resources/data/unused"}

// CreateSourceTree writes SourceTreeFiles and SourceTreeEmptyDirs under root.
func CreateSourceTree(t *testing.T, fsys types.FS, root string) {
	t.Helper()
	WriteTree(t, fsys, root, SourceTreeFiles, SourceTreeEmptyDirs...)
}

// TestPath is a relative entry and whether the default policy allows it.
type TestPath struct {
	Path    string
	Allowed bool
}

// Inputs used to build MeasureTestPaths.
var (
	MeasureRootFiles = []string{
		"measure.rb", "README.md", "README.md.erb",
		"LICENSE.md", "measure.xml", ".gitkeep",
	}
	MeasureFolders      = []string{"docs", "resources", "tests"}
	MeasureIgnoredPaths = []string{
		"root_file.txt", "tests/output/output.txt", "subfolder/subfolder.txt",
		".git/index", ".hidden_folder/file.txt",
	}
)

// MeasureTestPaths returns allowed and disallowed entries for a measure
// bundle. Every approved root file is allowed, each approved folder gets a
// script named after it and a nested file, and every ignored path outside
// the approved folders is disallowed.
//
// "tests/output/output.txt" lives under an approved folder, so it is
// reported as allowed: ignoring it is a copy-time exclusion, not a policy
// decision.
func MeasureTestPaths() []TestPath {
	testPaths := make([]TestPath, 0, len(MeasureRootFiles)+2*len(MeasureFolders)+len(MeasureIgnoredPaths))
	for _, s := range MeasureRootFiles {
		testPaths = append(testPaths, TestPath{Path: s, Allowed: true})
	}
	for _, s := range MeasureFolders {
		testPaths = append(testPaths,
			TestPath{Path: path.Join(s, s+".rb"), Allowed: true},
			TestPath{Path: path.Join(s, "subfolder", "subfolder_file.txt"), Allowed: true},
		)
	}
	for _, s := range MeasureIgnoredPaths {
		allowed := false
		for _, f := range MeasureFolders {
			if paths.HasPrefix(s, f) {
				allowed = true
			}
		}
		testPaths = append(testPaths, TestPath{Path: s, Allowed: allowed})
	}
	return testPaths
}

// CreateMeasureDirectory writes each of testPaths under root, using the
// entry itself as the content.
func CreateMeasureDirectory(t *testing.T, fsys types.FS, root string, testPaths []TestPath) {
	t.Helper()

	files := make(map[string]string, len(testPaths))
	for _, tp := range testPaths {
		files[tp.Path] = tp.Path
	}
	WriteTree(t, fsys, root, files)
}
