package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/measurefs/pkg/bundle"
	"github.com/arthur-debert/measurefs/pkg/copier"
	"github.com/arthur-debert/measurefs/pkg/errors"
	"github.com/arthur-debert/measurefs/pkg/testutil"
	"github.com/arthur-debert/measurefs/pkg/ui"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResult() *copier.Result {
	return &copier.Result{
		Source:      "/src",
		Destination: "/dst",
		Success:     true,
		Files:       []string{"measure.rb", "docs/a.md"},
		Dirs:        []string{"docs"},
		Skipped:     []string{"tests/output"},
		Errors:      []error{errors.New(errors.ErrFileCopy, "unable to copy docs/b.md")},
	}
}

func TestRenderEntries(t *testing.T) {
	entries := []string{"a.txt", "docs/b.md"}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ui.New(&buf, ui.FormatText).RenderEntries("/root", entries))
		assert.Equal(t, "a.txt\ndocs/b.md\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ui.New(&buf, ui.FormatJSON).RenderEntries("/root", entries))

		var got ui.EntriesView
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "/root", got.Root)
		assert.Equal(t, entries, got.Entries)
	})

	t.Run("json empty is an array", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ui.New(&buf, ui.FormatJSON).RenderEntries("/root", nil))
		assert.Contains(t, buf.String(), `"entries": []`)
	})
}

func TestRenderCopy(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ui.New(&buf, ui.FormatText).RenderCopy(sampleResult()))
		out := buf.String()
		assert.Contains(t, out, "Copied /src -> /dst")
		assert.Contains(t, out, "2 files, 1 directories, 1 skipped")
		assert.Contains(t, out, "skipped tests/output")
		assert.Contains(t, out, "failed [FILE_COPY] unable to copy docs/b.md")
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ui.New(&buf, ui.FormatYAML).RenderCopy(sampleResult()))

		var got ui.CopyView
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.True(t, got.Success)
		assert.Equal(t, []string{"measure.rb", "docs/a.md"}, got.Files)
		require.Len(t, got.Errors, 1)
		assert.Equal(t, "FILE_COPY", got.Errors[0].Code)
	})

	t.Run("toml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ui.New(&buf, ui.FormatTOML).RenderCopy(sampleResult()))

		var got ui.CopyView
		require.NoError(t, toml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "/dst", got.Destination)
		assert.Equal(t, []string{"tests/output"}, got.Skipped)
	})

	t.Run("failure", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		testutil.CreateSourceTree(t, fsys, "/src")
		testutil.CreateDir(t, fsys, "/", "dst")
		res := copier.New(fsys, copier.WithLogger(zerolog.Nop())).CopyTree("/src", "/dst", copier.Options{})
		require.False(t, res.Success)

		var buf bytes.Buffer
		require.NoError(t, ui.New(&buf, ui.FormatText).RenderCopy(res))
		assert.Contains(t, buf.String(), "Copy failed:")
		assert.Contains(t, buf.String(), "DEST_EXISTS")
	})
}

func TestRenderReport(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var buf bytes.Buffer
		report := &bundle.Report{Root: "/m", Allowed: []string{"measure.rb"}, Disallowed: []string{}}
		require.NoError(t, ui.New(&buf, ui.FormatText).RenderReport(report))
		assert.Equal(t, "Valid: /m (1 files)\n", buf.String())
	})

	t.Run("invalid", func(t *testing.T) {
		var buf bytes.Buffer
		report := &bundle.Report{Root: "/m", Allowed: []string{}, Disallowed: []string{".git", "notes.txt"}}
		require.NoError(t, ui.New(&buf, ui.FormatText).RenderReport(report))
		assert.Equal(t, "Invalid: /m has 2 disallowed entries:\n  .git\n  notes.txt\n", buf.String())
	})
}

func TestRenderDiff(t *testing.T) {
	var buf bytes.Buffer
	diff := &copier.Diff{Matched: 3, Missing: []string{"a"}, SizeMismatch: []string{"b"}}
	require.NoError(t, ui.New(&buf, ui.FormatText).RenderDiff(diff))
	assert.Equal(t, "Trees differ (3 files match)\n  missing a\n  size differs b\n", buf.String())

	buf.Reset()
	require.NoError(t, ui.New(&buf, ui.FormatText).RenderDiff(&copier.Diff{Matched: 2}))
	assert.Equal(t, "Trees match (2 files)\n", buf.String())
}

func TestRenderInfo(t *testing.T) {
	m := &bundle.Manifest{
		Name:        "reduce_loads",
		DisplayName: "Reduce Loads",
		Files: []bundle.ManifestFile{
			{Filename: "measure.rb", UsageType: "script"},
			{Filename: "helpers.rb", UsageType: "resource"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, ui.New(&buf, ui.FormatText).RenderInfo(m, []string{"resources/helpers.rb"}))
	out := buf.String()
	assert.Contains(t, out, "Reduce Loads\n")
	assert.Contains(t, out, "name: reduce_loads")
	assert.Contains(t, out, "Files (2)")
	assert.Contains(t, out, "measure.rb (script)")
	assert.Contains(t, out, "resources/helpers.rb (missing)")

	buf.Reset()
	require.NoError(t, ui.New(&buf, ui.FormatJSON).RenderInfo(m, nil))
	var got ui.InfoView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "reduce_loads", got.Manifest.Name)
	assert.Empty(t, got.Missing)
}

func TestRenderErrorAndMessage(t *testing.T) {
	var buf bytes.Buffer
	err := errors.New(errors.ErrSourceNotFound, "source missing")
	require.NoError(t, ui.New(&buf, ui.FormatJSON).RenderError(err))

	var got map[string]ui.ErrorView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "SOURCE_NOT_FOUND", got["error"].Code)

	buf.Reset()
	require.NoError(t, ui.New(&buf, ui.FormatText).RenderMessage("done"))
	assert.Equal(t, "done\n", buf.String())
}
