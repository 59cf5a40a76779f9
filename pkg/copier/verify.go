package copier

import (
	"sort"

	"github.com/arthur-debert/measurefs/pkg/enumerate"
	"github.com/arthur-debert/measurefs/pkg/filesystem"
	"github.com/arthur-debert/measurefs/pkg/internal/hashutil"
	"github.com/arthur-debert/measurefs/pkg/types"
)

// Diff compares the regular files of two trees.
type Diff struct {
	// Matched counts entries present on both sides with equal sizes.
	Matched int `json:"matched" yaml:"matched" toml:"matched"`

	Missing      []string `json:"missing,omitempty" yaml:"missing,omitempty" toml:"missing,omitempty"`
	Extra        []string `json:"extra,omitempty" yaml:"extra,omitempty" toml:"extra,omitempty"`
	SizeMismatch []string `json:"size_mismatch,omitempty" yaml:"size_mismatch,omitempty" toml:"size_mismatch,omitempty"`

	// ContentMismatch is only filled by VerifyContent.
	ContentMismatch []string `json:"content_mismatch,omitempty" yaml:"content_mismatch,omitempty" toml:"content_mismatch,omitempty"`
}

// Equal reports whether both trees hold the same entries with the same sizes.
func (d *Diff) Equal() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0 && len(d.SizeMismatch) == 0 && len(d.ContentMismatch) == 0
}

// Verify enumerates source and destination recursively, applying exclude to
// both, and compares the relative entries and their byte sizes.
func Verify(fsys types.FS, source, destination string, exclude types.Predicate) (*Diff, error) {
	return compare(fsys, source, destination, exclude, false)
}

// VerifyContent is Verify that also compares SHA256 checksums of entries
// whose sizes match.
func VerifyContent(fsys types.FS, source, destination string, exclude types.Predicate) (*Diff, error) {
	return compare(fsys, source, destination, exclude, true)
}

func compare(fsys types.FS, source, destination string, exclude types.Predicate, content bool) (*Diff, error) {
	opts := enumerate.Options{Recursive: true, Exclude: exclude}
	src, err := enumerate.Paths(fsys, source, opts)
	if err != nil {
		return nil, err
	}
	dst, err := enumerate.Paths(fsys, destination, opts)
	if err != nil {
		return nil, err
	}

	diff := &Diff{}
	for _, rel := range sortedKeys(src) {
		srcPath := src[rel]
		dstPath, ok := dst[rel]
		if !ok {
			diff.Missing = append(diff.Missing, rel)
			continue
		}
		delete(dst, rel)

		srcSize, err := filesystem.Size(fsys, srcPath)
		if err != nil {
			return nil, err
		}
		dstSize, err := filesystem.Size(fsys, dstPath)
		if err != nil {
			return nil, err
		}
		if srcSize != dstSize {
			diff.SizeMismatch = append(diff.SizeMismatch, rel)
			continue
		}
		if content {
			same, err := hashutil.Equal(fsys, srcPath, dstPath)
			if err != nil {
				return nil, err
			}
			if !same {
				diff.ContentMismatch = append(diff.ContentMismatch, rel)
				continue
			}
		}
		diff.Matched++
	}
	diff.Extra = sortedKeys(dst)
	if len(diff.Extra) == 0 {
		diff.Extra = nil
	}
	return diff, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
