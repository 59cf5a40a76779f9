package rules

import (
	"sort"

	"github.com/arthur-debert/measurefs/pkg/paths"
	"github.com/arthur-debert/measurefs/pkg/types"
)

// Default measure bundle layout.
var (
	DefaultApprovedRootFiles = []string{
		"measure.rb", "README.md", "README.md.erb",
		"LICENSE.md", "measure.xml", ".gitkeep",
	}
	DefaultApprovedFolders = []string{"docs", "resources", "tests"}
)

// Policy is the allow list for a measure bundle.
type Policy struct {
	rootFiles map[string]struct{}
	folders   map[string]struct{}
}

// NewPolicy builds a policy from root file names and top-level folder names.
func NewPolicy(approvedRootFiles, approvedFolders []string) Policy {
	return Policy{
		rootFiles: toSet(approvedRootFiles),
		folders:   toSet(approvedFolders),
	}
}

// DefaultPolicy returns the standard measure bundle policy.
func DefaultPolicy() Policy {
	return NewPolicy(DefaultApprovedRootFiles, DefaultApprovedFolders)
}

// IsAllowed reports whether rel may appear in a bundle. A root-level entry
// is allowed when its name is an approved root file; any entry whose first
// segment is an approved folder is allowed, the folder itself included.
// Dotfiles get no special treatment, so they pass only by exact name.
func (p Policy) IsAllowed(rel string) bool {
	rel = paths.Clean(rel)
	if rel == "" {
		return false
	}
	first := paths.FirstSegment(rel)
	if _, ok := p.folders[first]; ok {
		return true
	}
	if first == rel {
		_, ok := p.rootFiles[rel]
		return ok
	}
	return false
}

// Exclude returns the inverse of IsAllowed as an exclusion predicate.
func (p Policy) Exclude() types.Predicate {
	return func(rel string) bool { return !p.IsAllowed(rel) }
}

// ApprovedRootFiles returns the approved root file names, sorted.
func (p Policy) ApprovedRootFiles() []string { return fromSet(p.rootFiles) }

// ApprovedFolders returns the approved folder names, sorted.
func (p Policy) ApprovedFolders() []string { return fromSet(p.folders) }

// IsAllowed is the free-function form of Policy.IsAllowed.
func IsAllowed(rel string, approvedRootFiles, approvedFolders []string) bool {
	return NewPolicy(approvedRootFiles, approvedFolders).IsAllowed(rel)
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		if c := paths.Clean(it); c != "" {
			set[c] = struct{}{}
		}
	}
	return set
}

func fromSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
