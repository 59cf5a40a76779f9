package rules

import (
	"sort"

	"github.com/arthur-debert/measurefs/pkg/paths"
	"github.com/arthur-debert/measurefs/pkg/types"
)

// ExclusionSet is an immutable set of relative entries to skip.
type ExclusionSet struct {
	patterns map[string]struct{}
}

// NewExclusionSet builds a set from patterns. Patterns are cleaned with
// paths.Clean; patterns that name the root are dropped.
func NewExclusionSet(patterns ...string) ExclusionSet {
	set := ExclusionSet{patterns: make(map[string]struct{}, len(patterns))}
	for _, p := range patterns {
		if c := paths.Clean(p); c != "" {
			set.patterns[c] = struct{}{}
		}
	}
	return set
}

// Excludes reports whether rel equals a pattern or lies beneath one.
func (s ExclusionSet) Excludes(rel string) bool {
	if len(s.patterns) == 0 || rel == "" {
		return false
	}
	prefix := ""
	for _, seg := range paths.Segments(rel) {
		prefix = paths.Child(prefix, seg)
		if _, ok := s.patterns[prefix]; ok {
			return true
		}
	}
	return false
}

// Len returns the number of patterns.
func (s ExclusionSet) Len() int {
	return len(s.patterns)
}

// Patterns returns the cleaned patterns in sorted order.
func (s ExclusionSet) Patterns() []string {
	out := make([]string, 0, len(s.patterns))
	for p := range s.patterns {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Predicate returns Excludes as a types.Predicate, or nil for an empty set.
func (s ExclusionSet) Predicate() types.Predicate {
	if len(s.patterns) == 0 {
		return nil
	}
	return s.Excludes
}

// Any excludes a path when any non-nil predicate does.
func Any(preds ...types.Predicate) types.Predicate {
	var live []types.Predicate
	for _, p := range preds {
		if p != nil {
			live = append(live, p)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	}
	return func(rel string) bool {
		for _, p := range live {
			if p(rel) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate. A nil predicate excludes nothing, so its
// inverse excludes everything.
func Not(pred types.Predicate) types.Predicate {
	if pred == nil {
		return func(string) bool { return true }
	}
	return func(rel string) bool { return !pred(rel) }
}
