package bundle

import (
	"sort"

	"github.com/arthur-debert/measurefs/pkg/copier"
	"github.com/arthur-debert/measurefs/pkg/enumerate"
	"github.com/arthur-debert/measurefs/pkg/rules"
	"github.com/arthur-debert/measurefs/pkg/types"
)

// Report is the outcome of validating a bundle against a policy.
type Report struct {
	Root string `json:"root" yaml:"root" toml:"root"`

	// Allowed lists the regular files the policy accepts.
	Allowed []string `json:"allowed" yaml:"allowed" toml:"allowed"`

	// Disallowed lists rejected entries. A rejected directory appears once
	// and its contents are not listed.
	Disallowed []string `json:"disallowed" yaml:"disallowed" toml:"disallowed"`
}

// Valid reports whether nothing was rejected.
func (r *Report) Valid() bool {
	return len(r.Disallowed) == 0
}

// Validate walks root and sorts every entry into allowed or disallowed.
func Validate(fsys types.FS, root string, policy rules.Policy) (*Report, error) {
	report := &Report{Root: root, Allowed: []string{}, Disallowed: []string{}}

	exclude := func(rel string) bool {
		if policy.IsAllowed(rel) {
			return false
		}
		report.Disallowed = append(report.Disallowed, rel)
		return true
	}

	seq, err := enumerate.Enumerate(fsys, root, enumerate.Options{Recursive: true, Exclude: exclude})
	if err != nil {
		return nil, err
	}
	for rel, err := range seq {
		if err != nil {
			return nil, err
		}
		report.Allowed = append(report.Allowed, rel)
	}

	sort.Strings(report.Allowed)
	sort.Strings(report.Disallowed)
	return report, nil
}

// Stage copies the approved content of source into the nonexistent
// destination. Entries matched by ignore are left out as well, even when
// the policy allows them.
func Stage(c *copier.Copier, source, destination string, policy rules.Policy, ignore rules.ExclusionSet) *copier.Result {
	exclude := rules.Any(policy.Exclude(), ignore.Predicate())
	return c.CopyTree(source, destination, copier.Options{Exclude: exclude})
}
