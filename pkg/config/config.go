package config

import (
	"github.com/arthur-debert/measurefs/pkg/rules"
)

// Config is the decoded measurefs configuration.
type Config struct {
	Bundle    Bundle    `koanf:"bundle" json:"bundle" yaml:"bundle" toml:"bundle"`
	Copy      Copy      `koanf:"copy" json:"copy" yaml:"copy" toml:"copy"`
	Stage     Stage     `koanf:"stage" json:"stage" yaml:"stage" toml:"stage"`
	Enumerate Enumerate `koanf:"enumerate" json:"enumerate" yaml:"enumerate" toml:"enumerate"`
}

// Bundle holds the allow-list applied to measure bundles.
type Bundle struct {
	ApprovedRootFiles []string `koanf:"approved_root_files" json:"approved_root_files" yaml:"approved_root_files" toml:"approved_root_files"`
	ApprovedFolders   []string `koanf:"approved_folders" json:"approved_folders" yaml:"approved_folders" toml:"approved_folders"`
}

// Copy holds tree copy settings.
type Copy struct {
	Ignore        []string `koanf:"ignore" json:"ignore" yaml:"ignore" toml:"ignore"`
	CreateParents bool     `koanf:"create_parents" json:"create_parents" yaml:"create_parents" toml:"create_parents"`
}

// Stage holds bundle staging settings.
type Stage struct {
	Ignore []string `koanf:"ignore" json:"ignore" yaml:"ignore" toml:"ignore"`
}

// Enumerate holds listing settings.
type Enumerate struct {
	Exclude []string `koanf:"exclude" json:"exclude" yaml:"exclude" toml:"exclude"`
}

// Policy builds the bundle allow-list.
func (c *Config) Policy() rules.Policy {
	return rules.NewPolicy(c.Bundle.ApprovedRootFiles, c.Bundle.ApprovedFolders)
}

// CopyExclusions returns the entries every copy leaves out.
func (c *Config) CopyExclusions() rules.ExclusionSet {
	return rules.NewExclusionSet(c.Copy.Ignore...)
}

// StageExclusions returns the entries staging leaves out besides those the
// allow-list rejects. It includes the copy exclusions.
func (c *Config) StageExclusions() rules.ExclusionSet {
	patterns := append(append([]string{}, c.Copy.Ignore...), c.Stage.Ignore...)
	return rules.NewExclusionSet(patterns...)
}

// EnumerateExclusions returns the entries listings leave out.
func (c *Config) EnumerateExclusions() rules.ExclusionSet {
	return rules.NewExclusionSet(c.Enumerate.Exclude...)
}
