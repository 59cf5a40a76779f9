// Package rules provides the path predicates used to filter bundle trees.
//
// Two kinds of rule exist:
//
//   - An ExclusionSet is a deny list of relative entries. A pattern names a
//     file or a directory; a directory pattern covers everything beneath it.
//     Matching is by whole segments, so ".git" excludes ".git/index" but not
//     ".gitkeep".
//   - A Policy is an allow list for a measure bundle: a fixed set of
//     root-level file names plus a set of top-level folders whose entire
//     contents are allowed.
//
// Both reduce to a types.Predicate that reports exclusion, which is what the
// enumerator and the tree copier consume. Rules are pure functions of the
// path string and never touch the filesystem.
//
// # Configuration
//
// The default bundle policy can be overridden in config:
//
//	[bundle]
//	approved_root_files = ["measure.rb", "measure.xml", "README.md"]
//	approved_folders = ["docs", "resources", "tests"]
//
//	[copy]
//	ignore = [".git"]
//
//	[stage]
//	ignore = ["tests/output"]
package rules
