// Package bundle implements the measure bundle operations built on the
// enumerator, the copier and the allow-list policy.
//
// A measure bundle is a directory holding a fixed set of approved root
// files (measure.rb, measure.xml, README.md, ...) and approved folders
// (docs, resources, tests) with arbitrary content below them. Validate
// reports what a bundle holds outside that layout, Stage copies only the
// approved content, and ReadManifest reads the measure.xml descriptor so
// its file list can be checked against the tree.
package bundle
