// Package filesystem provides filesystem implementations for measurefs.
//
// This package contains implementations of the types.FS interface, the
// standard OS filesystem and an afero-backed one used with an in-memory
// store in tests, plus the small set of helpers built on top of the
// interface: type queries, single file copy and path canonicalisation.
package filesystem
