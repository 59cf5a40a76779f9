// Package testutil provides utilities for testing measurefs components.
//
// Key components:
//   - NewTestFS: afero-backed in-memory filesystem for fast, isolated tests
//   - FaultyFS: wraps any types.FS and injects errors for chosen paths
//   - fixtures: the nested source tree and measure bundle layouts shared by
//     enumerator, copier and bundle tests
//
// Tests that need real symlinks or parent-directory checks use t.TempDir()
// with filesystem.NewOS() instead.
package testutil
