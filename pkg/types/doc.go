// Package types defines the core interfaces shared by measurefs packages.
//
// The FS interface is the single filesystem boundary: enumeration, copying,
// and bundle validation only ever touch the disk through it, so the host
// filesystem can be swapped for an in-memory one in tests.
package types
