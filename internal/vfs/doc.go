// Package vfs is the key-value style filesystem the package manager reads
// and writes through. Paths are slash-separated and rooted at "/"; the
// backing store is an afero filesystem, either a base-path view of the real
// disk or an in-memory map for tests.
package vfs
