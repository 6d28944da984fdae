// Package registry is the resolution and installation engine. It builds a
// Catalog from cached package lists, expands a requested reference into its
// dependency closure, installs the closure's manifest files, removes a
// package's files, and refreshes the package-list cache from its sources.
package registry
