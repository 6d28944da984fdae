package registry

import "go.trai.ch/zerr"

var (
	// ErrReferenceNotFound is returned when a reference does not resolve to a
	// package in the catalog.
	ErrReferenceNotFound = zerr.New("package not found")

	// ErrUnresolvableDependencySet is returned when a closure contains
	// references that cannot be resolved; nothing is installed.
	ErrUnresolvableDependencySet = zerr.New("unresolvable dependencies")

	// ErrDuplicateList is recorded when two cached records declare the same
	// list name.
	ErrDuplicateList = zerr.New("duplicate package list")
)
