package registry

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"

	"github.com/bbpm-labs/bbpm/internal/manifest"
)

// Resolver maps a reference to the package it addresses.
type Resolver interface {
	Resolve(ref manifest.Reference) (*manifest.Package, bool)
}

// Closure is the transitive dependency set of a root reference.
type Closure struct {
	Root manifest.Reference

	// Resolved holds every reachable reference that names a known package,
	// in first-discovery order with Root first.
	Resolved []manifest.Reference

	// Unresolvable holds reachable references that are malformed or unknown,
	// in first-discovery order.
	Unresolvable []manifest.Reference
}

// Close computes the closure of root. It never fails: cycles terminate
// because a reference is added and expanded at most once, and unknown
// references are collected instead of aborting the walk.
func Close(root manifest.Reference, r Resolver) *Closure {
	c := &Closure{Root: root}

	working := []manifest.Reference{root}
	member := map[manifest.Reference]bool{root: true}
	expanded := make(map[manifest.Reference]bool)

	for {
		size := len(working)
		for _, ref := range working[:size] {
			if expanded[ref] {
				continue
			}
			expanded[ref] = true

			pkg, ok := r.Resolve(ref)
			if !ok {
				continue
			}
			for _, dep := range pkg.Dependencies {
				if member[dep] {
					continue
				}
				member[dep] = true
				working = append(working, dep)
			}
		}
		if len(working) == size {
			break
		}
	}

	for _, ref := range working {
		if _, ok := r.Resolve(ref); ok {
			c.Resolved = append(c.Resolved, ref)
		} else {
			c.Unresolvable = append(c.Unresolvable, ref)
		}
	}
	return c
}

// OK reports whether every reference in the closure resolved.
func (c *Closure) OK() bool {
	return len(c.Unresolvable) == 0
}

// Err returns ErrUnresolvableDependencySet naming the unresolvable
// references, or nil.
func (c *Closure) Err() error {
	if c.OK() {
		return nil
	}
	names := make([]string, len(c.Unresolvable))
	for i, ref := range c.Unresolvable {
		names[i] = string(ref)
	}
	err := fmt.Errorf("%w: %s", ErrUnresolvableDependencySet, strings.Join(names, ", "))
	return zerr.With(err, "root", string(c.Root))
}

// Size is the number of references in the closure.
func (c *Closure) Size() int {
	return len(c.Resolved) + len(c.Unresolvable)
}
