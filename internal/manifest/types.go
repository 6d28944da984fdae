package manifest

import (
	"sort"
)

// Manifest maps a logical destination path to the URL its contents are
// downloaded from.
type Manifest map[string]string

// Paths returns the destination paths in sorted order.
func (m Manifest) Paths() []string {
	paths := make([]string, 0, len(m))
	for p := range m {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Package is a named bundle of files plus metadata and dependencies.
type Package struct {
	Name         string      `yaml:"name" json:"name"`
	Description  string      `yaml:"description" json:"description"`
	Version      string      `yaml:"version" json:"version"`
	Author       string      `yaml:"author" json:"author"`
	Dependencies []Reference `yaml:"dependencies" json:"dependencies"`
	Manifest     Manifest    `yaml:"manifest" json:"manifest"`
}

// PackageList is a named collection of packages fetched from one URL.
type PackageList struct {
	Name     string     `yaml:"name" json:"name"`
	Packages []*Package `yaml:"packages" json:"packages"`
}

// Find returns the package called name, or nil.
func (l *PackageList) Find(name string) *Package {
	for _, p := range l.Packages {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Reference returns the reference addressing pkg within this list.
func (l *PackageList) Reference(pkg *Package) Reference {
	return NewReference(l.Name, pkg.Name)
}
