package registry

import (
	"fmt"

	"github.com/rs/zerolog"
	"go.trai.ch/zerr"

	"github.com/bbpm-labs/bbpm/internal/manifest"
	"github.com/bbpm-labs/bbpm/internal/store"
)

// RecordSource provides the cached package-list records a Catalog is built from.
type RecordSource interface {
	CachedRecords() ([]store.Record, error)
}

// SkippedRecord is a cached record left out of the catalog.
type SkippedRecord struct {
	Path string
	Err  error
}

// Catalog is the in-memory index of every known package list for one run.
// It is never mutated after construction.
type Catalog struct {
	lists   []*manifest.PackageList
	byName  map[string]*manifest.PackageList
	Skipped []SkippedRecord
}

// NewCatalog indexes lists in order. A list whose name was already taken is
// recorded in Skipped.
func NewCatalog(lists ...*manifest.PackageList) *Catalog {
	c := &Catalog{byName: make(map[string]*manifest.PackageList, len(lists))}
	for _, l := range lists {
		c.add("", l)
	}
	return c
}

// LoadCatalog parses every cached record. Records that fail to read or parse are
// logged, recorded in Skipped, and left out; the error return is reserved
// for failing to enumerate the cache at all.
func LoadCatalog(src RecordSource, log zerolog.Logger) (*Catalog, error) {
	records, err := src.CachedRecords()
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	c := &Catalog{byName: make(map[string]*manifest.PackageList, len(records))}
	for _, rec := range records {
		if rec.Err != nil {
			log.Warn().Err(rec.Err).Str("path", rec.Path).Msg("Skipping unreadable package list")
			c.Skipped = append(c.Skipped, SkippedRecord{Path: rec.Path, Err: rec.Err})
			continue
		}
		list, err := manifest.ParseList(rec.Data)
		if err != nil {
			log.Warn().Err(err).Str("path", rec.Path).Msg("Skipping unreadable package list")
			c.Skipped = append(c.Skipped, SkippedRecord{Path: rec.Path, Err: err})
			continue
		}
		if !c.add(rec.Path, list) {
			log.Warn().Str("path", rec.Path).Str("list", list.Name).Msg("Skipping duplicate package list")
		}
	}

	log.Debug().Int("lists", len(c.lists)).Int("skipped", len(c.Skipped)).Msg("Catalog loaded")
	return c, nil
}

func (c *Catalog) add(path string, l *manifest.PackageList) bool {
	if _, dup := c.byName[l.Name]; dup {
		c.Skipped = append(c.Skipped, SkippedRecord{
			Path: path,
			Err:  zerr.With(fmt.Errorf("%w: %s", ErrDuplicateList, l.Name), "path", path),
		})
		return false
	}
	c.byName[l.Name] = l
	c.lists = append(c.lists, l)
	return true
}

// Resolve finds the package a reference addresses. Malformed references and
// unknown lists or packages all report ok == false.
func (c *Catalog) Resolve(ref manifest.Reference) (*manifest.Package, bool) {
	listName, pkgName, ok := ref.Split()
	if !ok {
		return nil, false
	}
	list, ok := c.byName[listName]
	if !ok {
		return nil, false
	}
	pkg := list.Find(pkgName)
	return pkg, pkg != nil
}

// Lookup is Resolve for callers that want an error to report.
func (c *Catalog) Lookup(ref manifest.Reference) (*manifest.Package, error) {
	pkg, ok := c.Resolve(ref)
	if !ok {
		return nil, zerr.With(fmt.Errorf("%w: %s", ErrReferenceNotFound, ref), "ref", string(ref))
	}
	return pkg, nil
}

// Lists returns the indexed package lists in load order.
func (c *Catalog) Lists() []*manifest.PackageList {
	return c.lists
}

// References returns every package reference, by list then package order.
func (c *Catalog) References() []manifest.Reference {
	var refs []manifest.Reference
	for _, l := range c.lists {
		for _, p := range l.Packages {
			refs = append(refs, l.Reference(p))
		}
	}
	return refs
}
