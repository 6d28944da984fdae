package registry

import (
	"fmt"
	"io"
	"time"

	"github.com/bbpm-labs/bbpm/internal/manifest"
	"github.com/bbpm-labs/bbpm/internal/store"
	"github.com/bbpm-labs/bbpm/internal/vfs"
)

// Doctor checks the package filesystem for problems a user can act on.
type Doctor struct {
	Store      *store.Store
	FS         vfs.FS
	DefaultURL string
	MaxAge     time.Duration
	Now        func() time.Time
}

// Check writes one line per finding to w and returns the number of problems
// left unfixed. With fix set, it seeds an empty source list with DefaultURL
// and deletes cache records that do not parse. Installed packages with
// missing files are only reported.
func (d *Doctor) Check(w io.Writer, c *Catalog, fix bool) (int, error) {
	problems := 0

	fmt.Fprintln(w, "Sources:")
	urls, err := d.Store.Sources()
	if err != nil {
		return 0, err
	}
	if len(urls) == 0 {
		fmt.Fprintf(w, "  [WARN] %s lists no package list URLs\n", store.SourcesFile)
		if fix {
			if err := d.Store.SetSources([]string{d.DefaultURL}); err != nil {
				return 0, err
			}
			fmt.Fprintf(w, "  [FIX ] Added %s\n", d.DefaultURL)
		} else {
			problems++
		}
	} else {
		fmt.Fprintf(w, "  [ OK ] %d source(s) configured\n", len(urls))
	}

	fmt.Fprintln(w, "Cache:")
	for _, s := range c.Skipped {
		fmt.Fprintf(w, "  [WARN] %s: %v\n", s.Path, s.Err)
		if fix && s.Path != "" {
			if err := d.FS.Remove(s.Path); err != nil {
				fmt.Fprintf(w, "  [FAIL] Could not remove %s: %v\n", s.Path, err)
				problems++
				continue
			}
			fmt.Fprintf(w, "  [FIX ] Removed %s\n", s.Path)
			continue
		}
		problems++
	}
	fmt.Fprintf(w, "  [ OK ] %d package list(s) readable\n", len(c.Lists()))

	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	if last := d.Store.LastRefreshed(); last.IsZero() {
		fmt.Fprintln(w, "  [WARN] package lists were never updated")
		problems++
	} else if d.Store.IsStale(d.MaxAge, now()) {
		fmt.Fprintf(w, "  [WARN] package lists last updated %s\n", last.Format(time.RFC3339))
		problems++
	}

	fmt.Fprintln(w, "Installed packages:")
	refs, err := d.Store.Ledger()
	if err != nil {
		return 0, err
	}
	if len(refs) == 0 {
		fmt.Fprintln(w, "  [ OK ] nothing installed")
	}
	for _, ref := range refs {
		problems += d.checkInstalled(w, ref, c)
	}

	return problems, nil
}

func (d *Doctor) checkInstalled(w io.Writer, ref manifest.Reference, c *Catalog) int {
	pkg, ok := c.Resolve(ref)
	if !ok {
		fmt.Fprintf(w, "  [MISS] %s is not in any cached package list\n", ref)
		return 1
	}

	var missing []string
	for _, dest := range pkg.Manifest.Paths() {
		if target := NormalizePath(dest); !d.FS.Exists(target) {
			missing = append(missing, target)
		}
	}
	if len(missing) == 0 {
		fmt.Fprintf(w, "  [ OK ] %s\n", ref)
		return 0
	}
	fmt.Fprintf(w, "  [WARN] %s is missing %d of %d file(s)\n", ref, len(missing), len(pkg.Manifest))
	for _, m := range missing {
		fmt.Fprintf(w, "         %s\n", m)
	}
	return 1
}
