package registry

import (
	"fmt"

	"github.com/bbpm-labs/bbpm/internal/manifest"
)

// FileRemover deletes files.
type FileRemover interface {
	Exists(name string) bool
	Remove(name string) error
}

// RemoveReport is the outcome of removing one package's files. Every slice
// is in sorted manifest path order.
type RemoveReport struct {
	Ref     manifest.Reference
	Removed []string
	Absent  []string
	Failed  []FileResult
}

// Remove deletes the normalized manifest paths of ref. The ledger is left
// untouched, so a removed package still appears as installed.
func Remove(ref manifest.Reference, r Resolver, fs FileRemover) (*RemoveReport, error) {
	pkg, ok := r.Resolve(ref)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrReferenceNotFound, ref)
	}

	report := &RemoveReport{Ref: ref}
	for _, dest := range pkg.Manifest.Paths() {
		target := NormalizePath(dest)
		if !fs.Exists(target) {
			report.Absent = append(report.Absent, target)
			continue
		}
		if err := fs.Remove(target); err != nil {
			report.Failed = append(report.Failed, FileResult{
				Ref:    ref,
				Path:   dest,
				Target: target,
				Err:    fmt.Errorf("removing %s: %w", target, err),
			})
			continue
		}
		report.Removed = append(report.Removed, target)
	}
	return report, nil
}
