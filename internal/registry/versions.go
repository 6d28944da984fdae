package registry

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/bbpm-labs/bbpm/internal/manifest"
)

// VersionChange describes a package whose version differs between two
// copies of the same list.
type VersionChange struct {
	Ref     manifest.Reference
	From    string
	To      string
	Upgrade bool
}

// CompareVersions compares two version strings using semver when both parse
// (with or without a "v" prefix) and plain string comparison otherwise.
func CompareVersions(a, b string) int {
	va, errA := parseVersion(a)
	vb, errB := parseVersion(b)
	if errA == nil && errB == nil {
		return va.Compare(vb)
	}
	return strings.Compare(a, b)
}

func parseVersion(v string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(v), "v"))
}

// DiffLists reports packages present in both lists whose version changed,
// in the order of next.
func DiffLists(prev, next *manifest.PackageList) []VersionChange {
	if prev == nil || next == nil {
		return nil
	}

	var changes []VersionChange
	for _, pkg := range next.Packages {
		old := prev.Find(pkg.Name)
		if old == nil || old.Version == pkg.Version {
			continue
		}
		changes = append(changes, VersionChange{
			Ref:     next.Reference(pkg),
			From:    old.Version,
			To:      pkg.Version,
			Upgrade: CompareVersions(old.Version, pkg.Version) < 0,
		})
	}
	return changes
}
