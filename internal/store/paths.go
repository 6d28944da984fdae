package store

import "path"

// Fixed layout inside the virtual filesystem.
const (
	StateDir      = "/etc/bbpm"
	SourcesFile   = StateDir + "/pkl_url_list.txt"
	LedgerFile    = StateDir + "/installed_packages.txt"
	CacheDir      = StateDir + "/cache/package_lists"
	freshnessFile = StateDir + "/cache/.updated"

	cacheExt = ".json"
)

// CachePath returns the cache record path for a package list name.
func CachePath(listName string) string {
	return path.Join(CacheDir, listName+cacheExt)
}
