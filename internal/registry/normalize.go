package registry

import "strings"

// NormalizePath maps a manifest destination to its on-disk name with two
// literal rules, both tested against the input path:
//
//  1. if nothing after the first character contains "/", drop the first
//     character;
//  2. otherwise, if the path does not start with "/", prepend one.
//
// Rule 1 drops the first character whether or not it is a "/", so "a.js"
// becomes ".js". Existing manifests may rely on that, so it is kept.
//
//	"/x.js"     -> "x.js"
//	"dir/x.js"  -> "/dir/x.js"
//	"/dir/x.js" -> "/dir/x.js"
//	"a.js"      -> ".js"
func NormalizePath(p string) string {
	if p == "" {
		return p
	}
	rest := p[1:]
	if !strings.Contains(rest, "/") {
		return rest
	}
	if p[0] != '/' {
		return "/" + p
	}
	return p
}
