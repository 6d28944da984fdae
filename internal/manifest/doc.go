// Package manifest defines package lists, packages and references, and
// handles parsing and JSON Schema validation of package-list records as
// they are fetched from sources or read back from the cache.
package manifest
