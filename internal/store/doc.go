// Package store owns the state that outlives a single run: the configured
// package-list URLs, the install ledger, and the package-list cache. Every
// accessor re-reads the backing file and every mutation rewrites it whole;
// there is no locking, so concurrent runs are last-writer-wins.
package store
