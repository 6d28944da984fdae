package registry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bbpm-labs/bbpm/internal/fetch"
	"github.com/bbpm-labs/bbpm/internal/manifest"
	"github.com/bbpm-labs/bbpm/internal/store"
)

// ListStore caches fetched package lists.
type ListStore interface {
	CachedList(name string) (store.Record, bool, error)
	CacheList(list *manifest.PackageList) error
	MarkRefreshed(t time.Time) error
}

// SourceResult is the outcome of refreshing one source URL.
type SourceResult struct {
	URL      string
	List     string
	Packages int
	Changes  []VersionChange
	Err      error
}

// PullReport is the outcome of a refresh across all sources.
type PullReport struct {
	Sources []SourceResult
}

// Updated returns the sources that were cached.
func (r *PullReport) Updated() []SourceResult {
	var out []SourceResult
	for _, s := range r.Sources {
		if s.Err == nil {
			out = append(out, s)
		}
	}
	return out
}

// Failed returns the sources that were skipped.
func (r *PullReport) Failed() []SourceResult {
	var out []SourceResult
	for _, s := range r.Sources {
		if s.Err != nil {
			out = append(out, s)
		}
	}
	return out
}

// Refresher fetches package lists from their sources into the cache.
type Refresher struct {
	fetcher fetch.Fetcher
	store   ListStore
	log     zerolog.Logger
	now     func() time.Time
}

// NewRefresher returns a Refresher caching into st.
func NewRefresher(fetcher fetch.Fetcher, st ListStore, log zerolog.Logger) *Refresher {
	return &Refresher{fetcher: fetcher, store: st, log: log, now: time.Now}
}

// Pull fetches every URL in order. A source that fails to download, parse,
// or cache is logged and skipped; the rest are still refreshed.
func (rf *Refresher) Pull(ctx context.Context, urls []string) *PullReport {
	report := &PullReport{}
	for _, url := range urls {
		url = strings.TrimSpace(url)
		if url == "" {
			continue
		}
		res := rf.pullOne(ctx, url)
		if res.Err != nil {
			rf.log.Warn().Err(res.Err).Str("url", url).Msg("Skipping package list source")
		} else {
			rf.log.Info().Str("url", url).Str("list", res.List).Int("packages", res.Packages).Msg("Package list updated")
		}
		report.Sources = append(report.Sources, res)
	}

	if err := rf.store.MarkRefreshed(rf.now()); err != nil {
		rf.log.Warn().Err(err).Msg("Could not record refresh time")
	}
	return report
}

func (rf *Refresher) pullOne(ctx context.Context, url string) SourceResult {
	res := SourceResult{URL: url}

	resp, err := rf.fetcher.Get(ctx, url)
	if err != nil {
		res.Err = err
		return res
	}
	if !resp.OK() {
		res.Err = fmt.Errorf("%w: status %d", fetch.ErrTransportFailure, resp.StatusCode)
		return res
	}

	list, err := manifest.ParseList([]byte(resp.Body))
	if err != nil {
		res.Err = err
		return res
	}
	res.List = list.Name
	res.Packages = len(list.Packages)

	if rec, ok, err := rf.store.CachedList(list.Name); err == nil && ok {
		if prev, err := manifest.ParseList(rec.Data); err == nil {
			res.Changes = DiffLists(prev, list)
		}
	}

	if err := rf.store.CacheList(list); err != nil {
		res.Err = fmt.Errorf("caching %s: %w", list.Name, err)
	}
	return res
}
