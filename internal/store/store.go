package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bbpm-labs/bbpm/internal/manifest"
	"github.com/bbpm-labs/bbpm/internal/vfs"
)

// Record is one cached package-list payload. Err is set when the record
// could not be read; Data is then empty.
type Record struct {
	Path string
	Data []byte
	Err  error
}

// Store reads and writes persisted state through a vfs.FS.
type Store struct {
	fs vfs.FS
}

// New creates a Store backed by fs.
func New(fs vfs.FS) *Store {
	return &Store{fs: fs}
}

// Init creates the sources file and the ledger when either is missing. The
// sources file is seeded with defaultURL. It reports whether anything was
// written.
func (s *Store) Init(defaultURL string) (bool, error) {
	if s.fs.Exists(SourcesFile) && s.fs.Exists(LedgerFile) {
		return false, nil
	}
	if !s.fs.Exists(SourcesFile) {
		if err := s.fs.Write(SourcesFile, defaultURL); err != nil {
			return false, fmt.Errorf("writing %s: %w", SourcesFile, err)
		}
	}
	if !s.fs.Exists(LedgerFile) {
		if err := s.fs.Write(LedgerFile, ""); err != nil {
			return false, fmt.Errorf("writing %s: %w", LedgerFile, err)
		}
	}
	return true, nil
}

// Sources returns the configured package-list URLs, skipping blank lines.
// A missing sources file yields no URLs.
func (s *Store) Sources() ([]string, error) {
	text, err := s.readOptional(SourcesFile)
	if err != nil {
		return nil, err
	}
	var urls []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			urls = append(urls, line)
		}
	}
	return urls, nil
}

// SetSources replaces the configured package-list URLs.
func (s *Store) SetSources(urls []string) error {
	if err := s.fs.Write(SourcesFile, strings.Join(urls, "\n")); err != nil {
		return fmt.Errorf("writing %s: %w", SourcesFile, err)
	}
	return nil
}

// Ledger returns the installed references with blanks and duplicates removed.
func (s *Store) Ledger() ([]manifest.Reference, error) {
	text, err := s.readOptional(LedgerFile)
	if err != nil {
		return nil, err
	}
	return manifest.ParseReferences(text), nil
}

// SaveLedger rewrites the ledger with refs, dropping blanks and duplicates.
func (s *Store) SaveLedger(refs []manifest.Reference) error {
	if err := s.fs.Write(LedgerFile, manifest.JoinReferences(refs)); err != nil {
		return fmt.Errorf("writing %s: %w", LedgerFile, err)
	}
	return nil
}

// RecordInstalled unions refs into the ledger.
func (s *Store) RecordInstalled(refs []manifest.Reference) error {
	current, err := s.Ledger()
	if err != nil {
		return err
	}
	return s.SaveLedger(append(current, refs...))
}

// CacheList stores a package list under its declared name, replacing any
// previous record for that name.
func (s *Store) CacheList(list *manifest.PackageList) error {
	data, err := manifest.MarshalList(list)
	if err != nil {
		return err
	}
	p := CachePath(list.Name)
	if err := s.fs.Write(p, string(data)); err != nil {
		return fmt.Errorf("caching package list %s: %w", list.Name, err)
	}
	return nil
}

// CachedList returns the cached record for a list name. ok is false when no
// record exists.
func (s *Store) CachedList(name string) (rec Record, ok bool, err error) {
	p := CachePath(name)
	if !s.fs.Exists(p) {
		return Record{}, false, nil
	}
	text, err := s.fs.Read(p)
	if err != nil {
		return Record{}, false, fmt.Errorf("reading %s: %w", p, err)
	}
	return Record{Path: p, Data: []byte(text)}, true, nil
}

// CachedRecords returns every cached package-list record in path order. A
// record that cannot be read is returned with Err set; the error return is
// reserved for failing to list the cache directory.
func (s *Store) CachedRecords() ([]Record, error) {
	paths, err := s.fs.List(CacheDir)
	if err != nil {
		return nil, fmt.Errorf("listing package list cache: %w", err)
	}
	records := make([]Record, 0, len(paths))
	for _, p := range paths {
		text, err := s.fs.Read(p)
		if err != nil {
			records = append(records, Record{Path: p, Err: fmt.Errorf("reading %s: %w", p, err)})
			continue
		}
		records = append(records, Record{Path: p, Data: []byte(text)})
	}
	return records, nil
}

// MarkRefreshed records t as the time of the last package-list refresh.
func (s *Store) MarkRefreshed(t time.Time) error {
	ts := strconv.FormatInt(t.Unix(), 10)
	if err := s.fs.Write(freshnessFile, ts); err != nil {
		return fmt.Errorf("writing refresh marker: %w", err)
	}
	return nil
}

// LastRefreshed returns the time of the last refresh, or the zero time if
// lists were never refreshed or the marker is unreadable.
func (s *Store) LastRefreshed() time.Time {
	text, err := s.fs.Read(freshnessFile)
	if err != nil {
		return time.Time{}
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(ts, 0)
}

// IsStale returns true if the lists were last refreshed more than maxAge ago,
// or never.
func (s *Store) IsStale(maxAge time.Duration, now time.Time) bool {
	last := s.LastRefreshed()
	if last.IsZero() {
		return true
	}
	return now.Sub(last) > maxAge
}

func (s *Store) readOptional(p string) (string, error) {
	if !s.fs.Exists(p) {
		return "", nil
	}
	text, err := s.fs.Read(p)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", p, err)
	}
	return text, nil
}
