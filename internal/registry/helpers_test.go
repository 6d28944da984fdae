package registry

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bbpm-labs/bbpm/internal/fetch"
	"github.com/bbpm-labs/bbpm/internal/manifest"
)

// stubFetcher serves canned bodies by URL; unknown URLs return 404.
type stubFetcher struct {
	bodies map[string]string
	errs   map[string]error
	calls  []string
}

func (s *stubFetcher) Get(_ context.Context, url string) (*fetch.Response, error) {
	s.calls = append(s.calls, url)
	if err, ok := s.errs[url]; ok {
		return nil, err
	}
	body, ok := s.bodies[url]
	if !ok {
		return &fetch.Response{StatusCode: http.StatusNotFound}, nil
	}
	return &fetch.Response{StatusCode: http.StatusOK, Body: body}, nil
}

type memLedger struct {
	recorded []manifest.Reference
	err      error
}

func (m *memLedger) RecordInstalled(refs []manifest.Reference) error {
	if m.err != nil {
		return m.err
	}
	m.recorded = append(m.recorded, refs...)
	return nil
}

func pkg(name string, deps ...manifest.Reference) *manifest.Package {
	return &manifest.Package{Name: name, Version: "1.0.0", Dependencies: deps}
}

// coreCatalog has core/base (no deps) and core/tool -> core/base.
func coreCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := NewCatalog(&manifest.PackageList{
		Name: "core",
		Packages: []*manifest.Package{
			pkg("base"),
			pkg("tool", "core/base"),
		},
	})
	require.Empty(t, c.Skipped)
	return c
}
