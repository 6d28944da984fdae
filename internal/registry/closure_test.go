package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbpm-labs/bbpm/internal/manifest"
)

func TestClose(t *testing.T) {
	c := NewCatalog(
		&manifest.PackageList{Name: "core", Packages: []*manifest.Package{
			pkg("base"),
			pkg("tool", "core/base"),
		}},
		&manifest.PackageList{Name: "cyc", Packages: []*manifest.Package{
			pkg("a", "cyc/b"),
			pkg("b", "cyc/a"),
			pkg("self", "cyc/self"),
		}},
		&manifest.PackageList{Name: "deep", Packages: []*manifest.Package{
			pkg("top", "deep/left", "deep/right"),
			pkg("left", "deep/leaf"),
			pkg("right", "deep/leaf", "deep/gone"),
			pkg("leaf"),
		}},
		&manifest.PackageList{Name: "bad", Packages: []*manifest.Package{
			pkg("broken", "core/base", "not-a-ref", "core/missing"),
		}},
	)

	tests := []struct {
		name         string
		root         manifest.Reference
		resolved     []manifest.Reference
		unresolvable []manifest.Reference
	}{
		{
			name:     "no dependencies",
			root:     "core/base",
			resolved: []manifest.Reference{"core/base"},
		},
		{
			name:     "first discovery order",
			root:     "core/tool",
			resolved: []manifest.Reference{"core/tool", "core/base"},
		},
		{
			name:     "two-package cycle",
			root:     "cyc/a",
			resolved: []manifest.Reference{"cyc/a", "cyc/b"},
		},
		{
			name:     "self cycle",
			root:     "cyc/self",
			resolved: []manifest.Reference{"cyc/self"},
		},
		{
			name:         "missing root",
			root:         "core/nope",
			unresolvable: []manifest.Reference{"core/nope"},
		},
		{
			name:         "diamond with missing leaf",
			root:         "deep/top",
			resolved:     []manifest.Reference{"deep/top", "deep/left", "deep/right", "deep/leaf"},
			unresolvable: []manifest.Reference{"deep/gone"},
		},
		{
			name:         "malformed dependency",
			root:         "bad/broken",
			resolved:     []manifest.Reference{"bad/broken", "core/base"},
			unresolvable: []manifest.Reference{"not-a-ref", "core/missing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Close(tt.root, c)
			assert.Equal(t, tt.root, got.Root)
			assert.Equal(t, tt.resolved, got.Resolved)
			assert.Equal(t, tt.unresolvable, got.Unresolvable)
			assert.Equal(t, len(tt.unresolvable) == 0, got.OK())
			assert.Equal(t, len(tt.resolved)+len(tt.unresolvable), got.Size())
		})
	}
}

func TestClosureErr(t *testing.T) {
	ok := &Closure{Root: "core/base", Resolved: []manifest.Reference{"core/base"}}
	assert.NoError(t, ok.Err())

	bad := &Closure{Root: "x/y", Unresolvable: []manifest.Reference{"x/y", "x/z"}}
	err := bad.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnresolvableDependencySet))
	assert.Contains(t, err.Error(), "x/y, x/z")
}
