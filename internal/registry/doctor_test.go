package registry

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbpm-labs/bbpm/internal/manifest"
	"github.com/bbpm-labs/bbpm/internal/store"
	"github.com/bbpm-labs/bbpm/internal/vfs"
)

func doctorFixture(t *testing.T) (vfs.FS, *store.Store, *Doctor) {
	t.Helper()
	fs := vfs.NewMemory()
	st := store.New(fs)

	require.NoError(t, st.CacheList(&manifest.PackageList{
		Name: "core",
		Packages: []*manifest.Package{{
			Name:     "tool",
			Manifest: manifest.Manifest{"/tool.js": "https://x/tool.js", "/lib/a.js": "https://x/a.js"},
		}},
	}))
	require.NoError(t, fs.Write(store.CachePath("junk"), "::"))
	require.NoError(t, st.SaveLedger([]manifest.Reference{"core/tool", "gone/pkg"}))
	require.NoError(t, fs.Write("tool.js", "x"))

	now := time.Unix(1_700_000_000, 0)
	require.NoError(t, st.MarkRefreshed(now))

	d := &Doctor{
		Store:      st,
		FS:         fs,
		DefaultURL: "https://default/list.json",
		MaxAge:     time.Hour,
		Now:        func() time.Time { return now },
	}
	return fs, st, d
}

func TestDoctorReports(t *testing.T) {
	_, st, d := doctorFixture(t)

	c, err := LoadCatalog(st, zerolog.Nop())
	require.NoError(t, err)

	var buf bytes.Buffer
	problems, err := d.Check(&buf, c, false)
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 4, problems, out)
	assert.Contains(t, out, "[WARN] "+store.SourcesFile+" lists no package list URLs")
	assert.Contains(t, out, "[WARN] "+store.CachePath("junk"))
	assert.Contains(t, out, "[WARN] core/tool is missing 1 of 2 file(s)")
	assert.Contains(t, out, "         /lib/a.js")
	assert.Contains(t, out, "[MISS] gone/pkg")
}

func TestDoctorFix(t *testing.T) {
	fs, st, d := doctorFixture(t)

	c, err := LoadCatalog(st, zerolog.Nop())
	require.NoError(t, err)

	var buf bytes.Buffer
	problems, err := d.Check(&buf, c, true)
	require.NoError(t, err)
	assert.Equal(t, 2, problems, buf.String())

	urls, err := st.Sources()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://default/list.json"}, urls)
	assert.False(t, fs.Exists(store.CachePath("junk")))
}

func TestDoctorStale(t *testing.T) {
	_, st, d := doctorFixture(t)
	require.NoError(t, st.SetSources([]string{"https://x/list.json"}))
	d.Now = func() time.Time { return time.Unix(1_700_000_000, 0).Add(2 * time.Hour) }

	var buf bytes.Buffer
	_, err := d.Check(&buf, NewCatalog(), false)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "package lists last updated")
}
