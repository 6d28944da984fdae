//go:build integration

package integration_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bbpm-labs/bbpm/internal/fetch"
	"github.com/bbpm-labs/bbpm/internal/manifest"
	"github.com/bbpm-labs/bbpm/internal/registry"
	"github.com/bbpm-labs/bbpm/internal/store"
)

func TestPullInstallRemoveOnDisk(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	st := store.New(env.FS)

	if _, err := st.Init(env.Server.URL + "/list.json"); err != nil {
		t.Fatalf("Init: %v", err)
	}
	assertFileExists(t, filepath.Join(env.Root, "etc/bbpm/pkl_url_list.txt"))
	assertFileExists(t, filepath.Join(env.Root, "etc/bbpm/installed_packages.txt"))

	urls, err := st.Sources()
	if err != nil {
		t.Fatalf("Sources: %v", err)
	}

	fetcher := fetch.New()
	report := registry.NewRefresher(fetcher, st, zerolog.Nop()).Pull(ctx, urls)
	if len(report.Updated()) != 1 {
		t.Fatalf("expected 1 updated list, got %+v", report.Sources)
	}
	assertFileExists(t, filepath.Join(env.Root, "etc/bbpm/cache/package_lists/scripts.json"))

	catalog, err := registry.LoadCatalog(st, zerolog.Nop())
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	closure, install, err := registry.NewInstaller(fetcher, env.FS, st).InstallReference(ctx, "scripts/hack", catalog)
	if err != nil {
		t.Fatalf("InstallReference: %v", err)
	}
	if got := closure.Resolved; len(got) != 2 || got[0] != "scripts/hack" || got[1] != "scripts/util" {
		t.Errorf("closure = %v", got)
	}
	if install.FailedFiles() != 1 {
		t.Errorf("FailedFiles = %d, want 1", install.FailedFiles())
	}

	assertFileExists(t, filepath.Join(env.Root, "hack.js"))
	assertFileExists(t, filepath.Join(env.Root, "lib/formulas.js"))
	assertFileExists(t, filepath.Join(env.Root, "lib/util.js"))
	assertNotExists(t, filepath.Join(env.Root, "lib/optional.js"))

	data, err := os.ReadFile(filepath.Join(env.Root, "etc/bbpm/installed_packages.txt"))
	if err != nil {
		t.Fatalf("reading ledger: %v", err)
	}
	if got := manifest.ParseReferences(string(data)); len(got) != 2 {
		t.Errorf("ledger = %q", data)
	}

	removed, err := registry.Remove("scripts/hack", catalog, env.FS)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(removed.Removed) != 2 {
		t.Errorf("Removed = %v", removed.Removed)
	}
	assertNotExists(t, filepath.Join(env.Root, "hack.js"))
	assertFileExists(t, filepath.Join(env.Root, "lib/util.js"))
}
