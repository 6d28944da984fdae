//go:build integration

package integration_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/bbpm-labs/bbpm/internal/vfs"
)

// testEnv holds an isolated filesystem root and a package-list server.
type testEnv struct {
	Root   string // directory backing the package filesystem
	FS     vfs.FS
	Server *httptest.Server
}

// setupTestEnv creates an isolated root and starts a server publishing one
// package list at /list.json and its files under /files/.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{Root: t.TempDir()}
	env.FS = vfs.NewOS(env.Root)

	mux := http.NewServeMux()
	mux.HandleFunc("/list.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, packageList, "http://"+r.Host)
	})
	mux.HandleFunc("/files/", func(w http.ResponseWriter, r *http.Request) {
		name := filepath.Base(r.URL.Path)
		if name == "missing.js" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, "// %s\n", name)
	})
	env.Server = httptest.NewServer(mux)
	t.Cleanup(env.Server.Close)

	return env
}

const packageList = `name: scripts
packages:
  - name: hack
    version: 1.0.0
    author: tester
    manifest:
      /hack.js: %[1]s/files/hack.js
      /lib/formulas.js: %[1]s/files/formulas.js
    dependencies:
      - scripts/util
  - name: util
    version: 0.3.0
    manifest:
      /lib/util.js: %[1]s/files/util.js
      /lib/optional.js: %[1]s/files/missing.js
`

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file at %s: %v", path, err)
		return
	}
	if info.IsDir() {
		t.Errorf("expected file at %s, got directory", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to not exist", path)
	}
}
