package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bbpm-labs/bbpm/internal/branding"
	"github.com/bbpm-labs/bbpm/internal/config"
	"github.com/bbpm-labs/bbpm/internal/fetch"
	"github.com/bbpm-labs/bbpm/internal/logging"
	"github.com/bbpm-labs/bbpm/internal/registry"
	"github.com/bbpm-labs/bbpm/internal/store"
	"github.com/bbpm-labs/bbpm/internal/vfs"
)

// openFS opens the package filesystem rooted at dir. Tests replace it.
var openFS = func(dir string) (vfs.FS, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating filesystem root %s: %w", dir, err)
	}
	return vfs.NewOS(dir), nil
}

// newFetcher builds the HTTP client used for lists and files. Tests replace it.
var newFetcher = func() fetch.Fetcher {
	return fetch.New(
		fetch.WithTimeout(config.Timeout()),
		fetch.WithUserAgent(config.UserAgent()),
	)
}

// now is replaced in tests.
var now = time.Now

// env is the per-invocation state shared by the package commands.
type env struct {
	fs      vfs.FS
	store   *store.Store
	fetcher fetch.Fetcher
	log     zerolog.Logger
}

// loadEnv opens the filesystem, initializes it on first use and warns when
// the package-list cache is stale.
func loadEnv(cmd *cobra.Command, warnStale bool) (*env, error) {
	fs, err := openFS(config.Root())
	if err != nil {
		return nil, err
	}

	e := &env{
		fs:      fs,
		store:   store.New(fs),
		fetcher: newFetcher(),
		log:     logging.GetLogger(cmd.Name()),
	}

	initialized, err := e.store.Init(branding.DefaultListURL())
	if err != nil {
		return nil, fmt.Errorf("initializing filesystem: %w", err)
	}
	if initialized {
		fmt.Fprintln(cmd.ErrOrStderr(), "WARNING: Filesystem not initialized.")
		fmt.Fprintln(cmd.ErrOrStderr(), "INFO: Initialized filesystem.")
	}

	if warnStale && e.store.IsStale(config.MaxAge(), now()) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Package lists are out of date. Run '%s update'.\n", branding.CLIName())
	}

	return e, nil
}

// catalog builds the catalog from the package-list cache, reporting any
// records that were skipped.
func (e *env) catalog(cmd *cobra.Command) (*registry.Catalog, error) {
	c, err := registry.LoadCatalog(e.store, e.log)
	if err != nil {
		return nil, err
	}
	for _, s := range c.Skipped {
		fmt.Fprintf(cmd.ErrOrStderr(), "Skipping package list %s: %v\n", s.Path, s.Err)
	}
	return c, nil
}

// requireReference validates the single <list>/<package> argument.
func requireReference(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("please specify a package")
	}
	return cobra.ExactArgs(1)(cmd, args)
}
