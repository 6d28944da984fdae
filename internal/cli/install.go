package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bbpm-labs/bbpm/internal/manifest"
	"github.com/bbpm-labs/bbpm/internal/registry"
)

var installDryRun bool

var installCmd = &cobra.Command{
	Use:   "install <package list>/<package name>",
	Short: "Install the specified package",
	Long: `Install a package and every package it depends on. Nothing is installed
when any dependency cannot be found. A file that fails to download is
reported and skipped; the package is still recorded as installed.`,
	Args: requireReference,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVar(&installDryRun, "dry-run", false, "Print the install plan without downloading anything")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	ref := manifest.Reference(args[0])
	out := cmd.OutOrStdout()

	e, err := loadEnv(cmd, true)
	if err != nil {
		return err
	}
	c, err := e.catalog(cmd)
	if err != nil {
		return err
	}

	if _, err := c.Lookup(ref); err != nil {
		return err
	}

	ledger, err := e.store.Ledger()
	if err != nil {
		return err
	}
	installed := make(map[manifest.Reference]bool, len(ledger))
	for _, r := range ledger {
		installed[r] = true
	}

	fmt.Fprintln(out, "Resolving dependencies...")
	fmt.Fprintln(out)
	registry.PrintTree(out, registry.BuildTree(ref, c, installed), "", true)
	fmt.Fprintln(out)

	closure := registry.Close(ref, c)
	if !closure.OK() {
		fmt.Fprintf(out, "Unresolvable Dependencies: %d\n", len(closure.Unresolvable))
		return closure.Err()
	}

	fmt.Fprintf(out, "Installing packages: %s\n", joinRefs(closure.Resolved))
	if installDryRun {
		fmt.Fprintln(out, "Dry run: nothing installed.")
		return nil
	}

	installer := registry.NewInstaller(e.fetcher, e.fs, e.store,
		registry.WithLogger(e.log),
		registry.WithProgress(func(r registry.FileResult) {
			if r.OK() {
				fmt.Fprintf(out, "Downloaded file %s from %s\n", r.Path, r.URL)
			} else {
				fmt.Fprintf(out, "Failed to download file %s from %s\n", r.Path, r.URL)
			}
		}),
	)

	report, err := installer.Install(cmd.Context(), closure.Resolved, c)
	if err != nil {
		return err
	}

	for _, p := range report.Packages {
		if p.Missing {
			fmt.Fprintf(out, "Package not found: %s\n", p.Ref)
		}
	}
	if n := report.FailedFiles(); n > 0 {
		fmt.Fprintf(out, "Warning: %d file(s) failed to download.\n", n)
	}
	if len(report.Installed) == 0 {
		return errors.New("no packages were installed")
	}

	fmt.Fprintf(out, "Package installed: %s\n", ref)
	return nil
}

func joinRefs(refs []manifest.Reference) string {
	parts := make([]string, len(refs))
	for i, r := range refs {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}
