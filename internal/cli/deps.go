package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bbpm-labs/bbpm/internal/manifest"
	"github.com/bbpm-labs/bbpm/internal/registry"
)

func init() {
	rootCmd.AddCommand(depsCmd)
}

var depsCmd = &cobra.Command{
	Use:   "deps <package list>/<package name>",
	Short: "Show the dependency tree of a package",
	Args:  requireReference,
	RunE:  runDeps,
}

func runDeps(cmd *cobra.Command, args []string) error {
	ref := manifest.Reference(args[0])

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

	out := cmd.OutOrStdout()
	root := registry.BuildTree(ref, c, installed)
	registry.PrintTree(out, root, "", true)

	closure := registry.Close(ref, c)
	fmt.Fprintf(out, "\n%d package(s)", len(closure.Resolved))
	if !closure.OK() {
		fmt.Fprintf(out, ", %d not found", len(closure.Unresolvable))
	}
	fmt.Fprintln(out)
	return nil
}
