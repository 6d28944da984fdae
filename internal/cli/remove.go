package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bbpm-labs/bbpm/internal/manifest"
	"github.com/bbpm-labs/bbpm/internal/registry"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove <package list>/<package name>",
	Short: "Remove all files associated with the specified package",
	Long: `Delete the files a package's manifest installs. Dependencies are left in
place and the package stays in the installed list.`,
	Args: requireReference,
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd, false)
	if err != nil {
		return err
	}
	c, err := e.catalog(cmd)
	if err != nil {
		return err
	}

	report, err := registry.Remove(manifest.Reference(args[0]), c, e.fs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range report.Removed {
		fmt.Fprintf(out, "Removed file %s\n", p)
	}
	for _, p := range report.Absent {
		e.log.Debug().Str("file", p).Msg("File not present")
	}
	for _, f := range report.Failed {
		fmt.Fprintf(out, "Failed to remove file %s: %v\n", f.Target, f.Err)
	}
	fmt.Fprintf(out, "Package files removed: %s\n", report.Ref)
	return nil
}
