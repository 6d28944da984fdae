package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(installedCmd)
}

var installedCmd = &cobra.Command{
	Use:   "installed",
	Short: "List all installed packages",
	Long: `List the packages recorded as installed. Removing a package deletes its
files but does not remove it from this list.`,
	Args: cobra.NoArgs,
	RunE: runInstalled,
}

func runInstalled(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd, false)
	if err != nil {
		return err
	}

	refs, err := e.store.Ledger()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(refs) == 0 {
		fmt.Fprintln(out, "No packages installed.")
		return nil
	}
	for _, ref := range refs {
		fmt.Fprintln(out, ref)
	}
	return nil
}
