package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bbpm-labs/bbpm/internal/branding"
	"github.com/bbpm-labs/bbpm/internal/config"
	"github.com/bbpm-labs/bbpm/internal/registry"
)

var doctorFix bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Restore the default source and delete unreadable cached lists")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the package filesystem",
	Long: `Check the configured sources, the package list cache and every installed
package's files. Installed packages whose files were removed are reported
but never dropped from the installed list.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd, false)
		if err != nil {
			return err
		}
		c, err := registry.LoadCatalog(e.store, e.log)
		if err != nil {
			return err
		}

		d := &registry.Doctor{
			Store:      e.store,
			FS:         e.fs,
			DefaultURL: branding.DefaultListURL(),
			MaxAge:     config.MaxAge(),
			Now:        now,
		}
		problems, err := d.Check(cmd.OutOrStdout(), c, doctorFix)
		if err != nil {
			return err
		}

		if problems == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "\nNo problems found.")
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d problem(s) found.\n", problems)
		}
		return nil
	},
}
