package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bbpm-labs/bbpm/internal/logging"
	"github.com/bbpm-labs/bbpm/internal/registry"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update package lists from the configured sources",
	Long: `Fetch every package list URL stored in /etc/bbpm/pkl_url_list.txt and
cache the lists locally. A source that cannot be fetched or parsed is
skipped; the others are still updated.`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd, false)
	if err != nil {
		return err
	}

	urls, err := e.store.Sources()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Updating package lists...")

	done := logging.LogOperationStart(e.log, "pull")
	refresher := registry.NewRefresher(e.fetcher, e.store, e.log)
	report := refresher.Pull(cmd.Context(), urls)
	done()

	for _, src := range report.Sources {
		if src.Err != nil {
			fmt.Fprintf(out, "Failed to update package list from %s: %v\n", src.URL, src.Err)
			continue
		}
		fmt.Fprintf(out, "Updated package list %s (%d packages) from %s\n", src.List, src.Packages, src.URL)
		for _, c := range src.Changes {
			marker := "changed"
			if c.Upgrade {
				marker = "upgraded"
			}
			fmt.Fprintf(out, "    %s %s -> %s (%s)\n", c.Ref, c.From, c.To, marker)
		}
	}

	fmt.Fprintf(out, "Updated %d of %d package lists.\n", len(report.Updated()), len(report.Sources))
	return nil
}
