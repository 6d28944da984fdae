package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)
	sourcesCmd.AddCommand(sourcesAddCmd)
	sourcesCmd.AddCommand(sourcesRemoveCmd)
	rootCmd.AddCommand(sourcesCmd)
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage package list sources",
	Long:  `Read and edit the package list URLs stored in /etc/bbpm/pkl_url_list.txt.`,
}

var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List package list sources",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd, false)
		if err != nil {
			return err
		}
		urls, err := e.store.Sources()
		if err != nil {
			return err
		}
		for _, u := range urls {
			fmt.Fprintln(cmd.OutOrStdout(), u)
		}
		return nil
	},
}

var sourcesAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Add a package list source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := url.Parse(args[0])
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid source URL %q", args[0])
		}

		e, err := loadEnv(cmd, false)
		if err != nil {
			return err
		}
		urls, err := e.store.Sources()
		if err != nil {
			return err
		}
		for _, existing := range urls {
			if existing == args[0] {
				fmt.Fprintf(cmd.OutOrStdout(), "Source already configured: %s\n", args[0])
				return nil
			}
		}
		if err := e.store.SetSources(append(urls, args[0])); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added source %s\n", args[0])
		return nil
	},
}

var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove <url>",
	Short: "Remove a package list source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd, false)
		if err != nil {
			return err
		}
		urls, err := e.store.Sources()
		if err != nil {
			return err
		}

		kept := urls[:0]
		found := false
		for _, u := range urls {
			if u == args[0] {
				found = true
				continue
			}
			kept = append(kept, u)
		}
		if !found {
			return fmt.Errorf("source not configured: %s", args[0])
		}
		if err := e.store.SetSources(kept); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed source %s\n", args[0])
		return nil
	},
}
