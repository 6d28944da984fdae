package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bbpm-labs/bbpm/internal/branding"
)

var (
	listLong bool
	listJSON bool
)

func init() {
	listPackagesCmd.Flags().BoolVarP(&listLong, "long", "l", false, "Show version and description")
	listPackagesCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listPackagesCmd)
}

var listPackagesCmd = &cobra.Command{
	Use:   "list-packages",
	Short: "List all known packages",
	Args:  cobra.NoArgs,
	RunE:  runListPackages,
}

// packageEntry is one package for display.
type packageEntry struct {
	Ref         string `json:"ref"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

func runListPackages(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd, true)
	if err != nil {
		return err
	}
	c, err := e.catalog(cmd)
	if err != nil {
		return err
	}

	var entries []packageEntry
	for _, ref := range c.References() {
		pkg, _ := c.Resolve(ref)
		entries = append(entries, packageEntry{
			Ref:         string(ref),
			Version:     pkg.Version,
			Description: pkg.Description,
		})
	}

	out := cmd.OutOrStdout()

	if listJSON {
		if entries == nil {
			entries = []packageEntry{}
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling package list: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintf(out, "No packages known. Run '%s update'.\n", branding.CLIName())
		return nil
	}

	if !listLong {
		for _, entry := range entries {
			fmt.Fprintln(out, entry.Ref)
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PACKAGE\tVERSION\tDESCRIPTION")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Ref, entry.Version, entry.Description)
	}
	return w.Flush()
}
