package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bbpm-labs/bbpm/internal/manifest"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info <package list>/<package name>",
	Short: "Print information on a package",
	Args:  requireReference,
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd, true)
	if err != nil {
		return err
	}
	c, err := e.catalog(cmd)
	if err != nil {
		return err
	}

	pkg, err := c.Lookup(manifest.Reference(args[0]))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Package:")
	printPackage(cmd.OutOrStdout(), pkg, "    ")
	return nil
}

func printPackage(w io.Writer, pkg *manifest.Package, indent string) {
	lines := []string{
		"Name: " + pkg.Name,
		"Description: " + pkg.Description,
		"Version: " + pkg.Version,
		"Author: " + pkg.Author,
		"Dependencies:",
	}
	for _, dep := range pkg.Dependencies {
		lines = append(lines, "    "+string(dep))
	}
	lines = append(lines, "Manifest:")
	for _, p := range pkg.Manifest.Paths() {
		lines = append(lines, fmt.Sprintf("    %s: %s", p, pkg.Manifest[p]))
	}

	for _, line := range lines {
		fmt.Fprintln(w, strings.TrimRight(indent+line, " "))
	}
}
