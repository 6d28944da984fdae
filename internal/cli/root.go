package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bbpm-labs/bbpm/internal/branding"
	"github.com/bbpm-labs/bbpm/internal/config"
	"github.com/bbpm-labs/bbpm/internal/logging"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbosity int
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` installs packages of scripts described by package lists.

Package lists are fetched from the URLs in /etc/bbpm/pkl_url_list.txt and
cached locally. Packages are addressed as <package list>/<package name>.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(verbosity, cmd.ErrOrStderr())
		config.Load()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug, -vvv trace)")
	rootCmd.PersistentFlags().String("root", "", "Directory backing the package filesystem (default ~/.bbpm/root)")
	_ = viper.BindPFlag(config.KeyRoot, rootCmd.PersistentFlags().Lookup("root"))
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
