package main

import (
	"context"
	"fmt"
	"os"

	"github.com/provkit/provkit/internal/config"
	"github.com/provkit/provkit/internal/logging"
	"github.com/provkit/provkit/internal/profile"
	"github.com/provkit/provkit/internal/repository"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "provkit",
	Short:         "Manage Apple provisioning profiles",
	Long:          `provkit inventories, inspects, extracts and removes Apple mobile provisioning profiles.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg.Validate()
		logging.Init(cfg.LogFormat, cfg.LogLevel, nil)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("provkit v%s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is provkit.yaml in the user config dir)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(showFileCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadProfiles scans the profile directory shared by most subcommands.
// Files that fail to decode are reported on stderr and skipped.
func loadProfiles(source string) ([]*profile.Profile, error) {
	dir, err := cfg.ResolveProfileDir(source)
	if err != nil {
		return nil, err
	}
	entries, err := repository.New(dir, cfg.Workers).Load(context.Background())
	if err != nil {
		return nil, err
	}
	for _, f := range repository.Failures(entries) {
		fmt.Fprintf(os.Stderr, "warning: %v\n", f.Err)
	}
	return repository.Profiles(entries), nil
}
