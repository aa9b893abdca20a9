package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/provkit/provkit/internal/query"
	"github.com/spf13/cobra"
)

var cleanOpts struct {
	source      string
	permanently bool
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove all expired provisioning profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClean(os.Stdout, cleanOpts.source, cleanOpts.permanently)
	},
}

func init() {
	cleanCmd.Flags().StringVar(&cleanOpts.source, "source", "", "directory to clean instead of the default")
	cleanCmd.Flags().BoolVar(&cleanOpts.permanently, "permanently", false, "bypass the trash and delete permanently")
}

func runClean(w io.Writer, source string, permanently bool) error {
	profiles, err := loadProfiles(source)
	if err != nil {
		return err
	}

	expired := query.FilterByExpiration(profiles, time.Now(), 0)
	if len(expired) == 0 {
		fmt.Fprintln(w, "No expired provisioning profiles.")
		return nil
	}

	removeBatch(w, expired, permanently)
	return nil
}
