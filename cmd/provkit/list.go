package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/provkit/provkit/internal/query"
	"github.com/spf13/cobra"
)

type listOptions struct {
	text    string
	days    int
	daysSet bool
	source  string
	oneline bool
	format  string
}

var listOpts listOptions

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List provisioning profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listOpts.daysSet = cmd.Flags().Changed("expire-in-days")
		return runList(os.Stdout, listOpts)
	},
}

func init() {
	listCmd.Flags().StringVarP(&listOpts.text, "text", "t", "", "only profiles containing this text")
	listCmd.Flags().IntVarP(&listOpts.days, "expire-in-days", "d", 0, "only profiles expiring within this many days (0-365)")
	listCmd.Flags().StringVar(&listOpts.source, "source", "", "directory to search instead of the default")
	listCmd.Flags().BoolVar(&listOpts.oneline, "oneline", false, "one profile per line")
	listCmd.Flags().StringVar(&listOpts.format, "format", "text", "output format: text, json or yaml")
}

func runList(w io.Writer, opts listOptions) error {
	if opts.daysSet {
		if err := validateDays(opts.days); err != nil {
			return err
		}
	}
	if err := validateFormat(opts.format); err != nil {
		return err
	}

	profiles, err := loadProfiles(opts.source)
	if err != nil {
		return err
	}

	profiles = query.FilterByText(profiles, opts.text)
	if opts.daysSet {
		profiles = query.FilterByExpiration(profiles, time.Now(), opts.days)
	}
	profiles = query.SortByName(profiles)

	return printProfiles(w, profiles, opts.oneline, opts.format)
}

func validateDays(days int) error {
	if days < 0 || days > 365 {
		return fmt.Errorf("--expire-in-days should be between 0 and 365, got %d", days)
	}
	return nil
}
