package main

import (
	"fmt"
	"io"
	"os"

	"github.com/provkit/provkit/internal/profile"
	"github.com/provkit/provkit/internal/query"
	"github.com/provkit/provkit/internal/remover"
	"github.com/spf13/cobra"
)

var removeOpts struct {
	source      string
	permanently bool
}

var removeCmd = &cobra.Command{
	Use:   "remove <uuid-or-bundle-id>...",
	Short: "Remove provisioning profiles by UUID or bundle ID",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRemove(os.Stdout, args, removeOpts.source, removeOpts.permanently)
	},
}

func init() {
	removeCmd.Flags().StringVar(&removeOpts.source, "source", "", "directory to search instead of the default")
	removeCmd.Flags().BoolVar(&removeOpts.permanently, "permanently", false, "bypass the trash and delete permanently")
}

func runRemove(w io.Writer, ids []string, source string, permanently bool) error {
	profiles, err := loadProfiles(source)
	if err != nil {
		return err
	}

	matched, unmatched := query.SelectForRemoval(profiles, ids)
	for _, id := range unmatched {
		fmt.Fprintf(os.Stderr, "warning: no profile matches %q\n", id)
	}
	if len(matched) == 0 {
		return fmt.Errorf("no provisioning profiles matched")
	}

	removeBatch(w, matched, permanently)
	return nil
}

// removeBatch deletes the given profiles and reports each outcome. Per-file
// failures go to stderr and do not affect the exit code.
func removeBatch(w io.Writer, profiles []*profile.Profile, permanently bool) {
	first := true
	for _, res := range remover.Remove(profiles, permanently) {
		if res.Err != nil {
			fmt.Fprintln(os.Stderr, res.Err)
			continue
		}
		if !first {
			fmt.Fprintln(w)
		}
		first = false
		for _, p := range profiles {
			if p.Path == res.Path {
				fmt.Fprintln(w, formatMultiline(p))
				break
			}
		}
	}
}
