package main

import (
	"fmt"
	"io"
	"os"

	"github.com/provkit/provkit/internal/archive"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <archive> <destination>",
	Short: "Extract embedded provisioning profiles from an ipa or zip archive",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(os.Stdout, args[0], args[1])
	},
}

func runExtract(w io.Writer, source, destination string) error {
	written, entryErrs, err := archive.Extract(source, destination)
	if err != nil {
		return err
	}
	for _, e := range entryErrs {
		fmt.Fprintf(os.Stderr, "warning: %v\n", e)
	}
	for _, path := range written {
		fmt.Fprintln(w, path)
	}
	if len(written) == 0 && len(entryErrs) == 0 {
		fmt.Fprintf(os.Stderr, "no provisioning profiles found in %s\n", source)
	}
	return nil
}
