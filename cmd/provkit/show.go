package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/provkit/provkit/internal/profile"
	"github.com/spf13/cobra"
)

var showSource string

var showCmd = &cobra.Command{
	Use:   "show <uuid>",
	Short: "Show the decoded plist of a profile by UUID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(os.Stdout, args[0], showSource)
	},
}

var showFileCmd = &cobra.Command{
	Use:   "show-file <file>",
	Short: "Show the decoded plist of a profile file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShowFile(os.Stdout, args[0])
	},
}

func init() {
	showCmd.Flags().StringVar(&showSource, "source", "", "directory to search instead of the default")
}

func runShow(w io.Writer, id, source string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%q is not a valid UUID", id)
	}

	profiles, err := loadProfiles(source)
	if err != nil {
		return err
	}
	for _, p := range profiles {
		if strings.EqualFold(p.UUID, id) {
			return runShowFile(w, p.Path)
		}
	}
	return fmt.Errorf("no provisioning profile found for %q", id)
}

func runShowFile(w io.Writer, path string) error {
	xml, err := profile.PayloadXML(path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, xml)
	return err
}
