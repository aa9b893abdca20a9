package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/provkit/provkit/internal/profile"
	"gopkg.in/yaml.v3"
)

var (
	uuidColor  = color.New(color.FgYellow)
	dateColor  = color.New(color.FgBlue)
	appIDColor = color.New(color.FgGreen)
)

const multilineDateFormat = "2006-01-02 15:04:05 UTC"

// formatOneline renders a profile as a single line for piping.
func formatOneline(p *profile.Profile) string {
	return fmt.Sprintf("%s %s %s %s",
		uuidColor.Sprint(p.UUID),
		dateColor.Sprint(p.ExpirationDate.UTC().Format("2006-01-02")),
		appIDColor.Sprint(p.AppIdentifier),
		p.Name)
}

// formatMultiline renders a profile as a four-line block.
func formatMultiline(p *profile.Profile) string {
	dates := dateColor.Sprintf("%s - %s",
		p.CreationDate.UTC().Format(multilineDateFormat),
		p.ExpirationDate.UTC().Format(multilineDateFormat))
	return fmt.Sprintf("%s\n%s\n%s\n%s",
		uuidColor.Sprint(p.UUID),
		appIDColor.Sprint(p.AppIdentifier),
		p.Name,
		dates)
}

// profileRecord is the machine-readable projection of a Profile.
type profileRecord struct {
	UUID            string    `json:"uuid" yaml:"uuid"`
	Name            string    `json:"name" yaml:"name"`
	AppIdentifier   string    `json:"app_identifier,omitempty" yaml:"app_identifier,omitempty"`
	TeamName        string    `json:"team_name,omitempty" yaml:"team_name,omitempty"`
	TeamIdentifiers []string  `json:"team_identifiers,omitempty" yaml:"team_identifiers,omitempty"`
	Platforms       []string  `json:"platforms,omitempty" yaml:"platforms,omitempty"`
	CreationDate    time.Time `json:"creation_date" yaml:"creation_date"`
	ExpirationDate  time.Time `json:"expiration_date" yaml:"expiration_date"`
	Path            string    `json:"path,omitempty" yaml:"path,omitempty"`
}

func toRecords(profiles []*profile.Profile) []profileRecord {
	records := make([]profileRecord, 0, len(profiles))
	for _, p := range profiles {
		records = append(records, profileRecord{
			UUID:            p.UUID,
			Name:            p.Name,
			AppIdentifier:   p.AppIdentifier,
			TeamName:        p.TeamName,
			TeamIdentifiers: p.TeamIdentifiers,
			Platforms:       p.Platforms,
			CreationDate:    p.CreationDate,
			ExpirationDate:  p.ExpirationDate,
			Path:            p.Path,
		})
	}
	return records
}

func validateFormat(format string) error {
	switch format {
	case "", "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("--format %q is not valid (use text, json or yaml)", format)
	}
}

// printProfiles writes the listing. Text mode prints multiline blocks
// separated by blank lines, or one line per profile with oneline set.
func printProfiles(w io.Writer, profiles []*profile.Profile, oneline bool, format string) error {
	switch format {
	case "json":
		out, err := json.MarshalIndent(toRecords(profiles), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "yaml":
		out, err := yaml.Marshal(toRecords(profiles))
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		for i, p := range profiles {
			if oneline {
				if _, err := fmt.Fprintln(w, formatOneline(p)); err != nil {
					return err
				}
				continue
			}
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w, formatMultiline(p)); err != nil {
				return err
			}
		}
		return nil
	}
}
