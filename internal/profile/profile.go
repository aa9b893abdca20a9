// Package profile decodes Apple mobile provisioning profiles. A profile file
// is a CMS-signed envelope wrapping an XML plist; ExtractPayload unwraps the
// envelope and Decode turns the plist into a Profile value.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"howett.net/plist"
)

// Ext is the file extension of an installed provisioning profile.
const Ext = ".mobileprovision"

// IsProfileFile reports whether path names a provisioning profile file.
func IsProfileFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Ext)
}

// Profile is the decoded metadata of a single provisioning profile. A
// Profile is immutable once decoded.
type Profile struct {
	UUID            string
	Name            string
	AppIdentifier   string
	TeamIdentifiers []string
	TeamName        string
	Platforms       []string
	CreationDate    time.Time
	ExpirationDate  time.Time

	// Path is the file the profile was loaded from. Empty for profiles
	// decoded straight from archive entries.
	Path string
}

// FromFile reads a mobileprovision file, unwraps the signed envelope and
// decodes the embedded plist. Path is set on the returned profile.
func FromFile(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	payload, err := ExtractPayload(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p, err := Decode(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.Path = path
	return p, nil
}

// PayloadXML reads a profile file and returns the embedded plist document as
// a string, without decoding it.
func PayloadXML(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	payload, err := ExtractPayload(raw)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return string(payload), nil
}

// Decode parses an extracted plist payload into a Profile. UUID, Name and
// ExpirationDate are required; everything else decodes when present.
func Decode(payload []byte) (*Profile, error) {
	var dict map[string]any
	if _, err := plist.Unmarshal(payload, &dict); err != nil {
		return nil, fmt.Errorf("parse plist: %w", err)
	}

	p := &Profile{}
	var err error
	if p.UUID, err = requireString(dict, "UUID"); err != nil {
		return nil, err
	}
	if p.Name, err = requireString(dict, "Name"); err != nil {
		return nil, err
	}
	if p.ExpirationDate, err = requireDate(dict, "ExpirationDate"); err != nil {
		return nil, err
	}
	if v, ok := dict["CreationDate"]; ok {
		t, ok := v.(time.Time)
		if !ok {
			return nil, &InvalidFieldError{Key: "CreationDate"}
		}
		p.CreationDate = t
	}
	if v, ok := dict["TeamName"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, &InvalidFieldError{Key: "TeamName"}
		}
		p.TeamName = s
	}
	if p.TeamIdentifiers, err = optionalStrings(dict, "TeamIdentifier"); err != nil {
		return nil, err
	}
	if p.Platforms, err = optionalStrings(dict, "Platform"); err != nil {
		return nil, err
	}
	if v, ok := dict["Entitlements"]; ok {
		ents, ok := v.(map[string]any)
		if !ok {
			return nil, &InvalidFieldError{Key: "Entitlements"}
		}
		if v, ok := ents["application-identifier"]; ok {
			s, ok := v.(string)
			if !ok {
				return nil, &InvalidFieldError{Key: "application-identifier"}
			}
			p.AppIdentifier = s
		}
	}
	return p, nil
}

// Contains reports whether s occurs case-insensitively in the profile name,
// UUID, application identifier or any team identifier. The empty string
// matches every profile.
func (p *Profile) Contains(s string) bool {
	needle := strings.ToLower(s)
	fields := []string{p.Name, p.UUID, p.AppIdentifier}
	fields = append(fields, p.TeamIdentifiers...)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// BundleID returns the application identifier with its team prefix removed,
// or "" when the identifier has no prefix.
func (p *Profile) BundleID() string {
	if i := strings.IndexByte(p.AppIdentifier, '.'); i >= 0 {
		return p.AppIdentifier[i+1:]
	}
	return ""
}

// HasIDs reports whether any of ids exactly equals the profile UUID or its
// bundle ID.
func (p *Profile) HasIDs(ids []string) bool {
	bundleID := p.BundleID()
	for _, id := range ids {
		if id == p.UUID || (bundleID != "" && id == bundleID) {
			return true
		}
	}
	return false
}

func requireString(dict map[string]any, key string) (string, error) {
	v, ok := dict[key]
	if !ok {
		return "", &MissingFieldError{Key: key}
	}
	s, ok := v.(string)
	if !ok {
		return "", &InvalidFieldError{Key: key}
	}
	return s, nil
}

func requireDate(dict map[string]any, key string) (time.Time, error) {
	v, ok := dict[key]
	if !ok {
		return time.Time{}, &MissingFieldError{Key: key}
	}
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}, &InvalidFieldError{Key: key}
	}
	return t, nil
}

func optionalStrings(dict map[string]any, key string) ([]string, error) {
	v, ok := dict[key]
	if !ok {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, &InvalidFieldError{Key: key}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, &InvalidFieldError{Key: key}
		}
		out = append(out, s)
	}
	return out, nil
}
