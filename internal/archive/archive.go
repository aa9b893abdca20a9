// Package archive pulls embedded provisioning profiles out of ipa files and
// zip archives.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/provkit/provkit/internal/logging"
	"github.com/provkit/provkit/internal/profile"
)

var log = logging.L("archive")

// ErrNotAnArchive reports that a file could not be opened as a zip container.
var ErrNotAnArchive = errors.New("not a zip archive")

// EntryError records a matched archive entry that could not be read or
// decoded. A single bad entry does not stop the scan of the rest.
type EntryError struct {
	Name string
	Err  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %s: %v", e.Name, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// Payload is the raw bytes of one embedded provisioning profile.
type Payload struct {
	Name string
	Data []byte
}

// Profiles returns the raw bytes of every *.mobileprovision entry in the
// archive at path, at any directory depth. Unreadable entries are collected
// in errs alongside the successes.
func Profiles(path string) (payloads []Payload, errs []*EntryError, err error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) {
			return nil, nil, fmt.Errorf("%s: %w", path, ErrNotAnArchive)
		}
		return nil, nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if !profile.IsProfileFile(f.Name) {
			continue
		}
		data, rerr := readEntry(f)
		if rerr != nil {
			errs = append(errs, &EntryError{Name: f.Name, Err: rerr})
			log.Warn("skipping unreadable archive entry", "entry", f.Name, logging.KeyError, rerr)
			continue
		}
		payloads = append(payloads, Payload{Name: f.Name, Data: data})
	}
	return payloads, errs, nil
}

// Extract writes every profile embedded in the archive at source into
// destination as <uuid>.mobileprovision, creating destination if needed.
// The original (still enveloped) bytes are written, so extracted files stay
// installable. Entries that fail to decode are reported in errs.
func Extract(source, destination string) (written []string, errs []*EntryError, err error) {
	payloads, errs, err := Profiles(source)
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(destination, 0755); err != nil {
		return nil, nil, fmt.Errorf("create destination %s: %w", destination, err)
	}
	info, err := os.Stat(destination)
	if err != nil {
		return nil, nil, err
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("destination %s is not a directory", destination)
	}

	for _, pl := range payloads {
		p, derr := decodePayload(pl.Data)
		if derr != nil {
			errs = append(errs, &EntryError{Name: pl.Name, Err: derr})
			continue
		}
		out := filepath.Join(destination, p.UUID+profile.Ext)
		if werr := os.WriteFile(out, pl.Data, 0644); werr != nil {
			errs = append(errs, &EntryError{Name: pl.Name, Err: werr})
			continue
		}
		log.Debug("extracted profile", "entry", pl.Name, logging.KeyPath, out)
		written = append(written, out)
	}
	return written, errs, nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func decodePayload(data []byte) (*profile.Profile, error) {
	payload, err := profile.ExtractPayload(data)
	if err != nil {
		return nil, err
	}
	return profile.Decode(payload)
}
