// Package repository enumerates and decodes the provisioning profiles
// installed in a directory. Decoding fans out across a worker pool; a file
// that fails to parse becomes a tagged error entry instead of aborting the
// scan.
package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/provkit/provkit/internal/logging"
	"github.com/provkit/provkit/internal/profile"
	"github.com/provkit/provkit/internal/workerpool"
)

var log = logging.L("repository")

// Entry is the per-file result of a directory scan. Exactly one of Profile
// and Err is set.
type Entry struct {
	Path    string
	Profile *profile.Profile
	Err     error
}

// Repository scans a single directory, non-recursively.
type Repository struct {
	dir     string
	workers int
}

// New creates a repository over dir, decoding with up to workers goroutines.
func New(dir string, workers int) *Repository {
	if workers < 1 {
		workers = 1
	}
	return &Repository{dir: dir, workers: workers}
}

// Dir returns the directory this repository scans.
func (r *Repository) Dir() string {
	return r.dir
}

// Load decodes every *.mobileprovision file directly under the directory and
// returns one entry per file. Entry order is not the listing order; callers
// sort the decoded profiles as needed. Load fails only when the directory
// itself cannot be read.
func (r *Repository) Load(ctx context.Context) ([]Entry, error) {
	dirEntries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", r.dir, err)
	}

	var files []string
	for _, de := range dirEntries {
		if de.IsDir() || !profile.IsProfileFile(de.Name()) {
			continue
		}
		files = append(files, filepath.Join(r.dir, de.Name()))
	}
	log.Debug("scanning directory", logging.KeyPath, r.dir, "files", len(files))
	if len(files) == 0 {
		return nil, nil
	}

	// Queue sized to the file count, so Submit never rejects.
	pool := workerpool.New(r.workers, len(files))
	var mu sync.Mutex
	results := make([]Entry, 0, len(files))

	for _, path := range files {
		path := path
		if ctx.Err() != nil {
			break
		}
		task := func() {
			entry := Entry{Path: path}
			p, err := profile.FromFile(path)
			if err != nil {
				entry.Err = err
				log.Debug("failed to decode profile", logging.KeyPath, path, logging.KeyError, err)
			} else {
				entry.Profile = p
			}
			mu.Lock()
			results = append(results, entry)
			mu.Unlock()
		}
		if !pool.Submit(task) {
			task()
		}
	}
	pool.Drain(ctx)

	return results, nil
}

// Profiles returns the successfully decoded profiles from entries.
func Profiles(entries []Entry) []*profile.Profile {
	var out []*profile.Profile
	for _, e := range entries {
		if e.Profile != nil {
			out = append(out, e.Profile)
		}
	}
	return out
}

// Failures returns the entries whose files could not be decoded.
func Failures(entries []Entry) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Err != nil {
			out = append(out, e)
		}
	}
	return out
}
