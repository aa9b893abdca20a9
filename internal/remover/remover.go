// Package remover deletes provisioning profile files. Removal is a
// best-effort batch: each file gets its own result and a failure never
// blocks the rest.
package remover

import (
	"fmt"
	"os"

	"github.com/provkit/provkit/internal/logging"
	"github.com/provkit/provkit/internal/profile"
)

var log = logging.L("remover")

// Result is the outcome of deleting one profile file.
type Result struct {
	Path string
	Err  error
}

// Remove deletes the source file of each profile, sequentially. Files move
// to the user trash by default; permanently bypasses the trash.
func Remove(profiles []*profile.Profile, permanently bool) []Result {
	results := make([]Result, 0, len(profiles))
	for _, p := range profiles {
		var err error
		if permanently {
			err = os.Remove(p.Path)
		} else {
			err = trash(p.Path)
		}
		if err != nil {
			err = fmt.Errorf("remove %s: %w", p.Path, err)
			log.Warn("failed to remove profile", logging.KeyPath, p.Path, logging.KeyError, err)
		} else {
			log.Debug("removed profile", logging.KeyPath, p.Path, "permanently", permanently)
		}
		results = append(results, Result{Path: p.Path, Err: err})
	}
	return results
}
