// Package query filters, orders and selects in-memory profile collections.
// All functions are pure: they never mutate their input slice.
package query

import (
	"slices"
	"strings"
	"time"

	"github.com/provkit/provkit/internal/profile"
)

// FilterByText keeps profiles whose name, UUID or identifiers contain
// pattern, case-insensitively. The empty pattern keeps everything.
func FilterByText(profiles []*profile.Profile, pattern string) []*profile.Profile {
	var out []*profile.Profile
	for _, p := range profiles {
		if p.Contains(pattern) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByExpiration keeps profiles whose expiration date is on or before
// now+days. days may be zero (profiles already expired as of now) or
// negative (profiles expired at least |days| ago).
func FilterByExpiration(profiles []*profile.Profile, now time.Time, days int) []*profile.Profile {
	cutoff := now.Add(time.Duration(days) * 24 * time.Hour)
	var out []*profile.Profile
	for _, p := range profiles {
		if !p.ExpirationDate.After(cutoff) {
			out = append(out, p)
		}
	}
	return out
}

// SortByName returns a new slice sorted ascending by name (bytewise), ties
// broken by UUID so the output order is a deterministic total order.
func SortByName(profiles []*profile.Profile) []*profile.Profile {
	out := slices.Clone(profiles)
	slices.SortStableFunc(out, func(a, b *profile.Profile) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.UUID, b.UUID)
	})
	return out
}

// SelectForRemoval partitions ids into those that exactly match at least one
// profile (by UUID or bundle ID) and those that match nothing. Matched
// profiles are returned once each, in input order, so callers can report
// unmatched ids as typos without aborting the batch.
func SelectForRemoval(profiles []*profile.Profile, ids []string) (matched []*profile.Profile, unmatched []string) {
	matchedIDs := make(map[string]bool, len(ids))
	selected := make(map[*profile.Profile]bool, len(profiles))

	for _, p := range profiles {
		bundleID := p.BundleID()
		for _, id := range ids {
			if id != p.UUID && (bundleID == "" || id != bundleID) {
				continue
			}
			matchedIDs[id] = true
			if !selected[p] {
				selected[p] = true
				matched = append(matched, p)
			}
		}
	}

	for _, id := range ids {
		if !matchedIDs[id] {
			unmatched = append(unmatched, id)
		}
	}
	return matched, unmatched
}
