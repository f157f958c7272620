// Package runtimeaudit checks the translator's global registry against the
// runtime header tree actually on disk. The in-memory registry is treated
// as the manifest, so there is nothing to load from disk except the
// headers it names.
package runtimeaudit

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/surma/jsxx-go/internal/translator"
)

// Report captures drift between declared global headers and the files
// present under a repository root.
type Report struct {
	MissingHeaders []string
}

// HasDrift reports whether any declared header was not found on disk.
func (r Report) HasDrift() bool {
	return len(r.MissingHeaders) > 0
}

// Check stats every header declared by globals, relative to repoRoot, and
// reports any that don't exist.
func Check(globals []translator.Global, repoRoot string) (Report, error) {
	declared := map[string]struct{}{}
	for _, g := range globals {
		for _, h := range g.AdditionalHeaders {
			declared[h] = struct{}{}
		}
	}

	var missing []string
	for h := range declared {
		full := filepath.Join(repoRoot, h)
		if _, err := os.Stat(full); err != nil {
			if os.IsNotExist(err) {
				missing = append(missing, h)
				continue
			}
			return Report{}, fmt.Errorf("stat %q: %w", full, err)
		}
	}
	sort.Strings(missing)
	return Report{MissingHeaders: missing}, nil
}
