// Package dirlist lists the entries of a single directory level whose names
// end with a given suffix.
package dirlist

import (
	"fmt"
	"os"
	"strings"
)

// ListBySuffix returns the names of the entries in dir whose names end with
// suffix, in listing order. Only the name is consulted, so a matching
// subdirectory is included too. The result is never nil.
func ListBySuffix(dir string, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q, reason: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), suffix) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
