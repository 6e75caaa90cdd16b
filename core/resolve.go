package core

import (
	"fmt"
	"path/filepath"
	"sort"

	"golang.org/x/sys/unix"
)

// ResolvePattern expands a file name that may contain shell-glob wildcards
// into the sorted list of matching paths. A literal path that does not exist
// yields an empty set, not an error; existence policy belongs to the gate.
func ResolvePattern(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad file pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// CheckAccess reports whether the invoking principal can read or execute the
// file. Either bit is enough: the pipeline only needs metadata access.
func CheckAccess(path string) bool {
	if err := unix.Access(path, unix.R_OK); err == nil {
		return true
	}
	return unix.Access(path, unix.X_OK) == nil
}
