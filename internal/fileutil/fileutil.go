// Package fileutil provides file and path predicates shared by the
// library and the CLI.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// hiddenPrefix marks files and directories excluded from traversal.
const hiddenPrefix = "."

// eligibleExtensions is the recognized documentation set. Only files with
// these extensions produce content pages; everything else is ignored.
var eligibleExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
}

// IsEligible reports whether the file name carries a recognized
// documentation extension (case-insensitive).
func IsEligible(name string) bool {
	return eligibleExtensions[strings.ToLower(filepath.Ext(name))]
}

// IsHidden reports whether the name starts with the hidden-file marker.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, hiddenPrefix)
}

// BaseName returns the file name with its extension stripped.
func BaseName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// WithinDir reports whether path is dir or located inside dir. Both paths
// must be absolute and cleaned.
func WithinDir(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
