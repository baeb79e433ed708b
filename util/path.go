package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandUser replaces a leading ~ in path with $HOME, so configured data
// directories can be given relative to the user's home.
func ExpandUser(path string) string {
	if path == "~" {
		return os.Getenv("HOME")
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(os.Getenv("HOME"), path[2:])
	}
	return path
}
