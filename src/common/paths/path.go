// Package paths provides path expansion helpers shared by the retail commands.
package paths

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// Expand expands environment variables and a leading ~ to the user's home directory
func Expand(path string) string {
	path = os.ExpandEnv(path)

	if path == "~" || strings.HasPrefix(path, "~/") {
		if usr, err := user.Current(); err == nil {
			return filepath.Join(usr.HomeDir, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return path
}

// EnsureDir ensures that the parent directory of a file path exists
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}
