// Package appbase creates the private staging directory applications are deployed into.
package appbase

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// TempPrefix starts the name of every staging directory.
const TempPrefix = "standalone"

// Create makes a new private directory under parent and returns its absolute path.
// An empty parent means the working directory. The parent must already exist.
func Create(fs afero.Fs, parent string) (string, error) {
	if parent == "" {
		parent = "."
	}
	abs, err := filepath.Abs(parent)
	if err != nil {
		return "", fmt.Errorf("resolve app base parent %q: %w", parent, err)
	}

	dir, err := afero.TempDir(fs, abs, TempPrefix)
	if err != nil {
		return "", fmt.Errorf("create app base under %s: %w", abs, err)
	}
	return dir, nil
}

// Remove deletes a staging directory and everything staged in it.
func Remove(fs afero.Fs, dir string) error {
	if !strings.HasPrefix(filepath.Base(dir), TempPrefix) {
		return fmt.Errorf("refusing to remove %s: not a staging directory", dir)
	}
	return fs.RemoveAll(dir)
}

// DocBaseName is the directory name an application deployed at contextPath is
// staged under: ROOT for the root context, "/shop/admin" becomes "shop#admin".
func DocBaseName(contextPath string) string {
	name := strings.Trim(contextPath, "/")
	if name == "" {
		return "ROOT"
	}
	return strings.ReplaceAll(name, "/", "#")
}
