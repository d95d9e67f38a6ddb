package diffx

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalTree reads one comparison side from the local filesystem.
// Listing results use forward slashes regardless of platform so the
// engine always joins on POSIX-style paths.
type LocalTree struct{}

// List returns every file under root, recursively. Subtrees that
// cannot be read contribute nothing.
func (LocalTree) List(root string) []string {
	root = strings.TrimSuffix(filepath.ToSlash(root), "/")

	var files []string
	var walk func(dir string)
	walk = func(dir string) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return
		}
		for _, entry := range entries {
			full := path.Join(dir, entry.Name())
			if entry.IsDir() {
				walk(full)
				continue
			}
			files = append(files, full)
		}
	}
	walk(root)

	return files
}

// ReadLines reads and best-effort decodes a file into lines
func (LocalTree) ReadLines(p string) ([]string, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, newReadFileError(p, err)
	}

	return DecodeLines(data), nil
}
