// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// FindFilesByExtension returns rootPath itself when it is a regular file, or
// every file below it ending with extension. Results are sorted so callers see
// a stable order across runs.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{rootPath}, nil
	}

	matches, err := doublestar.Glob(os.DirFS(rootPath), "**/*"+extension)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern for extension %q: %w", extension, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		full := filepath.Join(rootPath, filepath.FromSlash(m))
		fi, err := os.Stat(full)
		if err != nil {
			return nil, err
		}
		if fi.IsDir() {
			continue
		}
		files = append(files, full)
	}
	sort.Strings(files)

	return files, nil
}
