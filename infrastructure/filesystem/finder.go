package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Finder lists files on the local filesystem
type Finder struct{}

// NewFinder creates a new filesystem finder
func NewFinder() *Finder {
	return &Finder{}
}

// ListFiles returns the full paths of all files in dir with the given
// extension, sorted by name. Extension comparison is case-insensitive.
func (f *Finder) ListFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}

// FindNewestFile returns the most recently modified file in dir with the
// given extension
func (f *Finder) FindNewestFile(dir, ext string) (string, error) {
	files, err := f.ListFiles(dir, ext)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no %s files found in %s", ext, dir)
	}

	newest := files[0]
	newestMod := int64(0)
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); mod > newestMod {
			newestMod = mod
			newest = path
		}
	}
	return newest, nil
}
