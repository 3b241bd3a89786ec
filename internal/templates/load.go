package templates

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/promptlib/cli/internal/output"
)

// Load builds an index of every template file directly inside each
// immediate subdirectory of root. A missing or unreadable root is reported
// and yields an empty index.
func Load(root string) *Index {
	if strings.TrimSpace(root) == "" {
		root = DefaultRoot
	}

	idx := &Index{Root: root, Records: []Record{}}

	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			output.Error("template directory does not exist", "dir", root)
		} else {
			output.Error("cannot read template directory", "dir", root, "error", err)
		}
		return idx
	}

	categories := 0
	for _, entry := range entries {
		dir := filepath.Join(root, entry.Name())
		if !isDir(dir, entry) {
			continue
		}
		categories++

		records, err := loadCategory(dir, entry.Name())
		if err != nil {
			output.Warn("cannot read category directory", "dir", dir, "error", err)
			continue
		}
		idx.Records = append(idx.Records, records...)
	}

	output.Debug("indexed templates", "dir", root, "categories", categories, "templates", idx.Len())
	return idx
}

// loadCategory collects the template files directly inside dir.
func loadCategory(dir, category string) ([]Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, Extension) {
			continue
		}
		path := filepath.Join(dir, name)
		if !isRegular(path, entry) {
			continue
		}
		records = append(records, Record{
			Category: category,
			Name:     strings.TrimSuffix(name, Extension),
			Path:     path,
		})
	}
	return records, nil
}

// isDir reports whether entry is a directory, following symlinks.
func isDir(path string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// isRegular reports whether entry is a regular file, following symlinks.
func isRegular(path string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
