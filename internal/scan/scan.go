// Package scan lists the image files of a single folder in a deterministic
// order. It does not recurse: one folder is one grouping on the board.
package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"refboard/internal/model"
)

// ErrDirectoryUnreadable is returned when the root folder itself cannot be
// listed. Unreadable individual files are not a scan concern; they surface
// later as decode failures.
var ErrDirectoryUnreadable = errors.New("directory unreadable")

// supportedExtensions is the fixed allow-list of image file extensions.
var supportedExtensions = map[string]bool{
	".png":  true,
	".xpm":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".gif":  true,
}

// IsSupported reports whether the file name has a supported image extension.
// The check is case-insensitive.
func IsSupported(name string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(name))]
}

// Scan lists the folder and returns the supported image files in name order.
// Subdirectories are not entered. The returned paths are absolute.
func Scan(root string) ([]model.ImagePath, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDirectoryUnreadable, root, err)
	}

	var paths []model.ImagePath
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !IsSupported(name) {
			continue
		}
		abs, err := filepath.Abs(filepath.Join(root, name))
		if err != nil {
			abs = filepath.Join(root, name)
		}
		paths = append(paths, model.ImagePath{
			Path: abs,
			Ext:  strings.ToLower(filepath.Ext(name)),
		})
	}

	// ReadDir already sorts by name, but the grid layout depends on this
	// order, so keep it explicit.
	sort.Slice(paths, func(i, j int) bool {
		return paths[i].Path < paths[j].Path
	})

	return paths, nil
}
