package batch

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// imageExts lists the file extensions treated as scanned images.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// FindImages returns the image files under root in stable sorted order.
// Extension matching is case-insensitive. When recursive is false only the
// root directory itself is scanned. Directories listed in skipDirs (and
// everything below them) are excluded, so a run never rediscovers its own
// output or archive folders.
func FindImages(root string, recursive bool, skipDirs ...string) ([]string, error) {
	skip := make(map[string]bool, len(skipDirs))
	for _, d := range skipDirs {
		if d != "" {
			skip[filepath.Clean(d)] = true
		}
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skip[filepath.Clean(path)] {
				return filepath.SkipDir
			}
			if !recursive && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if imageExts[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}
