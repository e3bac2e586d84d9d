// Package discovery collects the files under a set of root directories whose
// names end with one of a set of suffixes.
package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Roots and suffixes formatted by srcfmt. They are fixed at build time.
var (
	DefaultRoots      = []string{"src", "include"}
	DefaultExtensions = []string{".c", ".h"}
)

// FindFiles walks every root in order and returns the paths of all regular
// files whose name ends with one of exts. A symlink counts when its target is
// a regular file; symlinks are never descended. Paths are built by
// joining the walked directory with the entry name, so relative roots give
// relative paths. The result keeps traversal order and may be empty.
//
// A root that does not exist or is not a directory contributes nothing. A
// root that is a symlink to a directory is walked through the link. Any other
// traversal error stops the walk and is returned.
func FindFiles(roots, exts []string, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var files []string
	for _, root := range roots {
		logger.Debug("Walking root directory", zap.String("root", root))

		walkRoot := followRootLink(root)
		err := filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == walkRoot && errors.Is(err, fs.ErrNotExist) {
					logger.Debug("Root directory does not exist", zap.String("root", root))
					return nil
				}
				return err
			}
			if d.IsDir() {
				return nil
			}
			if path == walkRoot {
				logger.Debug("Root is not a directory", zap.String("root", root))
				return nil
			}
			if MatchesExtension(d.Name(), exts) && isRegularFile(path, d) {
				files = append(files, path)
				logger.Debug("Discovered file", zap.String("filePath", path))
			}
			return nil
		})
		if err != nil {
			logger.Error("Error during file traversal", zap.String("root", root), zap.Error(err))
			return nil, fmt.Errorf("failed to walk %s: %w", root, err)
		}
	}

	logger.Debug("Completed file discovery", zap.Int("fileCount", len(files)))
	return files, nil
}

// MatchesExtension reports whether name ends with any of exts. The comparison
// is a case-sensitive literal suffix match.
func MatchesExtension(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// followRootLink returns root with a trailing separator when root is a symlink
// to a directory, so that WalkDir descends into the target.
func followRootLink(root string) string {
	linfo, err := os.Lstat(root)
	if err != nil || linfo.Mode()&fs.ModeSymlink == 0 {
		return root
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return root
	}
	return root + string(filepath.Separator)
}

// isRegularFile reports whether the entry at path is a regular file, following
// a symlink one step to its target.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
