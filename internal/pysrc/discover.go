// Package pysrc discovers the candidate source files for an analysis run.
package pysrc

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Discover walks root recursively and returns every file whose extension is
// in extensions, excluding anything under the output directory or under a
// directory named in excludeDirs. Hidden directories are skipped. The result
// is sorted so a run always sees the same file list for the same tree.
func Discover(root, outputDir string, extensions, excludeDirs []string) ([]string, error) {
	absOut, err := filepath.Abs(outputDir)
	if err != nil {
		absOut = outputDir
	}

	wanted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		wanted[ext] = true
	}
	excluded := make(map[string]bool, len(excludeDirs))
	for _, dir := range excludeDirs {
		excluded[dir] = true
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (excluded[name] || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			if abs, err := filepath.Abs(path); err == nil && abs == absOut {
				return filepath.SkipDir
			}
			return nil
		}
		if !wanted[filepath.Ext(path)] {
			return nil
		}
		// Files directly under the output directory when it is not a
		// discoverable directory itself (e.g. created mid-walk).
		if abs, err := filepath.Abs(path); err == nil && strings.HasPrefix(abs, absOut+string(filepath.Separator)) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
