package corpus

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"notegraph/pkg/errors"
)

// ============================================================================
// Available Files Provider
// ============================================================================

// FileSet is a materialized snapshot of the corpus on disk, keyed by
// canonical (slash-normalized, root-relative) file id. The engine never
// touches the filesystem itself; it only consults a set like this one.
type FileSet map[string]struct{}

// Contains reports whether the file id exists in the snapshot
func (s FileSet) Contains(file string) bool {
	_, ok := s[file]
	return ok
}

// List returns the file ids sorted
func (s FileSet) List() []string {
	files := make([]string, 0, len(s))
	for file := range s {
		files = append(files, file)
	}
	sort.Strings(files)
	return files
}

// Scan walks the corpus root and returns the set of canonical file ids.
// Hidden directories (dotfiles) are skipped.
func Scan(root string) (FileSet, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, errors.NewCorpusRootMissing(root, err)
	}

	set := make(FileSet)
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if p != root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		set[filepath.ToSlash(rel)] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}
