package component

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Identities lists the identities of every template under the template root
// on each search location, sorted and without duplicates. Directories map
// back to namespace segments, so legacy underscore names are reported in
// their namespaced form.
func (r *Renderer) Identities() ([]string, error) {
	root := r.TemplateRoot()

	var bases []string
	if filepath.IsAbs(root) {
		bases = []string{root}
	} else {
		for _, dir := range r.searchPath {
			bases = append(bases, filepath.Join(dir, root))
		}
	}

	seen := make(map[string]bool)
	for _, base := range bases {
		err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == base {
					return fs.SkipDir
				}
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, r.extension) {
				return nil
			}

			rel, err := filepath.Rel(base, path)
			if err != nil {
				return err
			}
			rel = strings.TrimSuffix(rel, r.extension)
			seen[strings.ReplaceAll(rel, string(filepath.Separator), r.separator)] = true
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
