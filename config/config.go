// Package config — .gettext.yaml catalog manifest support.
//
// When a .gettext.yaml file exists in the project root, the CLI uses it
// as the source of truth for which catalogs to check: every catalog must
// be explicitly declared, either as a file path or a glob.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// YAML schema
// ---------------------------------------------------------------------------

// File is the top-level .gettext.yaml structure.
type File struct {
	// Catalogs is the list of catalog groups to check.
	Catalogs []Catalog `yaml:"catalogs"`
	// Strict makes `check` treat fuzzy entries as failures.
	Strict bool `yaml:"strict,omitempty"`

	// dir is the directory the file was loaded from; relative catalog
	// paths resolve against it.
	dir string
}

// Catalog describes one group of PO files.
type Catalog struct {
	// Name is a human-readable label shown in status/logs.
	Name string `yaml:"name,omitempty"`
	// Paths are file paths or globs relative to the manifest directory.
	Paths []string `yaml:"paths"`
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// FileName is the default manifest file name.
const FileName = ".gettext.yaml"

// Load loads and validates the manifest from the given directory.
// Returns nil if no manifest exists.
func Load(rootDir string) (*File, error) {
	path := filepath.Join(rootDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(f.Catalogs) == 0 {
		return nil, fmt.Errorf("%s: no catalogs declared", path)
	}
	for i, c := range f.Catalogs {
		if len(c.Paths) == 0 {
			label := c.Name
			if label == "" {
				label = fmt.Sprintf("#%d", i+1)
			}
			return nil, fmt.Errorf("%s: catalog %s has no paths", path, label)
		}
	}

	f.dir = rootDir
	return &f, nil
}

// Resolve expands every catalog path and glob into a deduplicated,
// sorted list of PO file paths. A literal path that does not exist is an
// error; a glob that matches nothing is not.
func (f *File) Resolve() ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	for _, c := range f.Catalogs {
		for _, p := range c.Paths {
			full := p
			if !filepath.IsAbs(full) {
				full = filepath.Join(f.dir, p)
			}

			if hasGlobMeta(p) {
				matches, err := filepath.Glob(full)
				if err != nil {
					return nil, fmt.Errorf("catalog %q: bad glob %q: %w", c.Name, p, err)
				}
				for _, m := range matches {
					if !seen[m] {
						seen[m] = true
						paths = append(paths, m)
					}
				}
				continue
			}

			if _, err := os.Stat(full); err != nil {
				return nil, fmt.Errorf("catalog %q: %w", c.Name, err)
			}
			if !seen[full] {
				seen[full] = true
				paths = append(paths, full)
			}
		}
	}

	sort.Strings(paths)
	return paths, nil
}

func hasGlobMeta(p string) bool {
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '*', '?', '[':
			return true
		}
	}
	return false
}
