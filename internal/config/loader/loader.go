// Package loader reads strokemark configuration sources into generic maps.
//
// Files are TOML or YAML, chosen by extension. Environment variables with
// the STROKEMARK_ prefix form a separate source. Sources are combined with
// DeepMerge; later sources win.
package loader

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// IncludeKey names the top-level key listing files merged underneath the
// file that declares it.
const IncludeKey = "include"

// Loader reads one configuration source.
type Loader interface {
	// Load returns nil, nil if the source does not exist.
	Load() (map[string]any, error)
}

// FileLoader is a Loader bound to a file format.
type FileLoader interface {
	Loader
	LoadFrom(path string) (map[string]any, error)
	LoadFromReader(r io.Reader) (map[string]any, error)
}

// FileSystem abstracts file access so tests can use an in-memory tree.
type FileSystem interface {
	fs.FS
	ReadFile(path string) ([]byte, error)
	Stat(path string) (fs.FileInfo, error)
}

// OSFS is the operating system's file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadFile reads the whole file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the OS file system.
func DefaultFS() FileSystem {
	return OSFS{}
}

// ForPath returns the loader matching the extension of path:
// .yaml and .yml are YAML, anything else is TOML.
func ForPath(fsys FileSystem, path string) FileLoader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLLoaderWithFS(fsys, path)
	default:
		return NewTOMLLoaderWithFS(fsys, path)
	}
}

// LoadWithIncludes loads path and every file named by its include key,
// recursively. Included files are merged underneath the including file,
// in the order listed. Relative includes resolve against the including
// file's directory; maxDepth bounds the nesting.
func LoadWithIncludes(fsys FileSystem, path string, maxDepth int) (map[string]any, error) {
	if maxDepth <= 0 {
		return nil, fmt.Errorf("include depth exceeded at %s", path)
	}

	cfg, err := ForPath(fsys, path).LoadFrom(path)
	if err != nil || cfg == nil {
		return cfg, err
	}

	raw, ok := cfg[IncludeKey]
	if !ok {
		return cfg, nil
	}
	delete(cfg, IncludeKey)

	includes, err := includeList(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	base := make(map[string]any)
	dir := filepath.Dir(path)
	for _, inc := range includes {
		if !filepath.IsAbs(inc) {
			inc = filepath.Join(dir, inc)
		}
		incCfg, err := LoadWithIncludes(fsys, inc, maxDepth-1)
		if err != nil {
			return nil, fmt.Errorf("loading include %s: %w", inc, err)
		}
		base = DeepMerge(base, incCfg)
	}
	return DeepMerge(base, cfg), nil
}

func includeList(v any) ([]string, error) {
	switch v := v.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s entries must be strings, got %T", IncludeKey, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s must be a string or a list of strings, got %T", IncludeKey, v)
	}
}
