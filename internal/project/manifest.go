// Package project locates and parses the helios.toml manifest: package
// metadata, source selection, import remappings and diagnostics
// defaults for a workspace.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the workspace root is identified by.
const ManifestName = "helios.toml"

// Manifest is a located, parsed helios.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the manifest file layout.
type Config struct {
	Package     PackageConfig     `toml:"package"`
	Sources     SourcesConfig     `toml:"sources"`
	Remappings  []string          `toml:"remappings"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type SourcesConfig struct {
	// Include lists the directories scanned for *.sol files; defaults
	// to the workspace root.
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`
}

type DiagnosticsConfig struct {
	Max        int  `toml:"max"`
	NoWarnings bool `toml:"no_warnings"`
}

// Find walks up from startDir looking for helios.toml. The second
// return is false when no manifest exists up to the filesystem root.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load parses the manifest at path. Unknown keys are an error so typos
// do not silently disable configuration.
func Load(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	m := &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}
	if err := m.validateRemappings(); err != nil {
		return nil, err
	}
	return m, nil
}

// FindAndLoad combines Find and Load; ok is false when no manifest
// exists.
func FindAndLoad(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

func (m *Manifest) validateRemappings() error {
	for _, r := range m.Config.Remappings {
		if !strings.Contains(r, "=") {
			return fmt.Errorf("%s: remapping %q must have the form prefix=target", m.Path, r)
		}
	}
	return nil
}

// ApplyRemappings rewrites an import path through the manifest's
// remappings, longest matching prefix first. Paths without a matching
// prefix come back unchanged.
func (m *Manifest) ApplyRemappings(importPath string) string {
	bestLen := -1
	result := importPath
	for _, r := range m.Config.Remappings {
		prefix, target, ok := strings.Cut(r, "=")
		if !ok || !strings.HasPrefix(importPath, prefix) {
			continue
		}
		if len(prefix) > bestLen {
			bestLen = len(prefix)
			result = target + importPath[len(prefix):]
		}
	}
	return result
}

// SourceDirs returns the directories to scan, resolved against the
// workspace root.
func (m *Manifest) SourceDirs() []string {
	include := m.Config.Sources.Include
	if len(include) == 0 {
		return []string{m.Root}
	}
	dirs := make([]string, 0, len(include))
	for _, dir := range include {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(m.Root, dir)
		}
		dirs = append(dirs, dir)
	}
	return dirs
}

// Excluded reports whether path matches one of the exclusion globs.
func (m *Manifest) Excluded(path string) bool {
	rel, err := filepath.Rel(m.Root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range m.Config.Sources.Exclude {
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		// Directory prefix exclusion: "lib" excludes lib/a/b.sol.
		if strings.HasPrefix(rel, strings.TrimSuffix(pattern, "/")+"/") {
			return true
		}
	}
	return false
}
