package project

import (
	"errors"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

const DefaultManifestPath = "pixi.toml"

// ErrMissingPackageName indicates a manifest without [package] name.
var ErrMissingPackageName = errors.New("project: manifest has no package name")

// Manifest is the subset of pixi.toml the build tooling reads.
type Manifest struct {
	Package      Package        `toml:"package"`
	Dependencies map[string]any `toml:"dependencies"`
}

type Package struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Load parses the manifest at path. It is read once at startup and passed
// around by value afterwards.
func Load(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if m.Package.Name == "" {
		return nil, fmt.Errorf("load %s: %w", path, ErrMissingPackageName)
	}
	return &m, nil
}

// Requirements returns the dependencies as recipe requirement strings,
// sorted by name. Table entries use their "version" key.
func (m *Manifest) Requirements() []string {
	names := make([]string, 0, len(m.Dependencies))
	for name := range m.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	reqs := make([]string, 0, len(names))
	for _, name := range names {
		var version string
		switch v := m.Dependencies[name].(type) {
		case string:
			version = v
		case map[string]any:
			version, _ = v["version"].(string)
		}
		reqs = append(reqs, FormatDependency(name, version))
	}
	return reqs
}
