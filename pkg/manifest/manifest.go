// pkg/manifest/manifest.go
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrNoLibName indicates the manifest declares neither [lib].name nor
// [package].name.
var ErrNoLibName = errors.New("could not infer lib name: ensure [lib].name or [package].name is set")

// Manifest is the subset of a Cargo.toml the tool inspects. Exactly one of
// the two shapes is expected: a single package (Package set) or a workspace
// root (Workspace set, Package nil).
type Manifest struct {
	Package   *PackageSection   `toml:"package"`
	Lib       *LibSection       `toml:"lib"`
	Workspace *WorkspaceSection `toml:"workspace"`
}

// PackageSection is the [package] table.
type PackageSection struct {
	Name string `toml:"name"`
}

// LibSection is the [lib] table.
type LibSection struct {
	Name      string   `toml:"name"`
	CrateType []string `toml:"crate-type"`
}

// WorkspaceSection is the [workspace] table.
type WorkspaceSection struct {
	Members []string `toml:"members"`
}

// Load reads and parses the Cargo.toml in dir.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "Cargo.toml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("Cargo.toml not found in %s", dir)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var m Manifest
	if _, err := toml.Decode(string(data), &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &m, nil
}

// IsWorkspaceRoot reports whether the manifest is a pure workspace root: it
// declares a [workspace] table and no package of its own.
func (m *Manifest) IsWorkspaceRoot() bool {
	return m.Workspace != nil && m.Package == nil
}

// LibName infers the normalized library name: an explicit [lib].name wins,
// else the package name.
func (m *Manifest) LibName() (string, error) {
	if m.Lib != nil && m.Lib.Name != "" {
		return NormalizeCrateName(m.Lib.Name), nil
	}
	if m.Package != nil && m.Package.Name != "" {
		return NormalizeCrateName(m.Package.Name), nil
	}
	return "", ErrNoLibName
}

// NormalizeCrateName maps a crate name to the identifier rustc uses in output
// filenames, replacing `-` with `_`.
func NormalizeCrateName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}
