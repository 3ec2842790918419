// pkg/cargo/metadata.go
package cargo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
)

// Metadata is the subset of `cargo metadata` output the inspector needs.
type Metadata struct {
	Packages []Package `json:"packages"`
}

// Package is one workspace member package.
type Package struct {
	Name         string   `json:"name"`
	ManifestPath string   `json:"manifest_path"`
	Targets      []Target `json:"targets"`
}

// Target is one declared build target of a package.
type Target struct {
	Name string   `json:"name"`
	Kind []string `json:"kind"`
}

// HasKind reports whether the target declares the given kind (e.g. "cdylib").
func (t Target) HasKind(kind string) bool {
	for _, k := range t.Kind {
		if k == kind {
			return true
		}
	}
	return false
}

// LoadMetadata runs `cargo metadata` in dir and parses the project structure.
// Only local packages are included (--no-deps); the dependency graph is
// cargo's business, not ours.
func LoadMetadata(ctx context.Context, dir string) (*Metadata, error) {
	if _, err := exec.LookPath("cargo"); err != nil {
		return nil, fmt.Errorf("cargo not found in PATH")
	}

	cmd := exec.CommandContext(ctx, "cargo", "metadata", "--no-deps", "--format-version", "1")
	cmd.Dir = dir
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("cargo metadata: %w", err)
	}

	var meta Metadata
	if err := json.Unmarshal(out, &meta); err != nil {
		return nil, fmt.Errorf("parsing cargo metadata: %w", err)
	}

	return &meta, nil
}
