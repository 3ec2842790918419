// pkg/manifest/candidate.go
package manifest

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gmodx/gmodbuild/pkg/cargo"
)

// ErrNoCdylib indicates no workspace member declares a cdylib target.
var ErrNoCdylib = errors.New(`no cdylib targets found: add [lib] crate-type = ["cdylib"]`)

// Candidate is a buildable dynamic-library target: the directory of the
// package that owns it and its normalized library name.
type Candidate struct {
	Dir string
	Lib string
}

// AmbiguousError is returned when a workspace holds several cdylib targets
// and the working directory does not select one of them.
type AmbiguousError struct {
	Candidates []Candidate
}

func (e *AmbiguousError) Error() string {
	var b strings.Builder
	b.WriteString("multiple cdylib targets in workspace:\n")
	for _, c := range e.Candidates {
		fmt.Fprintf(&b, "- %s (lib: %s)\n", c.Dir, c.Lib)
	}
	b.WriteString("run from the desired package directory to disambiguate")
	return b.String()
}

// Inspect resolves which package to build and what rustc will name its
// library. A plain crate answers from its own manifest; a workspace root goes
// through cargo's structured metadata.
func Inspect(ctx context.Context, dir string) (Candidate, error) {
	m, err := Load(dir)
	if err != nil {
		return Candidate{}, err
	}

	if !m.IsWorkspaceRoot() {
		lib, err := m.LibName()
		if err != nil {
			return Candidate{}, err
		}
		return Candidate{Dir: dir, Lib: lib}, nil
	}

	meta, err := cargo.LoadMetadata(ctx, dir)
	if err != nil {
		return Candidate{}, err
	}
	return PickCdylib(meta, dir)
}

// Candidates collects one (directory, lib name) pair per package that
// declares a cdylib target. Only the first cdylib target of each package
// counts; cargo only builds one library target per package anyway.
func Candidates(meta *cargo.Metadata) []Candidate {
	var out []Candidate
	for _, pkg := range meta.Packages {
		for _, tgt := range pkg.Targets {
			if !tgt.HasKind("cdylib") {
				continue
			}
			name := tgt.Name
			if name == "" {
				name = pkg.Name
			}
			out = append(out, Candidate{
				Dir: resolvePath(filepath.Dir(pkg.ManifestPath)),
				Lib: NormalizeCrateName(name),
			})
			break
		}
	}
	return out
}

// PickCdylib selects the candidate to build. A single candidate wins
// regardless of where the tool was invoked; with several, the working
// directory must match one of them.
func PickCdylib(meta *cargo.Metadata, workdir string) (Candidate, error) {
	candidates := Candidates(meta)
	if len(candidates) == 0 {
		return Candidate{}, ErrNoCdylib
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	resolved := resolvePath(workdir)
	for _, c := range candidates {
		if c.Dir == resolved {
			return c, nil
		}
	}

	return Candidate{}, &AmbiguousError{Candidates: candidates}
}

// resolvePath makes a path absolute and follows symlinks so that two spellings
// of the same directory compare equal. Paths that do not exist are left at
// their absolute form.
func resolvePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		return real
	}
	return abs
}

// List enumerates every cdylib candidate reachable from dir: the crate itself
// for a plain package, or all member candidates for a workspace root.
func List(ctx context.Context, dir string) ([]Candidate, error) {
	m, err := Load(dir)
	if err != nil {
		return nil, err
	}

	if !m.IsWorkspaceRoot() {
		lib, err := m.LibName()
		if err != nil {
			return nil, err
		}
		return []Candidate{{Dir: resolvePath(dir), Lib: lib}}, nil
	}

	meta, err := cargo.LoadMetadata(ctx, dir)
	if err != nil {
		return nil, err
	}
	return Candidates(meta), nil
}
