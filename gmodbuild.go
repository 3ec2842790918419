// gmodbuild.go
package gmodbuild

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gmodx/gmodbuild/pkg/artifact"
	"github.com/gmodx/gmodbuild/pkg/cargo"
	"github.com/gmodx/gmodbuild/pkg/manifest"
	"github.com/gmodx/gmodbuild/pkg/platform"
	"github.com/gmodx/gmodbuild/pkg/rustup"
)

// Re-export inspector types for convenience
type (
	// Candidate is a buildable cdylib target within a crate or workspace.
	Candidate = manifest.Candidate
	// AmbiguousError lists the cdylib candidates of an ambiguous workspace.
	AmbiguousError = manifest.AmbiguousError
)

// Re-export inspector sentinels
var (
	ErrNoCdylib  = manifest.ErrNoCdylib
	ErrNoLibName = manifest.ErrNoLibName
)

// Options is the build configuration for one run. Constructed once from CLI
// input and immutable afterwards.
type Options struct {
	// Directory is the crate or workspace root (default: current directory).
	Directory string

	// Arch is the target architecture, 32 or 64.
	Arch int

	// OutDir is the destination directory for the renamed module.
	OutDir string

	// Name overrides the final base filename; empty means the inferred
	// library name.
	Name string

	// RustFlags are extra compiler flags appended verbatim to RUSTFLAGS.
	RustFlags string

	// LinkArgs are extra linker args; each token becomes a `-C link-arg=`
	// flag.
	LinkArgs string

	// Dev selects the non-optimized build profile.
	Dev bool

	// Toolchain is the rustup toolchain selector.
	Toolchain string

	// WindowsGNU cross-compiles Windows targets with the GNU ABI instead of
	// the native MSVC one.
	WindowsGNU bool

	// Compress also writes an xz-compressed copy of the final module.
	Compress bool

	// Debug enables extra console detail.
	Debug bool
}

// Result describes the outcome of a successful build.
type Result struct {
	// Candidate is the package that was built.
	Candidate Candidate

	// Artifact is the raw cdylib cargo produced.
	Artifact string

	// Output is the renamed module in the output directory.
	Output string

	// Checksum is the SRI digest of Output.
	Checksum string

	// Archive is the xz copy of Output, if requested.
	Archive string
}

// Run executes the whole pipeline: resolve platform and target, inspect the
// manifest, prepare the toolchain, build, then locate and repackage the
// artifact. Any failure aborts the run; delegated-process failures keep their
// exit code recoverable via ExitCode.
func Run(ctx context.Context, opts *Options) (*Result, error) {
	workdir, err := filepath.Abs(opts.Directory)
	if err != nil {
		return nil, &Error{Op: "resolve directory", Path: opts.Directory, Err: err}
	}
	if info, err := os.Stat(workdir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("directory not found: %s", workdir)
	}

	hostOS, err := platform.DetectHost()
	if err != nil {
		return nil, err
	}

	triple, err := platform.Triple(hostOS, opts.Arch, opts.WindowsGNU)
	if err != nil {
		return nil, err
	}

	cand, err := manifest.Inspect(ctx, workdir)
	if err != nil {
		return nil, err
	}

	baseName := opts.Name
	if baseName == "" {
		baseName = cand.Lib
	}

	if err := rustup.EnsureTarget(ctx, opts.Toolchain, triple); err != nil {
		return nil, err
	}

	targetDir, err := cargo.ResolveTargetDir(cand.Dir)
	if err != nil {
		return nil, err
	}

	outDir, err := filepath.Abs(opts.OutDir)
	if err != nil {
		return nil, &Error{Op: "resolve outdir", Path: opts.OutDir, Err: err}
	}

	profile := "release"
	if opts.Dev {
		profile = "debug"
	}

	rustFlags := cargo.ComposeRustFlags(opts.LinkArgs, opts.RustFlags)

	printBanner(opts, hostOS, triple, cand, baseName, targetDir, outDir, profile, rustFlags)

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, &Error{Op: "create outdir", Path: outDir, Err: err}
	}
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return nil, &Error{Op: "create target dir", Path: targetDir, Err: err}
	}

	if err := cargo.Build(ctx, &cargo.BuildOptions{
		Dir:       cand.Dir,
		Toolchain: opts.Toolchain,
		Target:    triple,
		Release:   !opts.Dev,
		TargetDir: targetDir,
		RustFlags: rustFlags,
	}); err != nil {
		return nil, err
	}

	windowsTarget := platform.IsWindowsTarget(hostOS, opts.WindowsGNU)

	built, err := artifact.Locate(targetDir, triple, profile, cand.Lib, windowsTarget)
	if err != nil {
		return nil, err
	}

	dest := artifact.FinalPath(outDir, baseName, hostOS, opts.Arch, opts.WindowsGNU)
	if err := artifact.Copy(built, dest); err != nil {
		return nil, err
	}

	result := &Result{
		Candidate: cand,
		Artifact:  built,
		Output:    dest,
	}

	if result.Checksum, err = artifact.Checksum(dest); err != nil {
		return nil, err
	}

	if opts.Compress {
		if result.Archive, err = artifact.CompressXZ(dest); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func printBanner(opts *Options, hostOS platform.OS, triple string, cand Candidate, baseName, targetDir, outDir, profile, rustFlags string) {
	line := strings.Repeat("=", 50)
	fmt.Println(line)
	fmt.Println("GMod Rust Build")
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("Toolchain       : %s\n", opts.Toolchain)
	fmt.Printf("Host OS         : %s\n", hostOS)
	fmt.Printf("Arch            : %d-bit\n", opts.Arch)
	fmt.Printf("Target          : %s\n", triple)
	fmt.Printf("Crate dir       : %s\n", cand.Dir)
	fmt.Printf("Inferred lib    : %s\n", cand.Lib)
	fmt.Printf("Final base      : %s\n", baseName)
	fmt.Printf("Out dir         : %s\n", outDir)
	fmt.Printf("Profile         : %s\n", profile)
	fmt.Printf("RUSTFLAGS       : %s\n", rustFlags)
	if opts.Debug {
		fmt.Printf("Target dir      : %s\n", targetDir)
	}
	fmt.Println(line)
	fmt.Println()
}
