// pkg/cargo/build.go
package cargo

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// BuildOptions configures a single `cargo build` invocation.
type BuildOptions struct {
	// Dir is the package directory the build runs in.
	Dir string

	// Toolchain is the rustup toolchain selector (e.g. "stable", "nightly",
	// "1.81.0").
	Toolchain string

	// Target is the Rust target triple to compile for.
	Target string

	// Release selects the optimized profile; otherwise cargo builds the
	// default dev profile.
	Release bool

	// TargetDir is exported as CARGO_TARGET_DIR for the invocation.
	TargetDir string

	// RustFlags is exported as RUSTFLAGS for the invocation. Use
	// ComposeRustFlags to assemble it.
	RustFlags string
}

// Build runs cargo with the computed flags. Cargo's own output streams
// straight to the console; a non-zero exit is returned wrapped so the caller
// can recover the exact exit code.
func Build(ctx context.Context, opts *BuildOptions) error {
	if _, err := exec.LookPath("cargo"); err != nil {
		return fmt.Errorf("cargo not found in PATH")
	}

	args := []string{"+" + opts.Toolchain, "build", "--target", opts.Target}
	if opts.Release {
		args = append(args, "--release")
	}

	fmt.Println("> cargo " + strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, "cargo", args...)
	cmd.Dir = opts.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		"RUSTFLAGS="+opts.RustFlags,
		"CARGO_TARGET_DIR="+opts.TargetDir,
	)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("cargo build: %w", err)
	}
	return nil
}

// ComposeRustFlags assembles the RUSTFLAGS value for a build: every
// space-separated token of linkArgs becomes a `-C link-arg=<tok>` pair, in
// order, followed by the raw extra rustFlags tokens.
func ComposeRustFlags(linkArgs, rustFlags string) string {
	var flags []string
	for _, tok := range strings.Fields(linkArgs) {
		flags = append(flags, "-C", "link-arg="+tok)
	}
	flags = append(flags, strings.Fields(rustFlags)...)
	return strings.Join(flags, " ")
}

// ResolveTargetDir returns the cargo build-output directory for a package: an
// inherited CARGO_TARGET_DIR is honored as-is, otherwise `<pkg dir>/target`.
// The result is absolute.
func ResolveTargetDir(pkgDir string) (string, error) {
	dir := os.Getenv("CARGO_TARGET_DIR")
	if dir == "" {
		dir = filepath.Join(pkgDir, "target")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving target dir: %w", err)
	}
	return abs, nil
}

// Clean runs `cargo clean` in the package directory.
func Clean(ctx context.Context, dir string) error {
	if _, err := exec.LookPath("cargo"); err != nil {
		return fmt.Errorf("cargo not found in PATH")
	}

	fmt.Println("> cargo clean")

	cmd := exec.CommandContext(ctx, "cargo", "clean")
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("cargo clean: %w", err)
	}
	return nil
}
