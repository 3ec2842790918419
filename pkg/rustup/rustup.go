// pkg/rustup/rustup.go
package rustup

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EnsureTarget makes sure the requested toolchain has the target platform
// installed, downloading it through rustup if necessary. rustup's output
// streams to the console; a failure carries rustup's exit code.
func EnsureTarget(ctx context.Context, toolchain, target string) error {
	if _, err := exec.LookPath("rustup"); err != nil {
		return fmt.Errorf("rustup not found in PATH: install Rust from https://rustup.rs first")
	}

	args := []string{"target", "add", "--toolchain", toolchain, target}
	fmt.Println("> rustup " + strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, "rustup", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("rustup target add: %w", err)
	}
	return nil
}
