// errors_test.go
package gmodbuild

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("manifest error")))
}

func TestExitCode_PropagatesChildExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	err := exec.Command("sh", "-c", "exit 42").Run()
	require.Error(t, err)

	// the same shape the cargo and rustup wrappers produce
	wrapped := fmt.Errorf("cargo build: %w", err)
	assert.Equal(t, 42, ExitCode(wrapped))
}

func TestError_FormatsOpAndPath(t *testing.T) {
	underlying := errors.New("permission denied")

	err := &Error{Op: "create outdir", Path: "/srv/bin", Err: underlying}
	assert.Equal(t, "create outdir /srv/bin: permission denied", err.Error())
	assert.ErrorIs(t, err, underlying)

	err = &Error{Op: "resolve directory", Err: underlying}
	assert.Equal(t, "resolve directory: permission denied", err.Error())
}

func TestRun_MissingDirectory(t *testing.T) {
	_, err := Run(context.Background(), &Options{
		Directory: "/no/such/dir",
		Arch:      64,
		OutDir:    t.TempDir(),
		Toolchain: "stable",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory not found")
}

func TestRun_MissingManifest(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "windows" {
		t.Skip("unsupported host OS")
	}

	_, err := Run(context.Background(), &Options{
		Directory: t.TempDir(),
		Arch:      64,
		OutDir:    t.TempDir(),
		Toolchain: "stable",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cargo.toml not found")
}
