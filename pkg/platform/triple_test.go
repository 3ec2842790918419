// pkg/platform/triple_test.go
package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriple(t *testing.T) {
	tests := []struct {
		name       string
		os         OS
		arch       int
		windowsGNU bool
		want       string
	}{
		{"windows 32-bit is native msvc", OSWindows, 32, false, "i686-pc-windows-msvc"},
		{"windows 64-bit is native msvc", OSWindows, 64, false, "x86_64-pc-windows-msvc"},
		{"windows host ignores gnu flag", OSWindows, 64, true, "x86_64-pc-windows-msvc"},
		{"linux 32-bit", OSLinux, 32, false, "i686-unknown-linux-gnu"},
		{"linux 64-bit", OSLinux, 64, false, "x86_64-unknown-linux-gnu"},
		{"gnu cross 32-bit", OSLinux, 32, true, "i686-pc-windows-gnu"},
		{"gnu cross 64-bit", OSLinux, 64, true, "x86_64-pc-windows-gnu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Triple(tt.os, tt.arch, tt.windowsGNU)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTriple_RejectsUnsupportedArch(t *testing.T) {
	for _, arch := range []int{0, 16, 128, -64} {
		_, err := Triple(OSLinux, arch, false)
		assert.Error(t, err, "arch %d", arch)
	}
}

func TestIsWindowsTarget(t *testing.T) {
	assert.True(t, IsWindowsTarget(OSWindows, false))
	assert.True(t, IsWindowsTarget(OSWindows, true))
	assert.True(t, IsWindowsTarget(OSLinux, true))
	assert.False(t, IsWindowsTarget(OSLinux, false))
}
