// pkg/platform/platform.go
package platform

import (
	"fmt"
	"runtime"
)

// OS identifies a supported host operating system.
type OS string

const (
	// OSLinux is a Linux host.
	OSLinux OS = "linux"
	// OSWindows is a Windows host.
	OSWindows OS = "windows"
)

// DetectHost detects the host operating system. Garry's Mod servers only run
// on Linux and Windows, so anything else is rejected outright rather than
// guessed at.
func DetectHost() (OS, error) {
	switch runtime.GOOS {
	case "linux":
		return OSLinux, nil
	case "windows":
		return OSWindows, nil
	default:
		return "", fmt.Errorf("unsupported host OS: %s (only linux and windows are supported)", runtime.GOOS)
	}
}

// IsWindowsTarget reports whether the build produces a Windows binary, either
// natively or through the GNU cross toolchain.
func IsWindowsTarget(os OS, windowsGNU bool) bool {
	return os == OSWindows || windowsGNU
}
