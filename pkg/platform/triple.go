// pkg/platform/triple.go
package platform

import "fmt"

// Triple returns the Rust target triple for the requested combination of host
// OS, architecture and Windows toolchain flavor. On a Windows host the native
// MSVC toolchain is always used; the GNU flavor only applies when
// cross-compiling Windows binaries from Linux.
func Triple(os OS, arch int, windowsGNU bool) (string, error) {
	if arch != 32 && arch != 64 {
		return "", fmt.Errorf("unsupported architecture: %d (must be 32 or 64)", arch)
	}

	if os == OSWindows {
		if arch == 32 {
			return "i686-pc-windows-msvc", nil
		}
		return "x86_64-pc-windows-msvc", nil
	}

	if windowsGNU {
		if arch == 32 {
			return "i686-pc-windows-gnu", nil
		}
		return "x86_64-pc-windows-gnu", nil
	}

	if arch == 32 {
		return "i686-unknown-linux-gnu", nil
	}
	return "x86_64-unknown-linux-gnu", nil
}
