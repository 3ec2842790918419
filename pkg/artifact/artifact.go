// pkg/artifact/artifact.go
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gmodx/gmodbuild/pkg/platform"
)

// Filename returns the file rustc produces for a cdylib. Windows-flavored
// targets get `<name>.dll`; Linux gets `lib<name>.so`, without doubling the
// prefix for names that already start with "lib".
func Filename(lib string, windowsTarget bool) string {
	if windowsTarget {
		return lib + ".dll"
	}
	if strings.HasPrefix(lib, "lib") {
		return lib + ".so"
	}
	return "lib" + lib + ".so"
}

// Path computes where cargo leaves the built cdylib under its default
// per-target-per-profile layout.
func Path(targetDir, triple, profile, lib string, windowsTarget bool) string {
	return filepath.Join(targetDir, triple, profile, Filename(lib, windowsTarget))
}

// Locate computes the expected artifact path and verifies it exists. The
// prediction assumes cargo's default output layout; a manifest that redirects
// output elsewhere makes this fail by design rather than silently searching.
func Locate(targetDir, triple, profile, lib string, windowsTarget bool) (string, error) {
	path := Path(targetDir, triple, profile, lib, windowsTarget)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("built artifact not found: %s", path)
	}
	return path, nil
}

// Suffix returns the Garry's Mod module suffix for a target: the loader
// expects `_win32.dll`, `_win64.dll`, `_linux.dll` or `_linux64.dll` (the
// `.dll` extension is used on every OS).
func Suffix(os platform.OS, arch int, windowsGNU bool) string {
	if platform.IsWindowsTarget(os, windowsGNU) {
		if arch == 32 {
			return "_win32.dll"
		}
		return "_win64.dll"
	}
	if arch == 32 {
		return "_linux.dll"
	}
	return "_linux64.dll"
}

// FinalPath returns the destination path for the repackaged module.
func FinalPath(outDir, baseName string, os platform.OS, arch int, windowsGNU bool) string {
	return filepath.Join(outDir, baseName+Suffix(os, arch, windowsGNU))
}
