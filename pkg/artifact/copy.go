// pkg/artifact/copy.go
package artifact

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Copy copies src to dst, preserving the file mode and modification time.
func Copy(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("copying artifact: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("copying artifact: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return fmt.Errorf("copying artifact: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying artifact: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("copying artifact: %w", err)
	}

	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
