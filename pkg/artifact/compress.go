// pkg/artifact/compress.go
package artifact

import (
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz"
)

// CompressXZ writes an xz-compressed copy of path next to it and returns the
// new path (`<path>.xz`). Useful for release uploads; servers unpack the
// module themselves.
func CompressXZ(path string) (string, error) {
	in, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("compressing artifact: %w", err)
	}
	defer in.Close()

	dst := path + ".xz"
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("compressing artifact: %w", err)
	}

	w, err := xz.NewWriter(out)
	if err != nil {
		out.Close()
		return "", fmt.Errorf("compressing artifact: %w", err)
	}

	if _, err := io.Copy(w, in); err != nil {
		w.Close()
		out.Close()
		return "", fmt.Errorf("compressing artifact: %w", err)
	}
	if err := w.Close(); err != nil {
		out.Close()
		return "", fmt.Errorf("compressing artifact: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("compressing artifact: %w", err)
	}

	return dst, nil
}
