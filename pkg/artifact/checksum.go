// pkg/artifact/checksum.go
package artifact

import (
	"fmt"
	"io"
	"os"

	"zombiezen.com/go/nix"
)

// Checksum returns the SRI digest (sha256-<base64>) of the file at path, for
// verifying release artifacts after download.
func Checksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("hashing artifact: %w", err)
	}
	defer f.Close()

	h := nix.NewHasher(nix.SHA256)
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing artifact: %w", err)
	}

	return h.SumHash().SRI(), nil
}
