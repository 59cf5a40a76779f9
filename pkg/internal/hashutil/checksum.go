package hashutil

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/arthur-debert/measurefs/pkg/types"
)

// Checksum calculates the SHA256 checksum of a file on fsys
func Checksum(fsys types.FS, path string) (string, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return fmt.Sprintf("sha256:%x", hash.Sum(nil)), nil
}

// Equal reports whether two files on fsys hold the same bytes.
func Equal(fsys types.FS, a, b string) (bool, error) {
	sumA, err := Checksum(fsys, a)
	if err != nil {
		return false, err
	}
	sumB, err := Checksum(fsys, b)
	if err != nil {
		return false, err
	}
	return sumA == sumB, nil
}
