package filesystem

import (
	"fmt"
	"io"

	"github.com/arthur-debert/measurefs/pkg/types"
)

// FileMode and DirMode are applied to everything a copy creates. Source
// permissions are not carried over.
const (
	FileMode = 0644
	DirMode  = 0755
)

// CopyFile copies the bytes of src to dst. dst must not exist. On failure
// any partially written dst is removed.
func CopyFile(fsys types.FS, src, dst string) (err error) {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := fsys.Create(dst, FileMode)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", dst, cerr)
		}
		if err != nil {
			_ = fsys.Remove(dst)
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return nil
}
