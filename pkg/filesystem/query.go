package filesystem

import (
	"io/fs"

	"github.com/arthur-debert/measurefs/pkg/types"
)

// Exists reports whether name exists, following symlinks.
func Exists(fsys types.FS, name string) bool {
	_, err := fsys.Stat(name)
	return err == nil
}

// IsDir reports whether name exists and is a directory, following symlinks.
func IsDir(fsys types.FS, name string) bool {
	info, err := fsys.Stat(name)
	return err == nil && info.IsDir()
}

// IsRegular reports whether name exists and is a regular file, following symlinks.
func IsRegular(fsys types.FS, name string) bool {
	info, err := fsys.Stat(name)
	return err == nil && info.Mode().IsRegular()
}

// IsSymlink reports whether name itself is a symbolic link.
func IsSymlink(fsys types.FS, name string) bool {
	info, err := fsys.Lstat(name)
	return err == nil && info.Mode()&fs.ModeSymlink != 0
}

// Size returns the size in bytes of the file at name.
func Size(fsys types.FS, name string) (int64, error) {
	info, err := fsys.Stat(name)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, &fs.PathError{Op: "size", Path: name, Err: fs.ErrInvalid}
	}
	return info.Size(), nil
}
