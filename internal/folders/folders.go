package folders

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// DirPerm is the mode used for directories created by this package.
const DirPerm fs.FileMode = 0o755

// ErrEmptyPath is returned when a folder path is blank.
var ErrEmptyPath = errors.New("folder path cannot be empty")

// CreateMissing creates every folder that does not exist yet, including parents.
// It fails with a *fs.PathError wrapping syscall.ENOTDIR when a path exists but
// is not a directory.
func CreateMissing(paths []string) error {
	for _, path := range paths {
		if err := ensureDir(path); err != nil {
			return err
		}
	}
	return nil
}

// Ensure is the variadic form of CreateMissing.
func Ensure(paths ...string) error {
	return CreateMissing(paths)
}

// EnsureParent creates the directory that will hold file.
func EnsureParent(file string) error {
	if file == "" {
		return ErrEmptyPath
	}
	dir := filepath.Dir(file)
	if dir == "." {
		return nil
	}
	return ensureDir(dir)
}

func ensureDir(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return &fs.PathError{Op: "ensure", Path: path, Err: syscall.ENOTDIR}
		}
		return nil
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(path, DirPerm); err != nil {
			return fmt.Errorf("create folder %s: %w", path, err)
		}
		return nil
	default:
		return err
	}
}
