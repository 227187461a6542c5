package filesystem

import (
	"fmt"

	"github.com/cropsight/pointset/internal/pkg/utils/errors"
)

// DirectoryNotFoundError - an input directory is missing, fatal.
type DirectoryNotFoundError struct {
	path string
}

func NewDirectoryNotFoundError(path string) *DirectoryNotFoundError {
	return &DirectoryNotFoundError{path: path}
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf(`directory "%s" not found`, e.path)
}

func (e *DirectoryNotFoundError) Path() string {
	return e.path
}

// CheckDir returns an error if the path is missing or is not a directory.
func CheckDir(fs Fs, path string) error {
	if !fs.Exists(path) {
		return NewDirectoryNotFoundError(path)
	}
	if !fs.IsDir(path) {
		return errors.Errorf(`path "%s" is not a directory`, path)
	}
	return nil
}
