// nolint: forbidigo
package filesystem

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/cropsight/pointset/internal/pkg/utils/errors"
)

type Factory func(logger *zap.SugaredLogger, workingDir string) (fs Fs, err error)

// Fs - filesystem interface, all paths are relative to the base path.
type Fs interface {
	Name() string // name of the used implementation, for example local, memory, ...
	BasePath() string
	WorkingDir() string
	SetLogger(logger *zap.SugaredLogger)
	Walk(root string, walkFn filepath.WalkFunc) error
	Glob(pattern string) (matches []string, err error)
	Stat(path string) (os.FileInfo, error)
	ReadDir(path string) ([]os.FileInfo, error)
	Mkdir(path string) error
	Exists(path string) bool
	IsFile(path string) bool
	IsDir(path string) bool
	Create(name string) (afero.File, error)
	Open(name string) (afero.File, error)
	OpenFile(name string, flag int, perm os.FileMode) (afero.File, error)
	Copy(src, dst string) error
	CopyForce(src, dst string) error
	Move(src, dst string) error
	MoveForce(src, dst string) error
	Remove(path string) error
	ReadFile(path, desc string) (*RawFile, error)
	WriteFile(file *RawFile) error
	ReadJsonFileTo(path, desc string, target any) error
}

// Rel returns relative path.
func Rel(base, path string) string {
	relPath, err := filepath.Rel(base, path)
	if err != nil {
		panic(errors.Errorf(`cannot get relative path, base="%s", path="%s"`, base, path))
	}
	return relPath
}

// Join joins any number of path elements into a single path.
func Join(elem ...string) string {
	return filepath.Join(elem...)
}

// Split splits path immediately following the final separator.
func Split(path string) (dir, file string) {
	return filepath.Split(path)
}

// Dir returns all but the last element of path, typically the path's directory.
func Dir(path string) string {
	return filepath.Dir(path)
}

// Base returns the last element of path.
func Base(path string) string {
	return filepath.Base(path)
}

// Ext returns the file name extension of path, including the dot.
func Ext(path string) string {
	return filepath.Ext(path)
}

// Stem returns the file name of path without the extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

// Match reports whether name matches the shell file name pattern.
func Match(pattern, name string) (matched bool, err error) {
	return filepath.Match(pattern, name)
}

// ToSlash returns the result of replacing each OS separator with a slash.
func ToSlash(path string) string {
	return filepath.ToSlash(path)
}

// FromSlash returns the result of replacing each slash with the OS separator.
func FromSlash(path string) string {
	return filepath.FromSlash(path)
}
