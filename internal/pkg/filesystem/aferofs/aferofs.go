// nolint: forbidigo
package aferofs

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/cropsight/pointset/internal/pkg/encoding/json"
	"github.com/cropsight/pointset/internal/pkg/filesystem"
	"github.com/cropsight/pointset/internal/pkg/utils/errors"
)

// Backend is an underlying filesystem implementation, eg. local, memory, ...
type Backend interface {
	afero.Fs
	Name() string
	BasePath() string
	Walk(root string, walkFn filepath.WalkFunc) error
}

// Fs is default implementation of the filesystem.Fs interface.
// It is built on top of the afero library.
type Fs struct {
	backend    Backend
	utils      *afero.Afero
	logger     *zap.SugaredLogger
	workingDir string
}

func New(logger *zap.SugaredLogger, backend Backend, workingDir string) *Fs {
	return &Fs{
		backend:    backend,
		utils:      &afero.Afero{Fs: backend},
		logger:     logger,
		workingDir: workingDir,
	}
}

// Backend returns the underlying afero filesystem.
func (fs *Fs) Backend() Backend {
	return fs.backend
}

func (fs *Fs) Name() string {
	return fs.backend.Name()
}

func (fs *Fs) BasePath() string {
	return fs.backend.BasePath()
}

func (fs *Fs) WorkingDir() string {
	return fs.workingDir
}

func (fs *Fs) SetLogger(logger *zap.SugaredLogger) {
	fs.logger = logger
}

func (fs *Fs) Walk(root string, walkFn filepath.WalkFunc) error {
	return fs.backend.Walk(root, walkFn)
}

func (fs *Fs) Glob(pattern string) (matches []string, err error) {
	return afero.Glob(fs.backend, pattern)
}

func (fs *Fs) Stat(path string) (os.FileInfo, error) {
	return fs.backend.Stat(path)
}

func (fs *Fs) ReadDir(path string) ([]os.FileInfo, error) {
	return fs.utils.ReadDir(path)
}

// Mkdir creates directory and all parents.
func (fs *Fs) Mkdir(path string) error {
	if err := fs.utils.MkdirAll(path, 0o755); err != nil {
		return errors.Errorf(`cannot create directory "%s": %w`, path, err)
	}
	return nil
}

func (fs *Fs) Exists(path string) bool {
	if _, err := fs.backend.Stat(path); err == nil {
		return true
	}
	return false
}

func (fs *Fs) IsFile(path string) bool {
	if s, err := fs.backend.Stat(path); err == nil {
		return !s.IsDir()
	}
	return false
}

func (fs *Fs) IsDir(path string) bool {
	if s, err := fs.backend.Stat(path); err == nil {
		return s.IsDir()
	}
	return false
}

func (fs *Fs) Create(name string) (afero.File, error) {
	return fs.backend.Create(name)
}

func (fs *Fs) Open(name string) (afero.File, error) {
	return fs.backend.Open(name)
}

func (fs *Fs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	return fs.backend.OpenFile(name, flag, perm)
}

func (fs *Fs) Copy(src, dst string) error {
	return fs.copy(src, dst, false)
}

func (fs *Fs) CopyForce(src, dst string) error {
	return fs.copy(src, dst, true)
}

func (fs *Fs) copy(src, dst string, force bool) error {
	if !fs.Exists(src) {
		return errors.Errorf(`cannot copy "%s" -> "%s": source does not exist`, src, dst)
	}

	if fs.Exists(dst) {
		if force {
			if err := fs.Remove(dst); err != nil {
				return err
			}
		} else {
			return errors.Errorf(`cannot copy "%s" -> "%s": destination exists`, src, dst)
		}
	}

	if err := fs.Mkdir(filesystem.Dir(dst)); err != nil {
		return err
	}

	if err := CopyFs2Fs(fs, src, fs, dst); err != nil {
		return errors.Errorf(`cannot copy "%s" -> "%s": %w`, src, dst, err)
	}

	fs.logger.Debugf(`Copied "%s" -> "%s"`, src, dst)
	return nil
}

func (fs *Fs) Move(src, dst string) error {
	return fs.move(src, dst, false)
}

func (fs *Fs) MoveForce(src, dst string) error {
	return fs.move(src, dst, true)
}

func (fs *Fs) move(src, dst string, force bool) error {
	if !fs.Exists(src) {
		return errors.Errorf(`cannot move "%s" -> "%s": source does not exist`, src, dst)
	}

	if fs.Exists(dst) {
		if force {
			if err := fs.Remove(dst); err != nil {
				return err
			}
		} else {
			return errors.Errorf(`cannot move "%s" -> "%s": destination exists`, src, dst)
		}
	}

	if err := fs.Mkdir(filesystem.Dir(dst)); err != nil {
		return err
	}

	if err := fs.backend.Rename(src, dst); err != nil {
		return errors.Errorf(`cannot move "%s" -> "%s": %w`, src, dst, err)
	}

	fs.logger.Debugf(`Moved "%s" -> "%s"`, src, dst)
	return nil
}

// Remove file or directory with all sub-files.
func (fs *Fs) Remove(path string) error {
	if err := fs.backend.RemoveAll(path); err != nil {
		return errors.Errorf(`cannot remove "%s": %w`, path, err)
	}

	fs.logger.Debugf(`Removed "%s"`, path)
	return nil
}

func (fs *Fs) ReadFile(path, desc string) (*filesystem.RawFile, error) {
	desc = fileDesc(desc)
	content, err := fs.utils.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf(`missing %s "%s"`, desc, path)
		}
		return nil, errors.Errorf(`cannot read %s "%s": %w`, desc, path, err)
	}

	fs.logger.Debugf(`Loaded "%s"`, path)
	return filesystem.NewRawFile(path, string(content)).SetDescription(desc), nil
}

func (fs *Fs) WriteFile(file *filesystem.RawFile) error {
	path := file.Path()
	if err := fs.Mkdir(filesystem.Dir(path)); err != nil {
		return err
	}

	if err := fs.utils.WriteFile(path, []byte(file.Content), 0o644); err != nil {
		return errors.Errorf(`cannot write %s "%s": %w`, fileDesc(file.Description()), path, err)
	}

	fs.logger.Debugf(`Saved "%s"`, path)
	return nil
}

func (fs *Fs) ReadJsonFileTo(path, desc string, target any) error {
	file, err := fs.ReadFile(path, desc)
	if err != nil {
		return err
	}

	if err := json.DecodeString(file.Content, target); err != nil {
		return errors.PrefixErrorf(err, `%s "%s" is invalid`, fileDesc(desc), path)
	}

	return nil
}

func fileDesc(desc string) string {
	if desc == "" {
		return "file"
	}
	return desc + " file"
}
