// nolint: forbidigo
package aferofs

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/cropsight/pointset/internal/pkg/filesystem"
	"github.com/cropsight/pointset/internal/pkg/filesystem/aferofs/localfs"
	"github.com/cropsight/pointset/internal/pkg/filesystem/aferofs/memoryfs"
)

// NewLocalFs creates a filesystem rooted in the working dir.
// If the working dir is empty, the OS working dir is used.
func NewLocalFs(logger *zap.SugaredLogger, workingDir string) (fs filesystem.Fs, err error) {
	if workingDir == "" {
		workingDir, err = os.Getwd()
		if err != nil {
			return nil, err
		}
	}

	// Convert working dir path to absolute
	workingDir, err = filepath.Abs(workingDir)
	if err != nil {
		return nil, err
	}

	return New(logger, localfs.New(workingDir), "."), nil
}

func NewMemoryFs(logger *zap.SugaredLogger, workingDir string) (fs filesystem.Fs, err error) {
	return New(logger, memoryfs.New(), workingDir), nil
}
