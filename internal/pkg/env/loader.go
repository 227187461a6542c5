package env

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/cropsight/pointset/internal/pkg/utils/errors"
)

// LoadDotEnv loads the ".env" file from the dir, if the file exists.
// Already defined variables take precedence, same as in the godotenv library.
func LoadDotEnv(envs *Map, dir string) error {
	path := filepath.Join(dir, ".env") // nolint: forbidigo
	info, err := os.Stat(path)         // nolint: forbidigo
	switch {
	case os.IsNotExist(err):
		return nil
	case err != nil:
		return errors.Errorf("cannot check if path \"%s\" exists: %w", path, err)
	case info.IsDir():
		return nil
	}

	fileEnvs, err := godotenv.Read(path)
	if err != nil {
		return errors.Errorf("cannot load file \"%s\": %w", path, err)
	}

	for key, value := range fileEnvs {
		if _, found := envs.Lookup(key); !found {
			envs.Set(key, value)
		}
	}

	return nil
}
