package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cropsight/pointset/internal/pkg/filesystem"
	"github.com/cropsight/pointset/internal/pkg/filesystem/aferofs"
	"github.com/cropsight/pointset/internal/pkg/log"
)

func TestBatchRun(t *testing.T) {
	t.Parallel()
	logger := log.NewDebugLogger()
	fs, err := aferofs.NewMemoryFs(logger.SugaredLogger, ".")
	require.NoError(t, err)

	// One valid, one without points, one malformed
	require.NoError(t, fs.WriteFile(filesystem.NewRawFile(
		"json/img001.json",
		`{"shapes":[{"label":"weed","shape_type":"point","points":[[1.9,2.9]]}]}`,
	)))
	require.NoError(t, fs.WriteFile(filesystem.NewRawFile(
		"json/img002.json",
		`{"shapes":[{"label":"weed","shape_type":"rectangle","points":[[0,0],[9,9]]}]}`,
	)))
	require.NoError(t, fs.WriteFile(filesystem.NewRawFile("json/img003.json", `{"shapes": [`)))

	batch := NewBatch(fs, logger.SugaredLogger, NewLabelFilter(), nil)
	result, err := batch.Run("json", "out")
	assert.NoError(t, err)

	// A malformed document does not abort the batch
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.Errored)

	// Only the valid document produced a coordinate file
	assert.True(t, fs.IsFile("out/img001.txt"))
	assert.False(t, fs.Exists("out/img002.txt"))
	assert.False(t, fs.Exists("out/img003.txt"))

	file, err := fs.ReadFile("out/img001.txt", "coordinates")
	assert.NoError(t, err)
	assert.Equal(t, "1 2\n", file.Content)

	// Malformed document is reported
	assert.Contains(t, logger.WarnMessages(), "img003.json")

	assert.Equal(t, "Processed 3 files | success 1 | skipped 1 | error 1", result.Summary())
}

func TestBatchRunLabelFilter(t *testing.T) {
	t.Parallel()
	logger := log.NewDebugLogger()
	fs, err := aferofs.NewMemoryFs(logger.SugaredLogger, ".")
	require.NoError(t, err)

	require.NoError(t, fs.WriteFile(filesystem.NewRawFile(
		"json/img001.json",
		`{"shapes":[
			{"label":"crop","shape_type":"point","points":[[1,1]]},
			{"label":"weed","shape_type":"point","points":[[2,2]]}
		]}`,
	)))

	batch := NewBatch(fs, logger.SugaredLogger, NewLabelFilter("weed"), nil)
	result, err := batch.Run("json", "out")
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Succeeded)

	file, err := fs.ReadFile("out/img001.txt", "coordinates")
	assert.NoError(t, err)
	assert.Equal(t, "2 2\n", file.Content)
}

func TestBatchRunEmptyDir(t *testing.T) {
	t.Parallel()
	logger := log.NewDebugLogger()
	fs, err := aferofs.NewMemoryFs(logger.SugaredLogger, ".")
	require.NoError(t, err)
	require.NoError(t, fs.Mkdir("json"))

	batch := NewBatch(fs, logger.SugaredLogger, NewLabelFilter(), nil)
	result, err := batch.Run("json", "out")
	assert.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.Contains(t, logger.WarnMessages(), "No JSON file found")
}

func TestBatchRunMissingDir(t *testing.T) {
	t.Parallel()
	logger := log.NewDebugLogger()
	fs, err := aferofs.NewMemoryFs(logger.SugaredLogger, ".")
	require.NoError(t, err)

	batch := NewBatch(fs, logger.SugaredLogger, NewLabelFilter(), nil)
	_, err = batch.Run("missing", "out")
	assert.Error(t, err)

	dirErr := &filesystem.DirectoryNotFoundError{}
	assert.ErrorAs(t, err, &dirErr)
}
