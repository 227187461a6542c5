package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cropsight/pointset/internal/pkg/filesystem"
)

const testAnnotationJson = `{
  "shapes": [
    {"label": "weed", "shape_type": "point", "points": [[12.7, 34.2]]},
    {"label": "crop", "shape_type": "point", "points": [[5.0, 6.0]]},
    {"label": "weed", "shape_type": "rectangle", "points": [[1.0, 2.0], [3.0, 4.0]]}
  ]
}`

func TestExtractCommand(t *testing.T) {
	t.Parallel()
	fs := newMemoryFs(t)
	require.NoError(t, fs.WriteFile(filesystem.NewRawFile("plant.json", testAnnotationJson)))

	root, _ := newTestRootCommand(fs)
	root.cmd.SetArgs([]string{"extract", "plant.json", "weed"})
	assert.Equal(t, 0, root.Execute())

	// Only the point shape with the "weed" label is extracted, coordinates are truncated
	file, err := fs.ReadFile("plant.txt", "coordinates")
	assert.NoError(t, err)
	assert.Equal(t, "12 34\n", file.Content)
}

func TestExtractCommandAllLabels(t *testing.T) {
	t.Parallel()
	fs := newMemoryFs(t)
	require.NoError(t, fs.WriteFile(filesystem.NewRawFile("plant.json", testAnnotationJson)))

	root, _ := newTestRootCommand(fs)
	root.cmd.SetArgs([]string{"extract", "plant.json", "all"})
	assert.Equal(t, 0, root.Execute())

	file, err := fs.ReadFile("plant.txt", "coordinates")
	assert.NoError(t, err)
	assert.Equal(t, "12 34\n5 6\n", file.Content)
}

func TestExtractCommandNoMatchingPoint(t *testing.T) {
	t.Parallel()
	fs := newMemoryFs(t)
	require.NoError(t, fs.WriteFile(filesystem.NewRawFile("plant.json", testAnnotationJson)))

	root, out := newTestRootCommand(fs)
	root.cmd.SetArgs([]string{"extract", "plant.json", "tree"})

	// No match is not an error, no file is written
	assert.Equal(t, 0, root.Execute())
	assert.False(t, fs.Exists("plant.txt"))
	assert.Contains(t, out.String(), `No matching point annotation in "plant.json"`)
}

func TestExtractCommandMissingDocument(t *testing.T) {
	t.Parallel()
	root, out := newTestRootCommand(newMemoryFs(t))
	root.cmd.SetArgs([]string{"extract", "missing.json"})
	assert.Equal(t, 1, root.Execute())
	assert.Contains(t, out.String(), `annotation file "missing.json" not found`)
}

func TestExtractCommandMalformedDocument(t *testing.T) {
	t.Parallel()
	fs := newMemoryFs(t)
	require.NoError(t, fs.WriteFile(filesystem.NewRawFile("broken.json", "{not a json")))

	root, out := newTestRootCommand(fs)
	root.cmd.SetArgs([]string{"extract", "broken.json"})
	assert.Equal(t, 1, root.Execute())
	assert.Contains(t, out.String(), `annotation file "broken.json" is not valid JSON`)
}
