package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cropsight/pointset/internal/pkg/filesystem"
)

func writeSamplePair(t *testing.T, fs filesystem.Fs, stem string) {
	t.Helper()
	require.NoError(t, fs.WriteFile(filesystem.NewRawFile("images/"+stem+".jpg", "image "+stem)))
	require.NoError(t, fs.WriteFile(filesystem.NewRawFile("labels/"+stem+".txt", "1 2\n")))
}

func TestBuildCommand(t *testing.T) {
	t.Parallel()
	fs := newMemoryFs(t)
	for _, stem := range []string{"img001", "img002", "img003", "img004"} {
		writeSamplePair(t, fs, stem)
	}

	root, out := newTestRootCommand(fs)
	root.cmd.SetArgs([]string{"build", "images", "labels", "dataset", "--train-ratio", "0.5"})
	assert.Equal(t, 0, root.Execute())

	// 4 pairs at 0.5 -> 2 train, 2 test
	train, err := fs.ReadFile("dataset/train.list", "manifest")
	require.NoError(t, err)
	test, err := fs.ReadFile("dataset/test.list", "manifest")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimRight(train.Content, "\n"), "\n"), 2)
	assert.Len(t, strings.Split(strings.TrimRight(test.Content, "\n"), "\n"), 2)
	assert.Contains(t, out.String(), "Dataset built: 4 samples")
}

func TestBuildCommandThreeWay(t *testing.T) {
	t.Parallel()
	fs := newMemoryFs(t)
	for _, stem := range []string{
		"img001", "img002", "img003", "img004", "img005",
		"img006", "img007", "img008", "img009", "img010",
	} {
		writeSamplePair(t, fs, stem)
	}

	root, _ := newTestRootCommand(fs)
	root.cmd.SetArgs([]string{
		"build", "images", "labels", "dataset",
		"--train-ratio", "0.8", "--val-ratio", "0.1", "--test-ratio", "0.1",
	})
	assert.Equal(t, 0, root.Execute())

	assert.True(t, fs.IsFile("dataset/train.list"))
	assert.True(t, fs.IsFile("dataset/val.list"))
	assert.True(t, fs.IsFile("dataset/test.list"))
}

func TestBuildCommandInvalidRatio(t *testing.T) {
	t.Parallel()
	fs := newMemoryFs(t)
	writeSamplePair(t, fs, "img001")

	root, out := newTestRootCommand(fs)
	root.cmd.SetArgs([]string{"build", "images", "labels", "dataset", "--train-ratio", "1.5"})

	// Ratios are validated before any output is created
	assert.Equal(t, 1, root.Execute())
	assert.Contains(t, out.String(), "the train ratio must be between 0 and 1 exclusive, found 1.5")
	assert.False(t, fs.Exists("dataset"))
}

func TestBuildCommandRatioSumMismatch(t *testing.T) {
	t.Parallel()
	fs := newMemoryFs(t)
	writeSamplePair(t, fs, "img001")
	writeSamplePair(t, fs, "img002")

	root, out := newTestRootCommand(fs)
	root.cmd.SetArgs([]string{
		"build", "images", "labels", "dataset",
		"--train-ratio", "0.5", "--val-ratio", "0.5", "--test-ratio", "0.5",
	})

	// Ratio validation fails before any output is created
	assert.Equal(t, 1, root.Execute())
	assert.Contains(t, out.String(), "ratios must sum to 1.0, the sum is 1.500")
	assert.False(t, fs.Exists("dataset"))
}

func TestBuildCommandValRatioWithoutTestRatio(t *testing.T) {
	t.Parallel()
	fs := newMemoryFs(t)
	writeSamplePair(t, fs, "img001")

	root, out := newTestRootCommand(fs)
	root.cmd.SetArgs([]string{"build", "images", "labels", "dataset", "--val-ratio", "0.1"})
	assert.Equal(t, 1, root.Execute())
	assert.Contains(t, out.String(), `flags "--val-ratio" and "--test-ratio" must be used together`)
}

func TestBuildCommandMissingDir(t *testing.T) {
	t.Parallel()
	root, out := newTestRootCommand(newMemoryFs(t))
	root.cmd.SetArgs([]string{"build", "images", "labels", "dataset"})
	assert.Equal(t, 1, root.Execute())
	assert.Contains(t, out.String(), `directory "images" not found`)
	assert.False(t, root.fs.Exists("dataset"))
}

func TestBuildCommandSeedFlag(t *testing.T) {
	t.Parallel()
	run := func(seed string) string {
		fs := newMemoryFs(t)
		for _, stem := range []string{
			"img001", "img002", "img003", "img004", "img005",
			"img006", "img007", "img008", "img009", "img010",
		} {
			writeSamplePair(t, fs, stem)
		}
		root, _ := newTestRootCommand(fs)
		root.cmd.SetArgs([]string{"build", "images", "labels", "dataset", "--seed", seed})
		require.Equal(t, 0, root.Execute())
		manifest, err := fs.ReadFile("dataset/train.list", "manifest")
		require.NoError(t, err)
		return manifest.Content
	}

	// The same seed reproduces the same partition
	assert.Equal(t, run("7"), run("7"))
	assert.NotEqual(t, run("7"), run("8"))
}
