package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cropsight/pointset/internal/pkg/utils/ioutil"
)

func TestNewLoggerVerboseFalse(t *testing.T) {
	t.Parallel()
	stdout := ioutil.NewAtomicWriter()
	stderr := ioutil.NewAtomicWriter()
	logger := NewLogger(stdout, stderr, nil, false)

	logger.Debug("Debug msg")
	logger.Info("Info msg")
	logger.Warn("Warn msg")
	logger.Error("Error msg")

	// info      -> stdout
	// warn, err -> stderr
	assert.Equal(t, "Info msg\n", stdout.String())
	assert.Equal(t, "Warn msg\nError msg\n", stderr.String())
}

func TestNewLoggerVerboseTrue(t *testing.T) {
	t.Parallel()
	stdout := ioutil.NewAtomicWriter()
	stderr := ioutil.NewAtomicWriter()
	logger := NewLogger(stdout, stderr, nil, true)

	logger.Debug("Debug msg")
	logger.Info("Info msg")
	logger.Warn("Warn msg")
	logger.Error("Error msg")

	// Level prefixes are included in verbose mode
	assert.Equal(t, "DEBUG\tDebug msg\nINFO\tInfo msg\n", stdout.String())
	assert.Equal(t, "WARN\tWarn msg\nERROR\tError msg\n", stderr.String())
}

func TestNewLoggerFile(t *testing.T) {
	t.Parallel()
	filePath := filepath.Join(t.TempDir(), "log-file.txt")
	logFile, err := os.OpenFile(filePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	assert.NoError(t, err)

	stdout := ioutil.NewAtomicWriter()
	stderr := ioutil.NewAtomicWriter()
	logger := NewLogger(stdout, stderr, logFile, false)

	logger.Debug("Debug msg")
	logger.Info("Info msg")
	logger.Warn("Warn msg")
	logger.Error("Error msg")
	assert.NoError(t, logFile.Close())

	// All levels are logged to the file
	content, err := os.ReadFile(filePath)
	assert.NoError(t, err)
	assert.Contains(t, string(content), "DEBUG\tDebug msg")
	assert.Contains(t, string(content), "INFO\tInfo msg")
	assert.Contains(t, string(content), "WARN\tWarn msg")
	assert.Contains(t, string(content), "ERROR\tError msg")
}

func TestToWriter(t *testing.T) {
	t.Parallel()
	logger := NewDebugLogger()

	w := ToInfoWriter(logger.SugaredLogger)
	n, err := w.WriteString("line1\nline2\n")
	assert.NoError(t, err)
	assert.Equal(t, 12, n)

	assert.Equal(t, "INFO\tline1\nINFO\tline2\n", logger.InfoMessages())
}

func TestDebugLoggerLevels(t *testing.T) {
	t.Parallel()
	logger := NewDebugLogger()
	logger.Debugf("debug %d", 1)
	logger.Warn("warn 1")
	logger.Warn("warn 2")

	assert.Equal(t, "DEBUG\tdebug 1\n", logger.DebugMessages())
	assert.Equal(t, "WARN\twarn 1\nWARN\twarn 2\n", logger.WarnMessages())
	assert.Equal(t, "", logger.ErrorMessages())
}
