package log

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cropsight/pointset/internal/pkg/utils/errors"
)

// WriteCloser adapts a logger to the io.WriteCloser interface,
// each written line is logged with the defined level.
type WriteCloser struct {
	level  zapcore.Level
	logger *zap.SugaredLogger
}

// Write messages with the defined level to logger.
func (w *WriteCloser) Write(p []byte) (n int, err error) {
	lines := strings.TrimRight(string(p), "\n")
	for _, line := range strings.Split(lines, "\n") {
		msg := strings.TrimRight(line, "\n")
		switch w.level {
		case zapcore.DebugLevel:
			w.logger.Debug(msg)
		case zapcore.InfoLevel:
			w.logger.Info(msg)
		case zapcore.WarnLevel:
			w.logger.Warn(msg)
		default:
			w.logger.Error(msg)
		}
	}
	return len(p), nil
}

func (w *WriteCloser) Close() error {
	return w.logger.Sync()
}

func (w *WriteCloser) WriteString(s string) (n int, err error) {
	return w.Write([]byte(s))
}

func (w *WriteCloser) WriteStringNoErr(s string) {
	if _, err := w.WriteString(s); err != nil {
		panic(errors.Errorf("cannot write: %w", err))
	}
}

func ToDebugWriter(l *zap.SugaredLogger) *WriteCloser {
	return &WriteCloser{zapcore.DebugLevel, l}
}

func ToInfoWriter(l *zap.SugaredLogger) *WriteCloser {
	return &WriteCloser{zapcore.InfoLevel, l}
}

func ToWarnWriter(l *zap.SugaredLogger) *WriteCloser {
	return &WriteCloser{zapcore.WarnLevel, l}
}

func ToErrorWriter(l *zap.SugaredLogger) *WriteCloser {
	return &WriteCloser{zapcore.ErrorLevel, l}
}
