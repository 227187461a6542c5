package log

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cropsight/pointset/internal/pkg/utils/ioutil"
)

// DebugLogger returns logs as string in tests.
type DebugLogger struct {
	*zap.SugaredLogger
	out *ioutil.AtomicWriter
}

func NewDebugLogger() *DebugLogger {
	out := ioutil.NewAtomicWriter()

	// Log all levels, each line is "LEVEL\tmessage"
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: "\t",
	})
	core := zapcore.NewCore(encoder, zapcore.AddSync(out), zapcore.DebugLevel)
	return &DebugLogger{zap.New(core).Sugar(), out}
}

func (l *DebugLogger) AllMessages() string {
	return l.out.String()
}

func (l *DebugLogger) DebugMessages() string {
	return l.messages("DEBUG")
}

func (l *DebugLogger) InfoMessages() string {
	return l.messages("INFO")
}

func (l *DebugLogger) WarnMessages() string {
	return l.messages("WARN")
}

func (l *DebugLogger) ErrorMessages() string {
	return l.messages("ERROR")
}

func (l *DebugLogger) messages(level string) string {
	var out strings.Builder
	for _, line := range strings.Split(l.out.String(), "\n") {
		if strings.HasPrefix(line, level+"\t") {
			out.WriteString(line)
			out.WriteString("\n")
		}
	}
	return out.String()
}
