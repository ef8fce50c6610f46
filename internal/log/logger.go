package log

import (
	"bytes"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger writes verbose diagnostic messages when Enabled is true.
// Output goes to the configured writer (typically stderr). Warnings are
// written regardless of Enabled. A nil *Logger discards everything.
type Logger struct {
	Enabled bool
	W       io.Writer

	backend *logrus.Logger
}

// New returns a Logger writing to w.
func New(w io.Writer, enabled bool) *Logger {
	return &Logger{Enabled: enabled, W: w}
}

func (l *Logger) entry() *logrus.Logger {
	if l.backend == nil {
		w := l.W
		if w == nil {
			w = os.Stderr
		}
		b := logrus.New()
		b.SetOutput(w)
		b.SetFormatter(plainFormatter{})
		b.SetLevel(logrus.DebugLevel)
		l.backend = b
	}
	return l.backend
}

// Printf writes a formatted message to W when Enabled is true.
// It is a no-op when Enabled is false.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.Enabled {
		return
	}
	l.entry().Infof(format, args...)
}

// Debugf is Printf for lower-level detail, such as each resolved module.
func (l *Logger) Debugf(format string, args ...any) {
	if l == nil || !l.Enabled {
		return
	}
	l.entry().Debugf(format, args...)
}

// Warnf writes a warning even when Enabled is false.
func (l *Logger) Warnf(format string, args ...any) {
	if l == nil {
		return
	}
	l.entry().Warnf(format, args...)
}

// plainFormatter prints the bare message, prefixing warnings and debug
// lines with their level.
type plainFormatter struct{}

func (plainFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	switch e.Level {
	case logrus.InfoLevel:
	case logrus.DebugLevel:
		b.WriteString("debug: ")
	default:
		b.WriteString(e.Level.String())
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	b.WriteByte('\n')
	return b.Bytes(), nil
}
