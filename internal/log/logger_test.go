package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintf_Enabled(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{Enabled: true, W: &buf}

	l.Printf("config: %s", ".tidystyle.yml")

	assert.Equal(t, "config: .tidystyle.yml\n", buf.String())
}

func TestPrintf_Disabled(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{Enabled: false, W: &buf}

	l.Printf("config: %s", ".tidystyle.yml")
	l.Debugf("extends: %s", "./base.yml")

	assert.Empty(t, buf.String())
}

func TestPrintf_MultipleMessages(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)

	l.Printf("file: %s", "site.css")
	l.Debugf("rule: %s", "max-line-length")

	assert.Equal(t, "file: site.css\ndebug: rule: max-line-length\n", buf.String())
}

func TestWarnf_AlwaysWritten(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)

	l.Warnf("skipping %s", "vendor.css")

	assert.Equal(t, "warning: skipping vendor.css\n", buf.String())
}

func TestNilLogger(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() {
		l.Printf("x")
		l.Debugf("x")
		l.Warnf("x")
	})
}
