package colors

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) record(level, msg string) {
	r.lines = append(r.lines, fmt.Sprintf("%s:%s", level, msg))
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.record("debug", msg) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.record("info", msg) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.record("warn", msg) }
func (r *recordingLogger) Error(msg string, args ...any) { r.record("error", msg) }

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	restore := SetOutput(&out, &errOut)
	t.Cleanup(restore)
	return &out, &errOut
}

func TestErrorWritesToStderr(t *testing.T) {
	out, errOut := capture(t)

	Error("something", "went wrong")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error:")
	assert.Contains(t, errOut.String(), "something went wrong")
}

func TestSuccessWritesToStdout(t *testing.T) {
	out, errOut := capture(t)

	Success("operation completed")

	assert.Contains(t, out.String(), checkmark)
	assert.Contains(t, out.String(), "operation completed")
	assert.Empty(t, errOut.String())
}

func TestWarningAndInfo(t *testing.T) {
	out, errOut := capture(t)

	Warning("careful")
	Info("fyi")

	assert.Contains(t, errOut.String(), "Warning: careful")
	assert.Contains(t, out.String(), "fyi")
}

func TestDebugGatedByDebugMode(t *testing.T) {
	_, errOut := capture(t)
	SetDebug(false)

	Debug("hidden")
	assert.Empty(t, errOut.String())

	SetDebug(true)
	t.Cleanup(func() { SetDebug(false) })
	Debug("shown")
	assert.Contains(t, errOut.String(), "Debug: shown")
}

func TestMessagesMirroredToLogger(t *testing.T) {
	capture(t)
	rec := &recordingLogger{}
	SetLogger(rec)
	t.Cleanup(func() { SetLogger(nil) })
	SetDebug(false)

	Error("e")
	Warning("w")
	Success("s")
	Info("i")
	Debug("d")

	assert.Equal(t, []string{"error:e", "warn:w", "info:s", "info:i", "debug:d"}, rec.lines)
}
