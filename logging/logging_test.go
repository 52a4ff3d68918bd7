package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, WarnLevel, ParseLevel("warning"))
	assert.Equal(t, ErrorLevel, ParseLevel("error"))
	assert.Equal(t, InfoLevel, ParseLevel("info"))
	// unknown names fall back to info
	assert.Equal(t, InfoLevel, ParseLevel("trace"))
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", DebugLevel.String())
	assert.Equal(t, "ERROR", ErrorLevel.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestGlobalDefaultsToDefaultLogger(t *testing.T) {
	_, ok := Global().(*DefaultLogger)
	assert.True(t, ok)
}

func TestSetGlobalNilInstallsNoOp(t *testing.T) {
	prev := Global()
	defer SetGlobal(prev)

	SetGlobal(nil)
	_, ok := Global().(NoOp)
	assert.True(t, ok)
}

func TestDefaultLoggerFormat(t *testing.T) {
	d := NewDefaultLogger()
	line := d.format(InfoLevel, nil, "reading file", []Fields{{"path": "a.ts", "ndat": 100}})
	assert.Equal(t, "[INFO] reading file ndat=100 path=a.ts", line)
}

func TestDefaultLoggerFormatError(t *testing.T) {
	d := NewDefaultLogger()
	line := d.format(ErrorLevel, assert.AnError, "read failed", nil)
	assert.Contains(t, line, "[ERROR] read failed: ")
}

func TestWithFieldsMergesPresets(t *testing.T) {
	d := NewDefaultLogger()
	child := d.WithFields(Fields{"series": 2}).(*DefaultLogger)
	line := child.format(InfoLevel, nil, "done", []Fields{{"n": 3}})
	assert.Equal(t, "[INFO] done n=3 series=2", line)

	// the parent keeps its own field set
	assert.Empty(t, d.fields)
}
