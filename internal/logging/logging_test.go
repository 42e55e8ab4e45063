package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", LevelDebug, true},
		{"INFO", LevelInfo, true},
		{"", LevelInfo, true},
		{"warning", LevelWarn, true},
		{" error ", LevelError, true},
		{"loud", LevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
	assert.Equal(t, "UNKNOWN", Level(9).String())
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelWarn, Output: &buf, Prefix: "ayed"})

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown %d", 1)
	l.Error("shown %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] ayed: shown 1")
	assert.Contains(t, out, "[ERROR] ayed: shown 2")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	root := New(Config{Level: LevelDebug, Output: &buf})
	l := root.WithComponent("editor").WithField("pane", "abcd")

	l.Info("mode %s", "normal")
	assert.Contains(t, buf.String(), "mode normal component=editor pane=abcd\n")

	// fields do not leak back to the parent
	buf.Reset()
	root.Info("plain")
	assert.NotContains(t, buf.String(), "component=")
}

func TestDerivedLoggersShareSink(t *testing.T) {
	var buf bytes.Buffer
	root := New(Config{Level: LevelInfo, Output: &buf})
	child := root.WithComponent("config")

	root.SetLevel(LevelError)
	child.Warn("dropped")
	assert.Empty(t, buf.String())

	root.Disable()
	child.Error("dropped")
	assert.Empty(t, buf.String())

	root.Enable()
	child.ErrorErr("failed", errors.New("boom"))
	assert.Contains(t, buf.String(), "failed component=config error=boom")
	assert.Equal(t, LevelError, child.Level())
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing")
	l.WithField("k", 1).Error("nothing")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ayed.log")
	l, closeFn, err := OpenFile(path, Config{Level: LevelInfo, Prefix: "ayed"})
	require.NoError(t, err)

	l.Info("started")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] ayed: started")

	_, _, err = OpenFile(filepath.Join(t.TempDir(), "missing", "x.log"), DefaultConfig())
	assert.Error(t, err)
}
