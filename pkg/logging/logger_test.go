package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogger_DefaultsToNop(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, Logger())
	// Must not panic or write anywhere.
	Logger().Info("discarded")
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(New(Options{Verbose: true, Output: &buf}))
	t.Cleanup(func() { SetLogger(nil) })

	Logger().Debug("decoded field", zap.String("name", "apid"))
	assert.Contains(t, buf.String(), "decoded field")
	assert.Contains(t, buf.String(), "apid")
}

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		wantDebug bool
		wantWarn  bool
	}{
		{name: "default is warn", opts: Options{}, wantDebug: false, wantWarn: true},
		{name: "verbose enables debug", opts: Options{Verbose: true}, wantDebug: true, wantWarn: true},
		{name: "quiet only errors", opts: Options{Quiet: true}, wantDebug: false, wantWarn: false},
		{name: "quiet wins over verbose", opts: Options{Quiet: true, Verbose: true}, wantDebug: false, wantWarn: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.opts.Output = &buf
			l := New(tt.opts)

			l.Debug("debug-line")
			l.Warn("warn-line")
			l.Error("error-line")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, strings.Contains(out, "debug-line"))
			assert.Equal(t, tt.wantWarn, strings.Contains(out, "warn-line"))
			assert.Contains(t, out, "error-line")
		})
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "anno.log")

	var buf bytes.Buffer
	l := New(Options{Verbose: true, Output: &buf, File: path})
	l.Debug("to-file")
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to-file")
	assert.Empty(t, buf.String())
}
