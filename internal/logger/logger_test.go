package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"DEBUG", LevelDebug, false},
		{"info", LevelInfo, false},
		{"", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"Warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetLevel(LevelWarn)

	l.Debug("step toggled")
	l.Info("wizard finished")
	l.Warn("state load failed")
	l.Error("hook failed")

	out := buf.String()
	require.NotContains(t, out, "step toggled")
	require.NotContains(t, out, "wizard finished")
	require.Contains(t, out, "[WARN] state load failed")
	require.Contains(t, out, "[ERROR] hook failed")
}

func TestLogger_Prefix(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetPrefix("stepper")

	l.Info("attached %d steps", 3)
	require.Contains(t, buf.String(), "[INFO] stepper: attached 3 steps")
}

func TestLogger_EnvLevel(t *testing.T) {
	t.Setenv(EnvLevel, "debug")
	require.Equal(t, LevelDebug, New().level)
}

func TestLogger_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vstepper.log")
	t.Setenv(EnvFile, path)

	l := New()
	l.Info("written to file")
	require.NoError(t, l.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), "written to file")
}

func TestLogger_Configure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configured.log")
	l := New()

	require.NoError(t, l.Configure("error", path))
	l.Warn("dropped")
	l.Error("kept")
	require.NoError(t, l.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(content), "dropped")
	require.Contains(t, string(content), "kept")

	require.Error(t, l.Configure("loud", ""))
	require.Error(t, l.Configure("", filepath.Join(t.TempDir(), "missing", "x.log")))
}

func TestLogger_CloseWithoutFile(t *testing.T) {
	l := New()
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	Default.SetOutput(&buf)
	Default.SetLevel(LevelDebug)
	t.Cleanup(func() { Default.SetLevel(LevelInfo) })

	Debug("debug %s", "test")
	Info("info %s", "test")
	Warn("warn %s", "test")
	Error("error %s", "test")

	out := buf.String()
	for _, want := range []string{"debug test", "info test", "warn test", "error test"} {
		require.Contains(t, out, want)
	}
}
