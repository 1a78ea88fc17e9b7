package log

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelWarn, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
		} else {
			assert.NoError(t, err, tt.in)
		}
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNewTagsComponentAndFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelWarn, Component: ComponentStore, Writer: &buf})

	l.Info("hidden")
	l.Warn("shown", FieldKey, "habits")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "component=store")
	assert.Contains(t, out, "key=habits")
}

func TestOpenFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	l, closer, err := OpenFile(dir, "tui.log", slog.LevelInfo)
	require.NoError(t, err)

	l.Info("started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, "tui.log"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "component=tui"))
}
