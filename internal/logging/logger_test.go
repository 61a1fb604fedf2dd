package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" warn ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"nonsense", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("TESSERA_LOG_LEVEL", "debug")
	t.Setenv("TESSERA_LOG_FORMAT", "json")

	cfg := ApplyEnv(DefaultConfig())

	assert.Equal(t, zerolog.DebugLevel, cfg.Level)
	assert.Equal(t, "json", cfg.Format)
}

func TestApplyEnv_IgnoresUnknownFormat(t *testing.T) {
	t.Setenv("TESSERA_LOG_FORMAT", "xml")

	cfg := ApplyEnv(DefaultConfig())

	assert.Equal(t, "console", cfg.Format)
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "dispatcher")
	ctx = WithTabID(ctx, "tab-1")
	ctx = WithPaneID(ctx, "pane-1")
	FromContext(ctx).Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"dispatcher"`)
	assert.Contains(t, out, `"tab_id":"tab-1"`)
	assert.Contains(t, out, `"pane_id":"pane-1"`)
	assert.Contains(t, out, `"message":"hello"`)
}

func TestFromContext_NoLoggerIsSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		FromContext(context.Background()).Info().Msg("dropped")
	})
}

func TestLogRotator_RotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, "tessera.log", 1, 1)
	require.NoError(t, err)
	r.maxSize = 16
	defer r.Close()

	for i := 0; i < 4; i++ {
		_, err := r.Write([]byte("0123456789abc\n"))
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var backups int
	for _, e := range entries {
		if e.Name() != "tessera.log" {
			backups++
		}
	}
	assert.LessOrEqual(t, backups, 1)
	assert.FileExists(t, filepath.Join(dir, "tessera.log"))
}

func TestRunID(t *testing.T) {
	id := GenerateRunID()
	assert.Len(t, id, len("20060102_150405_abcd"))

	got, ok := RunIDFromLine("12:00:00 INF ui ready run_id=" + id + " version=dev")
	require.True(t, ok)
	assert.Equal(t, id, got)

	got, ok = RunIDFromLine(`{"level":"info","run_id":"` + id + `","message":"x"}`)
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = RunIDFromLine("no run here")
	assert.False(t, ok)
}
