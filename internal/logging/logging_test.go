package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRunIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateRunID()
		assert.Len(t, id, 26, "ULIDs are 26 characters")
		assert.False(t, seen[id], "run IDs must be unique")
		seen[id] = true
	}
}

func TestMultiHandlerDispatchesToAll(t *testing.T) {
	var a, b bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&a, nil),
		slog.NewTextHandler(&b, nil),
	)

	logger := slog.New(h)
	logger.Info("hello", "k", "v")

	assert.Contains(t, a.String(), "hello")
	assert.Contains(t, b.String(), "hello")
}

func TestMultiHandlerLevelFiltering(t *testing.T) {
	var debugBuf, errorBuf bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&errorBuf, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))

	logger := slog.New(h)
	logger.Debug("quiet")

	assert.Contains(t, debugBuf.String(), "quiet")
	assert.Empty(t, errorBuf.String(), "record below the handler level must be skipped")
}

func TestMultiHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(slog.NewTextHandler(&buf, nil)).
		WithAttrs([]slog.Attr{slog.String("run_id", "abc")})

	slog.New(h).Info("hello")
	assert.Contains(t, buf.String(), "run_id=abc")
}

func TestSetupWritesJSONLogFile(t *testing.T) {
	dir := t.TempDir()
	runID := GenerateRunID()

	logger, err := Setup(Options{Level: slog.LevelInfo, LogDir: dir, RunID: runID})
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestSetupRejectsMissingLogDir(t *testing.T) {
	_, err := Setup(Options{Level: slog.LevelInfo, LogDir: "/definitely/not/a/dir", RunID: "x"})
	assert.Error(t, err)
}
