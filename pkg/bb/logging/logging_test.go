package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aztecprotocol/bb-go/pkg/bb/logging"
)

func TestSlogLoggerLevelsAndWith(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := logging.New(slog.New(handler)).With("component", "codec")

	ctx := context.Background()
	logger.Debug(ctx, "debug message", "width", 32)
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message", logging.Redacted("secret"))

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", "level=INFO", "level=WARN", "level=ERROR",
		"component=codec", "width=32", "secret=[redacted]",
	} {
		assert.Contains(t, out, want)
	}
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewZerolog(zerolog.New(&buf).Level(zerolog.DebugLevel)).With("component", "engine")

	logger.Debug(context.Background(), "engine message", "size", 64, logging.Redacted("key"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "debug", record["level"])
	assert.Equal(t, "engine message", record["message"])
	assert.Equal(t, "engine", record["component"])
	assert.Equal(t, float64(64), record["size"])
	assert.Equal(t, logging.Placeholder(), record["key"])
}

func TestZerologLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewZerolog(zerolog.New(&buf).Level(zerolog.InfoLevel))

	logger.Debug(context.Background(), "dropped")
	assert.Zero(t, buf.Len())

	logger.Warn(context.Background(), "kept", "dangling")
	assert.True(t, strings.Contains(buf.String(), `"!BADKEY":"dangling"`), buf.String())
}

func TestDefaultSink(t *testing.T) {
	t.Cleanup(func() { logging.SetDefault(nil) })

	require.NotNil(t, logging.Default())

	var buf bytes.Buffer
	custom := logging.New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	logging.SetDefault(custom)
	assert.Same(t, custom, logging.Default())

	logging.Default().Debug(context.Background(), "through sink")
	assert.Contains(t, buf.String(), "through sink")

	logging.SetDefault(nil)
	assert.NotSame(t, custom, logging.Default())
}
