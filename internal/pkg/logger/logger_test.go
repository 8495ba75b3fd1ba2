package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"Warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, ok := ParseLevel(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	got, ok := ParseLevel("verbose")
	assert.False(t, ok)
	assert.Equal(t, slog.LevelInfo, got)
}

func TestToZapLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, toZapLevel(slog.LevelDebug))
	assert.Equal(t, zapcore.InfoLevel, toZapLevel(slog.LevelInfo))
	assert.Equal(t, zapcore.WarnLevel, toZapLevel(slog.LevelWarn))
	assert.Equal(t, zapcore.ErrorLevel, toZapLevel(slog.LevelError))
}

func TestInitZap_InstallsDefaultLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	zapLogger, err := InitZap("warn")
	require.NoError(t, err)
	require.NotNil(t, zapLogger)

	assert.Same(t, globalLogger, slog.Default())
	assert.True(t, zapLogger.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, zapLogger.Core().Enabled(zapcore.InfoLevel))

	NewSlogAdapter().Debug("dropped below warn")
}
