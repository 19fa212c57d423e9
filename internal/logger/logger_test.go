package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies level names from settings and the fallback for unknown names.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":  zapcore.DebugLevel,
		" INFO ": zapcore.InfoLevel,
		"warn":   zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
		"dpanic": zapcore.DPanicLevel,
		"fatal":  zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, s)
		require.Equal(t, lvl, got, s)
	}

	got, ok := ParseLogLevel("loud")
	require.False(t, ok)
	require.Equal(t, zapcore.InfoLevel, got)
}

// TestContextScopedLogger checks that names and pairs added to a context reach the output.
func TestContextScopedLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := ToContext(context.Background(), New(&buf, zapcore.DebugLevel))
	ctx = WithName(ctx, "ringer")
	ctx = WithKV(ctx, "alarm_id", "a-1")

	InfoKV(ctx, "Alarm armed", "delay", "5m0s")

	out := buf.String()
	require.Contains(t, out, "ringer")
	require.Contains(t, out, "Alarm armed")
	require.Contains(t, out, "alarm_id")
	require.Contains(t, out, "a-1")
	require.Contains(t, out, "5m0s")
}

// TestFromContext_FallsBackToGlobal ensures a bare context yields the global logger.
func TestFromContext_FallsBackToGlobal(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))
}
