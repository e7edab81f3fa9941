package xlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xbst/lib/infra"
)

type testMemOutWriter struct {
	lock sync.Mutex
	buf  bytes.Buffer
}

func (w *testMemOutWriter) Write(p []byte) (n int, err error) {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.buf.Write(p)
}

func (w *testMemOutWriter) Sync() error {
	return nil
}

func (w *testMemOutWriter) String() string {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.buf.String()
}

// JSONLines decodes every written log entry.
func (w *testMemOutWriter) JSONLines(t *testing.T) []map[string]any {
	lines := strings.Split(strings.TrimSpace(w.String()), "\n")
	res := make([]map[string]any, 0, len(lines))
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		res = append(res, m)
	}
	return res
}

func newTestMemOutWriter(t *testing.T) *testMemOutWriter {
	w := &testMemOutWriter{}
	require.NoError(t, writerMap.AddOrUpdate(testMemAsOut, zapcore.Lock(w)))
	return w
}

func TestLogLevelString(t *testing.T) {
	require.Equal(t, "DEBUG", LogLevelDebug.String())
	require.Equal(t, "INFO", LogLevelInfo.String())
	require.Equal(t, "WARN", LogLevelWarn.String())
	require.Equal(t, "ERROR", LogLevelError.String())
	require.Equal(t, zapcore.DebugLevel, LogLevelDebug.zapLevel())
	require.Equal(t, zapcore.InfoLevel, LogLevelInfo.zapLevel())
	require.Equal(t, zapcore.WarnLevel, LogLevelWarn.zapLevel())
	require.Equal(t, zapcore.ErrorLevel, LogLevelError.zapLevel())
}

func TestGetLogLevelOrDefault(t *testing.T) {
	testcases := []struct {
		in       string
		expected zapcore.Level
	}{
		{"", zapcore.DebugLevel},
		{"  ", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{" WARN ", zapcore.WarnLevel},
		{"Error", zapcore.ErrorLevel},
		{"fatal", zapcore.DebugLevel},
	}
	for _, tc := range testcases {
		require.Equal(t, tc.expected, getLogLevelOrDefault(tc.in), tc.in)
	}
}

func TestXLogger_Options(t *testing.T) {
	require.Panics(t, func() {
		NewXLogger(WithXLoggerEncoder(_encMax))
	})
	require.Panics(t, func() {
		NewXLogger(WithXLoggerWriter(_writerMax))
	})
	require.NotPanics(t, func() {
		NewXLogger(nil, WithXLoggerLevelEncoder(nil), WithXLoggerTimeEncoder(nil))
	})
}

func TestXLogger_JSON(t *testing.T) {
	w := newTestMemOutWriter(t)
	logger := NewXLogger(
		WithXLoggerWriter(testMemAsOut),
		WithXLoggerEncoder(JSON),
		WithXLoggerLevel(LogLevelInfo),
		WithXLoggerConsoleCore(),
	)
	require.Equal(t, "info", logger.Level())

	logger.Debug("hidden")
	logger.Info("visible", zap.Int("round", 1))
	logger.Warn("warned")
	logger.Error(errors.New("plain"), "failed")

	lines := w.JSONLines(t)
	require.Len(t, lines, 3)
	require.Equal(t, "visible", lines[0]["msg"])
	require.Equal(t, "INFO", lines[0]["lvl"])
	require.EqualValues(t, 1, lines[0]["round"])
	require.Contains(t, lines[0]["callAt"], "xlog/xlog_test.go")
	require.Equal(t, "WARN", lines[1]["lvl"])
	require.Equal(t, "plain", lines[2]["error"])
	require.NoError(t, logger.Sync())
}

func TestXLogger_IncreaseLogLevel(t *testing.T) {
	w := newTestMemOutWriter(t)
	logger := NewXLogger(
		WithXLoggerWriter(testMemAsOut),
		WithXLoggerLevel(LogLevelError),
	)
	logger.Info("dropped")
	require.Empty(t, w.String())

	logger.IncreaseLogLevel(zapcore.DebugLevel)
	require.Equal(t, "debug", logger.Level())
	logger.Debug("kept")
	lines := w.JSONLines(t)
	require.Len(t, lines, 1)
	require.Equal(t, "kept", lines[0]["msg"])
}

func TestXLogger_ErrorStack(t *testing.T) {
	w := newTestMemOutWriter(t)
	logger := NewXLogger(WithXLoggerWriter(testMemAsOut))

	logger.ErrorStack(infra.NewErrorStack("bstree order violation"), "validate")
	logger.ErrorStackf(errors.New("plain"), "validate %d", 2)
	logger.ErrorStack(nil, "no error")

	lines := w.JSONLines(t)
	require.Len(t, lines, 3)
	require.Equal(t, "bstree order violation", lines[0]["error"])
	frames, ok := lines[0]["errorStack"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, frames)
	require.Contains(t, frames[0], "TestXLogger_ErrorStack")

	require.Equal(t, "validate 2", lines[1]["msg"])
	require.Equal(t, "plain", lines[1]["error"])
	require.NotContains(t, lines[2], "error")
}

func TestXLogger_ContextFields(t *testing.T) {
	w := newTestMemOutWriter(t)
	logger := NewXLogger(
		WithXLoggerWriter(testMemAsOut),
		WithXLoggerLevel(LogLevelDebug),
		WithXLoggerContextFieldExtract("round"),
		WithXLoggerContextFieldExtract("demo", "app"),
		WithXLoggerContextFieldExtract("trace", ContextKeyMapToOmitempty),
		WithXLoggerContextFieldExtract(""),
	)

	ctx := context.WithValue(context.Background(), ContextKey("round"), 3)
	ctx = context.WithValue(ctx, ContextKey("demo"), "bst")
	logger.InfoContext(ctx, "with fields")

	ctx = context.WithValue(ctx, ContextKey("trace"), "abc")
	logger.ErrorStackContext(ctx, infra.NewErrorStack("broken"), "with trace")

	logger.DebugContext(context.Background(), "empty context")

	lines := w.JSONLines(t)
	require.Len(t, lines, 3)
	require.EqualValues(t, 3, lines[0]["round"])
	require.Equal(t, "bst", lines[0]["app"])
	require.NotContains(t, lines[0], "trace")

	require.Equal(t, "abc", lines[1]["trace"])
	require.Equal(t, "broken", lines[1]["error"])

	require.Equal(t, "nil", lines[2]["round"])
	require.Equal(t, "nil", lines[2]["app"])
	require.NotContains(t, lines[2], "trace")
}

type testBanner struct{}

func (b testBanner) JSON() string {
	return `{"app":"xbst"}`
}

func (b testBanner) PlainText() string {
	return `
 __  __ ___  ___ _____
 \ \/ /| _ )/ __|_   _|
  >  < | _ \\__ \ | |
 /_/\_\|___/|___/ |_|
`
}

func TestXLogger_Banner(t *testing.T) {
	w := newTestMemOutWriter(t)
	logger := NewXLogger(
		WithXLoggerWriter(testMemAsOut),
		WithXLoggerEncoder(PlainText),
	)
	logger.Banner(testBanner{})
	logger.Banner(testBanner{})
	out := w.String()
	require.Equal(t, 1, strings.Count(out, "|___/|___/"))
	require.NotContains(t, out, "INFO")
}
