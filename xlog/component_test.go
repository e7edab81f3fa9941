package xlog

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/fx/fxtest"
)

func TestFxXLogger_LogEvent(t *testing.T) {
	w := newTestMemOutWriter(t)
	logger := NewXLogger(
		WithXLoggerWriter(testMemAsOut),
		WithXLoggerLevel(LogLevelDebug),
	)
	fxLogger := NewFxXLogger(logger)

	fxLogger.LogEvent(&fxevent.Provided{
		ConstructorName: "demo.NewRunner()",
		OutputTypeNames: []string{"*demo.Runner"},
		ModuleName:      "bstdemo",
	})
	fxLogger.LogEvent(&fxevent.OnStartExecuted{
		FunctionName: "demo.start()",
		CallerName:   "demo.Module",
		Err:          errors.New("round failed"),
	})
	fxLogger.LogEvent(&fxevent.Started{})

	lines := w.JSONLines(t)
	require.Len(t, lines, 3)
	for _, line := range lines {
		require.Equal(t, "Fx", line["component"])
		require.NotContains(t, line, "callAt")
	}
	require.Equal(t, "PROVIDE", lines[0]["msg"])
	require.Equal(t, "bstdemo", lines[0]["module"])
	require.Equal(t, "*demo.Runner", lines[0]["rtype"])
	require.Equal(t, "HOOK OnStart failed", lines[1]["msg"])
	require.Equal(t, "round failed", lines[1]["error"])
	require.Equal(t, "RUNNING", lines[2]["msg"])

	var nilLogger *FxXLogger
	require.NotPanics(t, func() {
		nilLogger.LogEvent(&fxevent.Started{})
	})
}

func TestFxXLogger_App(t *testing.T) {
	w := newTestMemOutWriter(t)
	logger := NewXLogger(
		WithXLoggerWriter(testMemAsOut),
		WithXLoggerLevel(LogLevelDebug),
	)

	started := false
	app := fxtest.New(t,
		fx.WithLogger(func() fxevent.Logger {
			return NewFxXLogger(logger)
		}),
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.StartHook(func() {
				started = true
			}))
		}),
	)
	app.RequireStart()
	app.RequireStop()
	require.True(t, started)

	msgs := make([]any, 0, 16)
	for _, line := range w.JSONLines(t) {
		require.Equal(t, "Fx", line["component"])
		msgs = append(msgs, line["msg"])
	}
	require.Contains(t, msgs, "RUNNING")
	require.Contains(t, msgs, "HOOK OnStart successfully")
}

func TestAntsXLogger(t *testing.T) {
	w := newTestMemOutWriter(t)
	logger := NewXLogger(WithXLoggerWriter(testMemAsOut))

	p, err := ants.NewPool(2, ants.WithLogger(NewAntsXLogger(logger)))
	require.NoError(t, err)
	defer p.Release()

	wg := sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, p.Submit(func() {
		defer wg.Done()
		panic("bstree worker panic")
	}))
	wg.Wait()

	require.Eventually(t, func() bool {
		out := w.String()
		return strings.Contains(out, `"component":"Ants"`) &&
			strings.Contains(out, "bstree worker panic")
	}, time.Second, 10*time.Millisecond)

	var nilLogger *AntsXLogger
	require.NotPanics(t, func() {
		nilLogger.Printf("%s", "ignored")
	})
}
