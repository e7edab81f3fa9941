package main

import (
	"context"
	"os"
	"time"

	_ "go.uber.org/automaxprocs"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/benz9527/xbst/demo"
	"github.com/benz9527/xbst/observability"
	"github.com/benz9527/xbst/xlog"
)

func main() {
	// The reports go to stdout, the logs and the metrics to stderr.
	logger := xlog.NewXLogger(
		xlog.WithXLoggerWriter(xlog.StdErr),
		xlog.WithXLoggerEncoder(xlog.PlainText),
		xlog.WithXLoggerContextFieldExtract(demo.ContextKeyRun),
		xlog.WithXLoggerContextFieldExtract(demo.ContextKeyRound),
	)
	os.Exit(run(logger))
}

func run(logger xlog.XLogger) int {
	defer func() {
		_ = logger.Sync()
	}()

	typ, err := observability.ParseMetricsExporter(os.Getenv(observability.EnvMetricsExporter))
	if err != nil {
		logger.ErrorStack(err, "bstdemo metrics exporter")
		return 1
	}
	mp, err := observability.NewMeterProvider(typ, os.Stderr)
	if err != nil {
		logger.ErrorStack(err, "bstdemo meter provider")
		return 1
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mp.Shutdown(ctx); err != nil {
			logger.ErrorStack(err, "bstdemo meter provider shutdown failed")
		}
	}()
	if typ != observability.NoneExporter {
		if err := observability.StartAppStats(mp, "bstdemo"); err != nil {
			logger.ErrorStack(err, "bstdemo app stats")
			return 1
		}
	}

	app := fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return xlog.NewFxXLogger(logger)
		}),
		fx.Provide(func() xlog.XLogger {
			return logger
		}),
		demo.Module(demo.WithMeterProvider(mp)),
	)
	if err := app.Err(); err != nil {
		logger.ErrorStack(err, "bstdemo init failed")
		return 1
	}

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		logger.ErrorStack(err, "bstdemo failed")
		return 1
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		logger.ErrorStack(err, "bstdemo stop failed")
		return 1
	}
	return 0
}
