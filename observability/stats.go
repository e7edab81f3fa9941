package observability

import (
	"context"
	"runtime"
	"strings"

	otelruntime "go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/multierr"

	"github.com/benz9527/xbst/lib/infra"
)

const appStatsPrefix = "xbst/app"

func appStatsName(name string) string {
	builder := &strings.Builder{}
	builder.WriteString(appStatsPrefix)
	builder.WriteString("/")
	if len(strings.TrimSpace(name)) > 0 {
		builder.WriteString(strings.TrimSpace(name))
	} else {
		builder.WriteString("default")
	}
	return builder.String()
}

// StartAppStats observes the goroutines, GOMAXPROCS and the go runtime
// metrics (gc, heap) through the given provider.
func StartAppStats(mp metric.MeterProvider, name string) error {
	if mp == nil {
		return infra.NewErrorStack("[observability] nil meter provider")
	}
	meter := mp.Meter(
		appStatsName(name),
		metric.WithInstrumentationVersion(otelruntime.Version()),
	)
	_, err1 := meter.Int64ObservableUpDownCounter(
		"app.core.goroutines",
		metric.WithDescription(`The application goroutines' info.`),
		metric.WithInt64Callback(func(ctx context.Context, ob metric.Int64Observer) error {
			ob.Observe(int64(runtime.NumGoroutine()))
			return nil
		}),
	)
	_, err2 := meter.Int64ObservableUpDownCounter(
		"app.core.processes",
		metric.WithDescription(`The application GOMAXPROCS.`),
		metric.WithInt64Callback(func(ctx context.Context, ob metric.Int64Observer) error {
			ob.Observe(int64(runtime.GOMAXPROCS(0)))
			return nil
		}),
	)
	err3 := otelruntime.Start(otelruntime.WithMeterProvider(mp))
	if err := multierr.Combine(err1, err2, err3); err != nil {
		return infra.WrapErrorStackWithMessage(err, "[observability] start app stats")
	}
	return nil
}
