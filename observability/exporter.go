package observability

// https://opentelemetry.io/docs/languages/go/exporters/

import (
	"io"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/benz9527/xbst/lib/infra"
)

// EnvMetricsExporter selects the exporter, empty disables the export.
const EnvMetricsExporter = "BST_DEMO_METRICS"

type MetricsExporter string

const (
	NoneExporter    MetricsExporter = ""
	ConsoleExporter MetricsExporter = "stdout"
)

const (
	defaultExportInterval = 10 * time.Second
	defaultExportTimeout  = 5 * time.Second
)

func ParseMetricsExporter(s string) (MetricsExporter, error) {
	switch typ := MetricsExporter(strings.ToLower(strings.TrimSpace(s))); typ {
	case NoneExporter, ConsoleExporter:
		return typ, nil
	default:
		return NoneExporter, infra.NewErrorStack("[observability] unknown metrics exporter " + s)
	}
}

// NewMeterProvider builds the provider of the exporter and installs it
// as the otel global one. The caller shuts it down to flush the last
// readings. NoneExporter provider has no reader and records nothing.
func NewMeterProvider(typ MetricsExporter, out io.Writer) (*sdkmetric.MeterProvider, error) {
	var (
		mp  *sdkmetric.MeterProvider
		err error
	)
	switch typ {
	case ConsoleExporter:
		mp, err = newConsoleMeterProvider(defaultExportInterval, defaultExportTimeout,
			stdoutmetric.WithWriter(out),
			stdoutmetric.WithPrettyPrint(),
		)
	case NoneExporter:
		mp = sdkmetric.NewMeterProvider()
	default:
		return nil, infra.NewErrorStack("[observability] unknown metrics exporter " + string(typ))
	}
	if err != nil {
		return nil, err
	}
	otel.SetMeterProvider(mp)
	return mp, nil
}

// Serves for test/dev environment.
func newConsoleMeterProvider(interval, timeout time.Duration, opts ...stdoutmetric.Option) (*sdkmetric.MeterProvider, error) {
	exporter, err := stdoutmetric.New(opts...)
	if err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[observability] new stdout metrics exporter")
	}
	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
		exporter,
		sdkmetric.WithInterval(interval),
		sdkmetric.WithTimeout(timeout),
	))), nil
}
