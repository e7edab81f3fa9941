package demo

import (
	"io"
	"os"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/multierr"

	"github.com/benz9527/xbst/lib/infra"
)

const (
	EnvRounds      = "BST_DEMO_ROUNDS"
	EnvArrayLength = "BST_DEMO_ARRAY_LEN"

	defaultRounds      = 1
	defaultArrayLength = 25
	defaultMinValue    = 10
	defaultMaxValue    = 100
)

var defaultExtraValues = []int{101, 202, 150}

// Config of the demo runner. Every round builds its own tree from a
// fresh random sorted array.
type Config struct {
	Rounds      int
	ArrayLength int
	MinValue    int
	MaxValue    int
	// Values inserted after the initial build, they usually unbalance
	// the tree because all of them are greater than MaxValue.
	ExtraValues []int
	Out         io.Writer
	// Seeds of the PCG source, zero seeds mean random ones.
	Seed1, Seed2 uint64

	// The round stats are recorded by this provider, the otel global
	// one by default.
	MeterProvider metric.MeterProvider
}

type Option func(cfg *Config) error

func WithRounds(rounds int) Option {
	return func(cfg *Config) error {
		if rounds <= 0 {
			return infra.NewErrorStack("[bstdemo] rounds must be positive, got " + strconv.Itoa(rounds))
		}
		cfg.Rounds = rounds
		return nil
	}
}

func WithArrayLength(length int) Option {
	return func(cfg *Config) error {
		if length <= 0 {
			return infra.NewErrorStack("[bstdemo] array length must be positive, got " + strconv.Itoa(length))
		}
		cfg.ArrayLength = length
		return nil
	}
}

func WithValueRange(minValue, maxValue int) Option {
	return func(cfg *Config) error {
		if minValue > maxValue {
			return infra.NewErrorStack("[bstdemo] invalid value range [" +
				strconv.Itoa(minValue) + ", " + strconv.Itoa(maxValue) + "]")
		}
		cfg.MinValue, cfg.MaxValue = minValue, maxValue
		return nil
	}
}

func WithExtraValues(values ...int) Option {
	return func(cfg *Config) error {
		cfg.ExtraValues = append(make([]int, 0, len(values)), values...)
		return nil
	}
}

func WithOutput(w io.Writer) Option {
	return func(cfg *Config) error {
		if w == nil {
			return infra.NewErrorStack("[bstdemo] nil output writer")
		}
		cfg.Out = w
		return nil
	}
}

func WithSeed(seed1, seed2 uint64) Option {
	return func(cfg *Config) error {
		cfg.Seed1, cfg.Seed2 = seed1, seed2
		return nil
	}
}

func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(cfg *Config) error {
		if mp == nil {
			return infra.NewErrorStack("[bstdemo] nil meter provider")
		}
		cfg.MeterProvider = mp
		return nil
	}
}

func lookupPositiveEnv(key string, defaultValue int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || len(strings.TrimSpace(v)) == 0 {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return defaultValue, infra.WrapErrorStackWithMessage(err, "[bstdemo] env "+key)
	}
	if n <= 0 {
		return defaultValue, infra.NewErrorStack("[bstdemo] env " + key + " must be positive, got " + v)
	}
	return n, nil
}

// NewConfig loads the environment overrides first, the options win.
func NewConfig(opts ...Option) (*Config, error) {
	var err, merr error
	cfg := &Config{
		MinValue:    defaultMinValue,
		MaxValue:    defaultMaxValue,
		ExtraValues: append([]int(nil), defaultExtraValues...),
		Out:         os.Stdout,
	}
	cfg.MeterProvider = otel.GetMeterProvider()
	cfg.Rounds, err = lookupPositiveEnv(EnvRounds, defaultRounds)
	merr = multierr.Append(merr, err)
	cfg.ArrayLength, err = lookupPositiveEnv(EnvArrayLength, defaultArrayLength)
	merr = multierr.Append(merr, err)

	for _, o := range opts {
		if o == nil {
			continue
		}
		merr = multierr.Append(merr, o(cfg))
	}
	if merr != nil {
		return nil, merr
	}
	return cfg, nil
}
