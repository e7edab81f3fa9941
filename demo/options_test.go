package demo

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/benz9527/xbst/lib/infra"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv(EnvRounds, "")
	t.Setenv(EnvArrayLength, "")

	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, 1, cfg.Rounds)
	require.Equal(t, 25, cfg.ArrayLength)
	require.Equal(t, 10, cfg.MinValue)
	require.Equal(t, 100, cfg.MaxValue)
	require.Equal(t, []int{101, 202, 150}, cfg.ExtraValues)
	require.Equal(t, os.Stdout, cfg.Out)

	// the defaults must not be shared
	cfg.ExtraValues[0] = 0
	require.Equal(t, 101, defaultExtraValues[0])
}

func TestNewConfig_Env(t *testing.T) {
	t.Setenv(EnvRounds, " 4 ")
	t.Setenv(EnvArrayLength, "8")

	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Rounds)
	require.Equal(t, 8, cfg.ArrayLength)

	cfg, err = NewConfig(WithRounds(2))
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Rounds)
	require.Equal(t, 8, cfg.ArrayLength)
}

func TestNewConfig_InvalidEnv(t *testing.T) {
	t.Setenv(EnvRounds, "many")
	t.Setenv(EnvArrayLength, "-3")

	cfg, err := NewConfig()
	require.Nil(t, cfg)
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	for _, e := range errs {
		_, ok := e.(infra.ErrorStack)
		require.True(t, ok)
	}
	require.Contains(t, errs[0].Error(), EnvRounds)
	require.Contains(t, errs[1].Error(), EnvArrayLength)
}

func TestNewConfig_Options(t *testing.T) {
	t.Setenv(EnvRounds, "")
	t.Setenv(EnvArrayLength, "")

	var buf bytes.Buffer
	cfg, err := NewConfig(
		nil,
		WithRounds(3),
		WithArrayLength(5),
		WithValueRange(-5, 5),
		WithExtraValues(7, 8),
		WithOutput(&buf),
		WithSeed(1, 2),
	)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Rounds)
	require.Equal(t, 5, cfg.ArrayLength)
	require.Equal(t, -5, cfg.MinValue)
	require.Equal(t, 5, cfg.MaxValue)
	require.Equal(t, []int{7, 8}, cfg.ExtraValues)
	require.Same(t, &buf, cfg.Out)
	require.Equal(t, uint64(1), cfg.Seed1)
	require.Equal(t, uint64(2), cfg.Seed2)

	cfg, err = NewConfig(WithExtraValues())
	require.NoError(t, err)
	require.Empty(t, cfg.ExtraValues)
}

func TestNewConfig_InvalidOptions(t *testing.T) {
	t.Setenv(EnvRounds, "")
	t.Setenv(EnvArrayLength, "")

	_, err := NewConfig(
		WithRounds(0),
		WithArrayLength(-1),
		WithValueRange(10, 1),
		WithOutput(nil),
	)
	require.Error(t, err)
	require.Len(t, multierr.Errors(err), 4)
}

func TestWithMeterProvider(t *testing.T) {
	t.Setenv(EnvRounds, "")
	t.Setenv(EnvArrayLength, "")

	cfg, err := NewConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg.MeterProvider)

	_, err = NewConfig(WithMeterProvider(nil))
	require.Error(t, err)
}
