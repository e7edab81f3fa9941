//go:build !windows
// +build !windows

package hrtime

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestUnixClockResolution(t *testing.T) {
	res := unix.Timespec{}
	require.NoError(t, unix.ClockGetres(unix.CLOCK_MONOTONIC, &res))
	t.Logf("monotonic clock resolution is %d nanoseconds", res.Nsec)
	require.Same(t, UnixMonotonicClock, DefaultClock)
}
