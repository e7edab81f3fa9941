//go:build !windows
// +build !windows

package hrtime

import (
	"time"

	"github.com/samber/lo"
	"golang.org/x/sys/unix"
)

var (
	unixMonotonicStartTs int64
	UnixMonotonicClock   Clock = &unixMonotonicClock{}
	DefaultClock               = UnixMonotonicClock
)

func init() {
	unixMonotonicStartTs = unixMonotonicNow()
}

func unixMonotonicNow() int64 {
	ts := unix.Timespec{}
	lo.Must0(unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts))
	return ts.Nano()
}

type unixMonotonicClock struct{}

func (u *unixMonotonicClock) MonotonicElapsed() time.Duration {
	return time.Duration(unixMonotonicNow() - unixMonotonicStartTs)
}

func (u *unixMonotonicClock) Since(elapsed time.Duration) time.Duration {
	return u.MonotonicElapsed() - elapsed
}
