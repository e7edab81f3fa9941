//go:build windows
// +build windows

package hrtime

import (
	"time"

	"golang.org/x/sys/windows"
)

var (
	qpcFrequency         int64
	qpcStartCounter      int64
	WindowsPerfCounter   Clock = &windowsPerfCounterClock{}
	DefaultClock               = WindowsPerfCounter
)

func init() {
	if err := windows.QueryPerformanceFrequency(&qpcFrequency); err != nil || qpcFrequency <= 0 {
		DefaultClock = GoMonotonicClock
		return
	}
	_ = windows.QueryPerformanceCounter(&qpcStartCounter)
}

// https://learn.microsoft.com/en-us/windows/win32/sysinfo/acquiring-high-resolution-time-stamps
type windowsPerfCounterClock struct{}

func (w *windowsPerfCounterClock) MonotonicElapsed() time.Duration {
	if qpcFrequency <= 0 {
		return GoMonotonicClock.MonotonicElapsed()
	}
	var counter int64
	if err := windows.QueryPerformanceCounter(&counter); err != nil {
		return GoMonotonicClock.MonotonicElapsed()
	}
	ticks := counter - qpcStartCounter
	// Split to avoid the overflow of ticks * 1e9.
	sec, rem := ticks/qpcFrequency, ticks%qpcFrequency
	return time.Duration(sec)*time.Second + time.Duration(rem*int64(time.Second)/qpcFrequency)
}

func (w *windowsPerfCounterClock) Since(elapsed time.Duration) time.Duration {
	return w.MonotonicElapsed() - elapsed
}
