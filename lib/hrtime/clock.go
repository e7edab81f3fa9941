package hrtime

import (
	"time"
)

var (
	appStartTime           = time.Now()
	GoMonotonicClock Clock = &goMonotonicClock{}
)

type goMonotonicClock struct{}

// time.Since uses the monotonic reading kept in appStartTime.
func (g *goMonotonicClock) MonotonicElapsed() time.Duration {
	return time.Since(appStartTime)
}

func (g *goMonotonicClock) Since(elapsed time.Duration) time.Duration {
	return g.MonotonicElapsed() - elapsed
}

func MonotonicElapsed() time.Duration {
	return DefaultClock.MonotonicElapsed()
}

func Since(elapsed time.Duration) time.Duration {
	return DefaultClock.Since(elapsed)
}
