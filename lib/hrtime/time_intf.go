package hrtime

import "time"

// Clock readings are offsets from the moment the clock was loaded,
// so they never go backwards when the wall clock is adjusted.
type Clock interface {
	MonotonicElapsed() time.Duration
	// Since returns the duration after a previous MonotonicElapsed reading.
	Since(elapsed time.Duration) time.Duration
}
