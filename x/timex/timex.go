package timex

import "time"

// NowMs returns Unix milliseconds as int64.
func NowMs() int64 { return time.Now().UnixMilli() }

// spinSlice is how much of the tail of a wait is busy-waited rather than
// slept. Timer granularity on most hosts is coarser than a microsecond.
const spinSlice = 100 * time.Microsecond

// SleepMicros blocks the calling goroutine for at least us microseconds.
// The bulk of the wait uses the runtime timer; the remainder is spun against
// the monotonic clock. It reports whether the full duration was observed to
// elapse. There is no upper-bound guarantee and no cancellation; callers
// treat a short wait as best effort only.
func SleepMicros(us uint32) bool {
	d := time.Duration(us) * time.Microsecond
	deadline := time.Now().Add(d)

	if d > spinSlice {
		time.Sleep(d - spinSlice)
	}
	for time.Now().Before(deadline) {
	}
	return !time.Now().Before(deadline)
}
