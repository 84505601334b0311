package timerfd

import (
	"math"

	"golang.org/x/sys/unix"
)

const nsecPerSec = 1e9

// secondsToTimespec splits a floating point number of seconds into the
// kernel's sec/nsec pair. The whole part truncates toward zero (identical to
// floor for the non-negative values this package supports), the fractional
// part is rounded to nanosecond resolution. Rounding may carry into the
// seconds field, the nsec field always ends up in [0, 1e9).
//
// Negative input is not validated here, the kernel rejects it in
// timerfd_settime with EINVAL.
func secondsToTimespec(seconds float64) unix.Timespec {
	sec := int64(seconds)
	nsec := int64(math.Round((seconds - float64(sec)) * nsecPerSec))
	if nsec == nsecPerSec {
		sec++
		nsec = 0
	}
	return unix.Timespec{Sec: sec, Nsec: nsec}
}

// timespecToSeconds is the inverse of secondsToTimespec, lossless within
// nanosecond resolution for values below 2^31 seconds.
func timespecToSeconds(ts unix.Timespec) float64 {
	return float64(ts.Sec) + float64(ts.Nsec)/nsecPerSec
}
