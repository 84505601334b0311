// Package timerfd wraps the Linux timer-notification facility (man 2
// timerfd_create) as plain functions over an opaque integer descriptor.
//
// The descriptor behaves like any readable fd: register it in epoll/select
// and read 8 bytes when it becomes readable. This package never tracks
// descriptor liveness, closing the fd is the caller's job.
package timerfd

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	// ClockRealtime is the settable system-wide wall clock
	ClockRealtime = unix.CLOCK_REALTIME

	// ClockMonotonic is the nonsettable monotonically increasing clock
	ClockMonotonic = unix.CLOCK_MONOTONIC

	// ClockMonotonicRaw is ClockMonotonic without NTP adjustment
	ClockMonotonicRaw = unix.CLOCK_MONOTONIC_RAW

	// ClockBoottime is ClockMonotonic including time spent suspended
	ClockBoottime = unix.CLOCK_BOOTTIME

	// Cloexec sets FD_CLOEXEC on the new descriptor
	Cloexec = unix.TFD_CLOEXEC

	// Nonblock makes reads fail with EAGAIN instead of blocking
	Nonblock = unix.TFD_NONBLOCK

	// TimerAbstime interprets the value passed to SetTime/SetTimeNs as an
	// absolute point on the timer's clock instead of relative to now.
	// The interval is always a period, never absolute.
	TimerAbstime = unix.TFD_TIMER_ABSTIME

	// TimerCancelOnSet makes a ClockRealtime timer readable with ECANCELED
	// when the wall clock jumps discontinuously
	TimerCancelOnSet = unix.TFD_TIMER_CANCEL_ON_SET
)

// Create returns a new timer descriptor on the given clock. flags is a
// bitwise-OR of Cloexec and Nonblock, or 0. The timer starts disarmed.
//
// The kernel owns the timer, release it with unix.Close(fd) when done.
func Create(clockid, flags int) (int, error) {
	fd, err := unix.TimerfdCreate(clockid, flags)
	if err != nil {
		return -1, osError("timerfd_create", err)
	}
	return fd, nil
}

// SetTime arms (value > 0) or disarms (value == 0) the timer. value and
// interval are seconds, the fractional part carries nanosecond resolution.
// interval > 0 makes the timer periodic after the first expiration.
// flags may contain TimerAbstime and TimerCancelOnSet.
//
// Returns the timer's previous value and interval, always as relative
// seconds until the next expiration.
func SetTime(fd, flags int, value, interval float64) (oldValue, oldInterval float64, err error) {
	newSpec := unix.ItimerSpec{
		Value:    secondsToTimespec(value),
		Interval: secondsToTimespec(interval),
	}
	return settime(fd, flags, &newSpec)
}

// SetTimeNs is the sub-second fast path of SetTime: valueNs and intervalNs
// are nanosecond counts with an implicit whole-seconds part of zero, so both
// must stay below one second. The previous state is still returned as
// floating point seconds, exactly like SetTime.
func SetTimeNs(fd, flags int, valueNs, intervalNs int64) (oldValue, oldInterval float64, err error) {
	newSpec := unix.ItimerSpec{
		Value:    unix.Timespec{Sec: 0, Nsec: valueNs},
		Interval: unix.Timespec{Sec: 0, Nsec: intervalNs},
	}
	return settime(fd, flags, &newSpec)
}

// settime is the single arm/disarm primitive behind SetTime and SetTimeNs.
// No validation of the new spec, the kernel rejects out-of-range fields
// with EINVAL.
func settime(fd, flags int, newSpec *unix.ItimerSpec) (float64, float64, error) {
	var oldSpec unix.ItimerSpec
	if err := unix.TimerfdSettime(fd, flags, newSpec, &oldSpec); err != nil {
		return 0, 0, osError("timerfd_settime", err)
	}
	return timespecToSeconds(oldSpec.Value), timespecToSeconds(oldSpec.Interval), nil
}

// GetTime returns the seconds until the next expiration (0 if disarmed,
// always relative even for timers armed with TimerAbstime) and the interval,
// without changing either.
func GetTime(fd int) (value, interval float64, err error) {
	var currSpec unix.ItimerSpec
	if err := unix.TimerfdGettime(fd, &currSpec); err != nil {
		return 0, 0, osError("timerfd_gettime", err)
	}
	return timespecToSeconds(currSpec.Value), timespecToSeconds(currSpec.Interval), nil
}

// ReadExpirations drains the expiration counter: it returns how many times
// the timer expired since the last read and resets the counter to zero.
// With no expiration pending it blocks, or fails with EAGAIN if the
// descriptor is in non-blocking mode.
//
// A read that returns anything but the 8-byte counter record is reported as
// EIO; the kernel did not signal an error but the record is unusable,
// most likely an interrupted read.
func ReadExpirations(fd int) (uint64, error) {
	var buf [8]byte
	n, err := unix.Read(fd, buf[:])
	if err != nil {
		return 0, osError("read", err)
	}
	if n != 8 { // man 2 timerfd_create: reads are all-or-nothing
		return 0, osError("read", unix.EIO)
	}
	return *(*uint64)(unsafe.Pointer(&buf[0])), nil
}
