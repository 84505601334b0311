package timerfd

import (
	"syscall"
)

// Error is the only error kind this package produces. It carries the failing
// operation and the kernel's errno, so callers can match the numeric code
// with errors.Is(err, unix.EAGAIN) or read it directly via Code().
type Error struct {
	Op    string
	Errno syscall.Errno
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Errno.Error()
}

func (e *Error) Unwrap() error {
	return e.Errno
}

// Code returns the raw errno value
func (e *Error) Code() int {
	return int(e.Errno)
}

// Timeout reports whether the error is a would-block condition,
// refer to man 2 timerfd_create TFD_NONBLOCK
func (e *Error) Timeout() bool {
	return e.Errno.Timeout()
}

// osError wraps an errno returned by a syscall. Every operation funnels
// its failures through here, nothing maps errors ad hoc.
func osError(op string, err error) error {
	errno, ok := err.(syscall.Errno)
	if !ok {
		errno = syscall.EIO
	}
	return &Error{Op: op, Errno: errno}
}
