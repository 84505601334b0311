package main

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/shaovie/timerfd"
	"golang.org/x/sys/unix"
)

// A non-blocking timerfd driven by a plain epoll loop, the way the
// descriptor is meant to be consumed inside a reactor.
func main() {
	tfd, err := timerfd.Create(timerfd.ClockMonotonic, timerfd.Nonblock|timerfd.Cloexec)
	if err != nil {
		panic(err.Error())
	}
	defer unix.Close(tfd)

	efd, err := syscall.EpollCreate1(syscall.EPOLL_CLOEXEC)
	if err != nil {
		panic(err.Error())
	}
	defer syscall.Close(efd)

	ev := syscall.EpollEvent{Events: syscall.EPOLLIN, Fd: int32(tfd)}
	if err = syscall.EpollCtl(efd, syscall.EPOLL_CTL_ADD, tfd, &ev); err != nil {
		panic(err.Error())
	}

	// 200ms to the first expiration, then once per second
	if _, _, err = timerfd.SetTime(tfd, 0, 0.2, 1.0); err != nil {
		panic(err.Error())
	}

	events := make([]syscall.EpollEvent, 8)
	for ticks := uint64(0); ticks < 5; {
		nfds, err := syscall.EpollWait(efd, events, -1)
		if err != nil {
			if err == syscall.EINTR {
				continue
			}
			panic(err.Error())
		}
		for i := 0; i < nfds; i++ {
			if int(events[i].Fd) != tfd {
				continue
			}
			n, err := timerfd.ReadExpirations(tfd)
			if err != nil {
				if errors.Is(err, unix.EAGAIN) { // drained by an earlier wakeup
					continue
				}
				panic(err.Error())
			}
			ticks += n
			fmt.Printf("timerfd readable, %d expirations (%d total)\n", n, ticks)
		}
	}
}
