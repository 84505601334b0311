package main

import (
	"fmt"

	"github.com/shaovie/timerfd"
	"golang.org/x/sys/unix"
)

// One-shot timer armed at an absolute wall-clock deadline
func main() {
	fd, err := timerfd.Create(timerfd.ClockRealtime, timerfd.Cloexec)
	if err != nil {
		panic(err.Error())
	}
	defer unix.Close(fd)

	var now unix.Timespec
	if err = unix.ClockGettime(unix.CLOCK_REALTIME, &now); err != nil {
		panic(err.Error())
	}
	deadline := float64(now.Sec) + float64(now.Nsec)/1e9 + 1.5

	if _, _, err = timerfd.SetTime(fd, timerfd.TimerAbstime, deadline, 0.0); err != nil {
		panic(err.Error())
	}
	value, _, _ := timerfd.GetTime(fd)
	fmt.Printf("armed, fires in %.3fs\n", value)

	if _, err = timerfd.ReadExpirations(fd); err != nil {
		panic(err.Error())
	}
	fmt.Println("deadline reached")
}
