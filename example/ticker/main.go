package main

import (
	"fmt"

	"github.com/shaovie/timerfd"
	"golang.org/x/sys/unix"
)

// Periodic timer consumed with blocking reads
func main() {
	fd, err := timerfd.Create(timerfd.ClockMonotonic, timerfd.Cloexec)
	if err != nil {
		panic(err.Error())
	}
	defer unix.Close(fd)

	// first expiration after 0.5s, then every 0.5s
	if _, _, err = timerfd.SetTime(fd, 0, 0.5, 0.5); err != nil {
		panic(err.Error())
	}
	for i := 0; i < 10; i++ {
		n, err := timerfd.ReadExpirations(fd)
		if err != nil {
			panic(err.Error())
		}
		value, interval, _ := timerfd.GetTime(fd)
		fmt.Printf("tick x%d, next in %.3fs (period %.1fs)\n", n, value, interval)
	}
}
