package timerfd

import (
	"math"
	"math/rand"
	"testing"

	"golang.org/x/sys/unix"
)

func TestSecondsToTimespec(t *testing.T) {
	cases := []struct {
		in   float64
		sec  int64
		nsec int64
	}{
		{0.0, 0, 0},
		{1.5, 1, 500000000},
		{0.000000001, 0, 1},
		{2.25, 2, 250000000},
		{3.0, 3, 0},
		{0.999999999, 0, 999999999},
	}
	for _, c := range cases {
		ts := secondsToTimespec(c.in)
		if ts.Sec != c.sec || ts.Nsec != c.nsec {
			t.Fatalf("secondsToTimespec(%v) = {%d, %d}, want {%d, %d}",
				c.in, ts.Sec, ts.Nsec, c.sec, c.nsec)
		}
	}
}

// Rounding the fractional part up to a full second must carry into Sec,
// Nsec stays in [0, 1e9)
func TestSecondsToTimespecCarry(t *testing.T) {
	ts := secondsToTimespec(1.9999999999)
	if ts.Sec != 2 || ts.Nsec != 0 {
		t.Fatalf("carry not normalized: {%d, %d}", ts.Sec, ts.Nsec)
	}
}

func TestTimespecToSeconds(t *testing.T) {
	if v := timespecToSeconds(unix.Timespec{Sec: 0, Nsec: 0}); v != 0.0 {
		t.Fatalf("zero timespec decoded to %v", v)
	}
	if v := timespecToSeconds(unix.Timespec{Sec: 1, Nsec: 500000000}); v != 1.5 {
		t.Fatalf("decoded to %v, want 1.5", v)
	}
}

func TestTimespecRoundTrip(t *testing.T) {
	rand.Seed(7)
	check := func(s float64) {
		ts := secondsToTimespec(s)
		if ts.Nsec < 0 || ts.Nsec >= nsecPerSec {
			t.Fatalf("nsec out of range for %v: %d", s, ts.Nsec)
		}
		got := timespecToSeconds(ts)
		if math.Abs(got-s) > 1e-9 {
			t.Fatalf("round trip of %v gave %v (diff %g)", s, got, got-s)
		}
	}
	for i := 0; i < 100000; i++ {
		check(rand.Float64() * 10)          // sub-second heavy
		check(rand.Float64() * (1 << 31))   // up to 2^31 seconds
	}
}
