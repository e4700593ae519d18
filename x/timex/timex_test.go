package timex

import (
	"testing"
	"time"
)

func TestSleepMicrosLowerBound(t *testing.T) {
	for _, us := range []uint32{0, 1, 50, 500, 2000} {
		start := time.Now()
		ok := SleepMicros(us)
		elapsed := time.Since(start)
		if !ok {
			t.Errorf("SleepMicros(%d) reported a short wait", us)
		}
		if elapsed < time.Duration(us)*time.Microsecond {
			t.Errorf("SleepMicros(%d) returned after %v", us, elapsed)
		}
	}
}

func TestNowMs(t *testing.T) {
	a := NowMs()
	b := time.Now().UnixMilli()
	if b < a || b-a > 1000 {
		t.Fatalf("NowMs drift: %d vs %d", a, b)
	}
}
