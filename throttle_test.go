package scrollreel

import (
	"testing"
	"time"
)

func TestThrottle(t *testing.T) {
	t0 := time.Unix(1000, 0)
	th := Throttle{Limit: 16 * time.Millisecond}

	steps := []struct {
		at   time.Duration
		want bool
	}{
		{0, true},
		{5 * time.Millisecond, false},
		{15 * time.Millisecond, false},
		{16 * time.Millisecond, true},
		{20 * time.Millisecond, false},
		{40 * time.Millisecond, true},
	}
	for _, s := range steps {
		if got := th.Allow(t0.Add(s.at)); got != s.want {
			t.Errorf("Allow(+%v) = %v, want %v", s.at, got, s.want)
		}
	}

	th.Reset()
	if !th.Allow(t0.Add(41 * time.Millisecond)) {
		t.Error("Allow after Reset = false, want true")
	}
}

func TestDebouncer(t *testing.T) {
	t0 := time.Unix(1000, 0)
	d := Debouncer{Wait: 250 * time.Millisecond}

	if d.Ready(t0) {
		t.Error("Ready without Trigger = true")
	}
	d.Trigger(t0)
	d.Trigger(t0.Add(100 * time.Millisecond))
	if d.Ready(t0.Add(300 * time.Millisecond)) {
		t.Error("Ready before the wait after the last trigger = true")
	}
	if !d.Pending() {
		t.Error("Pending = false while waiting")
	}
	if !d.Ready(t0.Add(350 * time.Millisecond)) {
		t.Error("Ready after the wait = false")
	}
	if d.Ready(t0.Add(400 * time.Millisecond)) {
		t.Error("Ready fired twice for one burst")
	}
}
