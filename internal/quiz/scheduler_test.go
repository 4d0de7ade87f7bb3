package quiz

import (
	"slices"
	"testing"
	"time"
)

func TestManualScheduler_RunsInTimeOrder(t *testing.T) {
	s := NewManualScheduler(epoch)
	var got []string

	s.Schedule(2*time.Second, func() { got = append(got, "b") })
	s.Schedule(time.Second, func() { got = append(got, "a") })
	s.Schedule(2*time.Second, func() { got = append(got, "c") })

	s.Advance(1500 * time.Millisecond)
	if !slices.Equal(got, []string{"a"}) {
		t.Errorf("after 1.5s ran %v, want [a]", got)
	}
	if s.Pending() != 2 {
		t.Errorf("pending = %d, want 2", s.Pending())
	}

	s.Advance(500 * time.Millisecond)
	if !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("after 2s ran %v, want [a b c]", got)
	}
	if !s.Now().Equal(epoch.Add(2 * time.Second)) {
		t.Errorf("now = %v", s.Now())
	}
}

func TestManualScheduler_ChainedWithinWindow(t *testing.T) {
	s := NewManualScheduler(epoch)
	var at []time.Duration

	var step func()
	step = func() {
		at = append(at, s.Now().Sub(epoch))
		if len(at) < 5 {
			s.Schedule(time.Second, step)
		}
	}
	s.Schedule(time.Second, step)

	s.Advance(3500 * time.Millisecond)
	if want := []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}; !slices.Equal(at, want) {
		t.Errorf("ran at %v, want %v", at, want)
	}
	if !s.Now().Equal(epoch.Add(3500 * time.Millisecond)) {
		t.Errorf("now = %v", s.Now())
	}
}

func TestManualScheduler_CancelAll(t *testing.T) {
	s := NewManualScheduler(epoch)
	fired := false
	s.Schedule(time.Second, func() { fired = true })

	s.CancelAll()
	s.Advance(time.Minute)

	if fired {
		t.Error("cancelled transition fired")
	}
	if s.Pending() != 0 {
		t.Errorf("pending = %d, want 0", s.Pending())
	}
}

func TestManualScheduler_RunNext(t *testing.T) {
	s := NewManualScheduler(epoch)
	if s.RunNext() {
		t.Error("RunNext on an empty scheduler")
	}

	n := 0
	s.Schedule(3*time.Second, func() { n++ })
	if !s.RunNext() {
		t.Fatal("expected a transition to run")
	}
	if n != 1 {
		t.Errorf("ran %d times, want 1", n)
	}
	if !s.Now().Equal(epoch.Add(3 * time.Second)) {
		t.Errorf("now = %v", s.Now())
	}
}
