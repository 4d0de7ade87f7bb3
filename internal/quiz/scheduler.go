package quiz

import (
	"sort"
	"time"
)

// Transition is a deferred state change. Schedulers must run it on the
// goroutine that drives the engine.
type Transition func()

// Scheduler delays transitions. The engine keeps at most one transition
// pending and calls CancelAll before every state change.
type Scheduler interface {
	// Schedule arranges for t to run after delay.
	Schedule(delay time.Duration, t Transition)

	// CancelAll drops every transition that has not run yet.
	CancelAll()
}

// ManualScheduler is a Scheduler driven by a virtual clock. Nothing runs
// until Advance is called. Use Now as the engine clock so countdowns and
// transitions agree on the time.
type ManualScheduler struct {
	now     time.Time
	seq     int
	pending []pendingTransition
}

type pendingTransition struct {
	at  time.Time
	seq int
	run Transition
}

var _ Scheduler = (*ManualScheduler)(nil)

// NewManualScheduler creates a scheduler whose clock starts at start.
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

// Now returns the virtual time.
func (s *ManualScheduler) Now() time.Time {
	return s.now
}

func (s *ManualScheduler) Schedule(delay time.Duration, t Transition) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	s.pending = append(s.pending, pendingTransition{at: s.now.Add(delay), seq: s.seq, run: t})
}

func (s *ManualScheduler) CancelAll() {
	s.pending = nil
}

// Pending returns the number of transitions waiting to run.
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}

// Advance moves the clock forward by d, running every transition that
// falls due on the way in time order. Transitions scheduled while
// advancing run too if they fall inside the window.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now.Add(d)
	for {
		next, ok := s.popDue(target)
		if !ok {
			break
		}
		s.now = next.at
		next.run()
	}
	s.now = target
}

// RunNext jumps the clock to the earliest pending transition and runs it.
// Returns false if nothing is pending.
func (s *ManualScheduler) RunNext() bool {
	if len(s.pending) == 0 {
		return false
	}
	s.sortPending()
	next := s.pending[0]
	s.pending = s.pending[1:]
	if next.at.After(s.now) {
		s.now = next.at
	}
	next.run()
	return true
}

func (s *ManualScheduler) popDue(target time.Time) (pendingTransition, bool) {
	if len(s.pending) == 0 {
		return pendingTransition{}, false
	}
	s.sortPending()
	next := s.pending[0]
	if next.at.After(target) {
		return pendingTransition{}, false
	}
	s.pending = s.pending[1:]
	return next, true
}

func (s *ManualScheduler) sortPending() {
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].at.Equal(s.pending[j].at) {
			return s.pending[i].seq < s.pending[j].seq
		}
		return s.pending[i].at.Before(s.pending[j].at)
	})
}
