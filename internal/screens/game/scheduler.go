package game

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizrush/internal/quiz"
)

// teaScheduler runs engine transitions through the Bubble Tea loop. Each
// Schedule becomes a tea.Tick; the transition runs when its message comes
// back, and only if it was not cancelled in the meantime.
type teaScheduler struct {
	owner   uint64
	nextID  int
	pending map[int]quiz.Transition
	cmds    []tea.Cmd
}

var _ quiz.Scheduler = (*teaScheduler)(nil)

func newTeaScheduler(owner uint64) *teaScheduler {
	return &teaScheduler{owner: owner, pending: make(map[int]quiz.Transition)}
}

func (s *teaScheduler) Schedule(delay time.Duration, t quiz.Transition) {
	s.nextID++
	id, owner := s.nextID, s.owner
	s.pending[id] = t
	s.cmds = append(s.cmds, tea.Tick(delay, func(time.Time) tea.Msg {
		return transitionDueMsg{Screen: owner, ID: id}
	}))
}

func (s *teaScheduler) CancelAll() {
	clear(s.pending)
	s.cmds = nil
}

// fire runs the transition for id. Unknown ids belong to cancelled timers
// and are dropped.
func (s *teaScheduler) fire(id int) bool {
	t, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	t()
	return true
}

// drain hands the ticks scheduled since the last call to the runtime.
func (s *teaScheduler) drain() tea.Cmd {
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}

