// Package game is the quiz screen. It owns a quiz.Engine, feeds it the
// player's answers and renders its state.
package game

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/spinner"
	"github.com/rs/zerolog"

	"github.com/abhisek/quizrush/internal/quiz"
	"github.com/abhisek/quizrush/internal/router"
	"github.com/abhisek/quizrush/internal/screen"
	"github.com/abhisek/quizrush/internal/screens/gameover"
	"github.com/abhisek/quizrush/internal/topics"
	"github.com/abhisek/quizrush/internal/ui/components"
	"github.com/abhisek/quizrush/internal/ui/layout"
	"github.com/abhisek/quizrush/internal/ui/theme"
)

// renderInterval is how often the countdown is redrawn.
const renderInterval = 100 * time.Millisecond

// Screen plays one session of a topic.
type Screen struct {
	id     uint64
	cfg    quiz.SessionConfig
	loader topics.Loader
	log    zerolog.Logger
	opts   []quiz.Option

	sched   *teaScheduler
	engine  *quiz.Engine
	answers components.AnswerList
	spinner spinner.Model

	// phase is the engine phase the view was last synced to.
	phase quiz.Phase
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.ScoreProvider = (*Screen)(nil)
var _ screen.Disposer = (*Screen)(nil)

// New creates a game screen for cfg. Questions are loaded from loader when
// the screen becomes active. opts are passed to the engine.
func New(cfg quiz.SessionConfig, loader topics.Loader, log zerolog.Logger, opts ...quiz.Option) *Screen {
	id := screenSeq.Add(1)
	return &Screen{
		id:      id,
		cfg:     cfg,
		loader:  loader,
		log:     log,
		opts:    opts,
		sched:   newTeaScheduler(id),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(theme.Selected)),
		phase:   quiz.PhaseLoading,
	}
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, s.loadQuestions())
}

func (s *Screen) Title() string {
	if s.cfg.Title != "" {
		return s.cfg.Title
	}
	return quiz.DefaultTitle
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.engine == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Menu"}}
	}
	return []layout.KeyHint{
		{Key: "1-9", Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Pick"},
		{Key: "Esc", Description: "Menu"},
	}
}

func (s *Screen) Scoreboard() *layout.Scoreboard {
	if s.engine == nil {
		return nil
	}
	st := s.engine.State()
	return &layout.Scoreboard{
		Correct:   st.CorrectCount,
		Incorrect: st.IncorrectCount,
		Level:     st.Level,
	}
}

// Engine returns the running engine, or nil while loading.
func (s *Screen) Engine() *quiz.Engine {
	return s.engine
}

// Dispose tears the session down when the screen leaves the stack.
func (s *Screen) Dispose() {
	if s.engine != nil {
		s.engine.Exit()
	}
	s.sched.CancelAll()
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		if msg.Screen != s.id {
			return s, nil
		}
		return s.handleLoaded(msg)

	case transitionDueMsg:
		if msg.Screen != s.id || s.engine == nil || !s.sched.fire(msg.ID) {
			return s, nil
		}
		return s, s.sync()

	case renderTickMsg:
		if msg.Screen != s.id || s.engine == nil || s.engine.State().Exited || s.phase == quiz.PhaseGameOver {
			return s, nil
		}
		s.engine.Tick()
		return s, s.renderTick()

	case components.AnswerChosenMsg:
		if s.engine == nil || !s.engine.State().AcceptsAnswers() {
			return s, nil
		}
		s.engine.Answer(msg.Option)
		// A pick after the deadline counts as a timeout, not a wrong answer.
		if !s.engine.State().TimedOut {
			s.answers.Choose(msg.Option)
		}
		return s, s.sync()

	case spinner.TickMsg:
		if s.engine != nil {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		if s.engine == nil || !s.engine.State().AcceptsAnswers() {
			return s, nil
		}
		var cmd tea.Cmd
		s.answers, cmd = s.answers.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) loadQuestions() tea.Cmd {
	loader, key, id := s.loader, s.cfg.Topic, s.id
	return func() tea.Msg {
		qs, err := loader.Load(context.Background(), key)
		return questionsLoadedMsg{Screen: id, Questions: qs, Err: err}
	}
}

func (s *Screen) handleLoaded(msg questionsLoadedMsg) (screen.Screen, tea.Cmd) {
	if s.engine != nil {
		return s, nil
	}
	err := msg.Err
	if err == nil {
		opts := append([]quiz.Option{quiz.WithLogger(s.log)}, s.opts...)
		s.engine, err = quiz.NewEngine(s.cfg, msg.Questions, s.sched, opts...)
	}
	if err != nil {
		s.log.Warn().Err(err).Str("topic", s.cfg.Topic).Msg("could not start session")
		return s, router.PopCmd
	}

	s.engine.Start()
	return s, tea.Batch(s.sync(), s.renderTick())
}

// sync brings the answer list in line with the engine and returns the
// commands the engine produced.
func (s *Screen) sync() tea.Cmd {
	st := s.engine.State()
	prev := s.phase
	s.phase = st.Phase

	switch st.Phase {
	case quiz.PhaseAwaitingAnswer:
		if prev != quiz.PhaseAwaitingAnswer {
			s.answers = components.NewAnswerList(st.ShuffledOptions)
		}
	case quiz.PhaseShowingCorrectFeedback:
		s.answers.Reveal(st.CorrectAnswer)
	case quiz.PhaseShowingCorrectEmoji:
		s.answers.Locked = true
	case quiz.PhaseGameOver:
		s.sched.CancelAll()
		return router.ReplaceCmd(gameover.New(s.engine.Summary(), s.replay))
	}
	return s.sched.drain()
}

// replay builds a fresh game for the same entry.
func (s *Screen) replay() screen.Screen {
	return New(s.cfg, s.loader, s.log, s.opts...)
}

func (s *Screen) renderTick() tea.Cmd {
	id := s.id
	return tea.Tick(renderInterval, func(t time.Time) tea.Msg {
		return renderTickMsg{Screen: id, At: t}
	})
}
