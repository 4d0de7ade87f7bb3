package quiz

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrNoQuestions is returned by NewEngine when no playable question remains.
var ErrNoQuestions = errors.New("no playable questions")

// Engine is the quiz session state machine. It is not safe for concurrent
// use; drive it from a single goroutine (the Bubble Tea update loop).
type Engine struct {
	cfg   SessionConfig
	state SessionState
	sched Scheduler

	clock     func() time.Time
	rng       *rand.Rand
	log       zerolog.Logger
	sessionID string

	// gen is bumped on every cancellation. Scheduled transitions capture it
	// and become no-ops once it moves on.
	gen int

	questionStart time.Time
	startedAt     time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source used for the countdown.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithRand sets the random source used for question and option shuffling.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithLogger sets the session logger.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithSessionID overrides the generated session id.
func WithSessionID(id string) Option {
	return func(e *Engine) { e.sessionID = id }
}

// NewEngine creates an engine in PhaseLoading. Unplayable questions are
// dropped; if none remain ErrNoQuestions is returned and no session exists.
func NewEngine(cfg SessionConfig, questions []Question, sched Scheduler, opts ...Option) (*Engine, error) {
	playable := FilterPlayable(questions)
	if len(playable) == 0 {
		return nil, ErrNoQuestions
	}

	e := &Engine{
		cfg:   cfg.withDefaults(),
		sched: sched,
		clock: time.Now,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.sessionID == "" {
		e.sessionID = uuid.New().String()
	}
	e.log = e.log.With().
		Str("session_id", e.sessionID).
		Str("topic", e.cfg.Topic).
		Logger()

	e.state = SessionState{
		QuestionOrder: Shuffle(e.rng, playable),
		AnswerBudget:  e.cfg.InitialAnswerBudget,
		Level:         1,
		Phase:         PhaseLoading,
	}
	return e, nil
}

// Config returns the effective session configuration.
func (e *Engine) Config() SessionConfig {
	return e.cfg
}

// SessionID returns the id used in log lines and the Result.
func (e *Engine) SessionID() string {
	return e.sessionID
}

// Start moves Loading to AwaitingAnswer: counters reset, first question up,
// countdown running. Calling Start again restarts the session.
func (e *Engine) Start() {
	if e.state.Exited {
		return
	}
	e.cancelTimers()

	e.state.CorrectCount = 0
	e.state.IncorrectCount = 0
	e.state.Level = 1
	e.state.AnswerBudget = e.cfg.InitialAnswerBudget
	e.state.CurrentIndex = 0
	e.startedAt = e.clock()

	e.log.Info().
		Int("questions", len(e.state.QuestionOrder)).
		Dur("budget", e.state.AnswerBudget).
		Msg("session started")

	e.beginQuestion()
}

// Answer submits the player's choice. It returns true if the answer was
// correct. Selections outside AwaitingAnswer are ignored. An answer that
// arrives after the countdown has run out resolves as a timeout.
func (e *Engine) Answer(option string) bool {
	if !e.state.AcceptsAnswers() {
		return false
	}
	e.cancelTimers()

	if e.elapsed() >= e.state.AnswerBudget {
		e.resolveTimeout()
		return false
	}
	e.state.Remaining = e.remaining()

	q, _ := e.state.Current()
	if option != q.Correct() {
		e.recordIncorrect()
		return false
	}

	e.state.CorrectCount++
	e.applyLeveling()
	e.state.Phase = PhaseShowingCorrectEmoji
	e.schedule(CorrectDisplayDelay, e.advance)
	return true
}

// Tick refreshes Remaining from the clock. It never resolves the question;
// the scheduled timeout does that.
func (e *Engine) Tick() {
	if !e.state.AcceptsAnswers() {
		return
	}
	e.state.Remaining = e.remaining()
}

// Exit tears the session down. Pending transitions are dropped and every
// later call is a no-op.
func (e *Engine) Exit() {
	if e.state.Exited {
		return
	}
	e.cancelTimers()
	e.state.Exited = true
	e.log.Info().
		Int("correct", e.state.CorrectCount).
		Int("incorrect", e.state.IncorrectCount).
		Str("phase", e.state.Phase.String()).
		Msg("session exited")
}

// State returns a snapshot of the session. Slices are copies.
func (e *Engine) State() SessionState {
	s := e.state
	s.QuestionOrder = append([]Question(nil), e.state.QuestionOrder...)
	s.ShuffledOptions = append([]string(nil), e.state.ShuffledOptions...)
	return s
}

// Summary reports the session outcome so far.
func (e *Engine) Summary() Result {
	var d time.Duration
	if !e.startedAt.IsZero() {
		d = e.clock().Sub(e.startedAt)
	}
	return Result{
		SessionID:    e.sessionID,
		Topic:        e.cfg.Topic,
		Title:        e.cfg.Title,
		Correct:      e.state.CorrectCount,
		Incorrect:    e.state.IncorrectCount,
		Level:        e.state.Level,
		AnswerBudget: e.state.AnswerBudget,
		Duration:     d,
		GameOver:     e.state.Phase == PhaseGameOver,
	}
}

func (e *Engine) beginQuestion() {
	q, _ := e.state.Current()
	e.state.ShuffledOptions = Shuffle(e.rng, q.Options)
	e.state.Remaining = e.state.AnswerBudget
	e.state.CorrectAnswer = ""
	e.state.TimedOut = false
	e.state.Phase = PhaseAwaitingAnswer
	e.questionStart = e.clock()
	e.schedule(e.state.AnswerBudget, e.resolveTimeout)
}

func (e *Engine) resolveTimeout() {
	e.cancelTimers()
	e.state.Remaining = 0
	e.state.TimedOut = true
	e.log.Debug().Int("index", e.state.CurrentIndex).Msg("answer timed out")
	e.recordIncorrect()
}

func (e *Engine) recordIncorrect() {
	e.state.IncorrectCount++
	q, _ := e.state.Current()
	e.state.CorrectAnswer = q.Correct()

	if e.state.IncorrectCount >= MaxIncorrect {
		e.gameOver()
		return
	}
	e.state.Phase = PhaseShowingCorrectFeedback
	e.schedule(FeedbackDisplayDelay, e.advance)
}

// advance moves to the next question, wrapping at the end of the pool.
func (e *Engine) advance() {
	e.cancelTimers()
	if e.state.IncorrectCount >= MaxIncorrect {
		e.gameOver()
		return
	}
	e.state.CurrentIndex = (e.state.CurrentIndex + 1) % len(e.state.QuestionOrder)
	e.beginQuestion()
}

func (e *Engine) gameOver() {
	e.cancelTimers()
	e.state.Phase = PhaseGameOver
	e.state.Remaining = 0
	e.log.Info().
		Int("correct", e.state.CorrectCount).
		Int("level", e.state.Level).
		Msg("game over")
}

func (e *Engine) applyLeveling() {
	c := e.state.CorrectCount
	target := c/LevelBlock + 1
	if c > 0 && c%LevelBlock == 0 && e.state.Level < target {
		e.state.Level++
		e.state.AnswerBudget = max(MinAnswerBudget, e.state.AnswerBudget-BudgetStep)
		e.log.Info().
			Int("level", e.state.Level).
			Dur("budget", e.state.AnswerBudget).
			Msg("level up")
	}
}

// schedule registers t guarded by the current generation.
func (e *Engine) schedule(delay time.Duration, t Transition) {
	gen := e.gen
	e.sched.Schedule(delay, func() {
		if e.gen != gen || e.state.Exited {
			return
		}
		t()
	})
}

func (e *Engine) cancelTimers() {
	e.gen++
	e.sched.CancelAll()
}

func (e *Engine) elapsed() time.Duration {
	return e.clock().Sub(e.questionStart)
}

func (e *Engine) remaining() time.Duration {
	r := e.state.AnswerBudget - e.elapsed()
	if r < 0 {
		return 0
	}
	if r > e.state.AnswerBudget {
		return e.state.AnswerBudget
	}
	return r
}
