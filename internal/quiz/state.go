package quiz

import "time"

// Game rules.
const (
	MaxIncorrect         = 5
	LevelBlock           = 10
	BudgetStep           = 300 * time.Millisecond
	MinAnswerBudget      = 1000 * time.Millisecond
	CorrectDisplayDelay  = 1000 * time.Millisecond
	FeedbackDisplayDelay = 2000 * time.Millisecond
	CountdownSegments    = 5
)

// Phase is the current state of the session state machine.
type Phase int

const (
	PhaseLoading                Phase = iota // Questions not yet handed to the engine
	PhaseAwaitingAnswer                      // Countdown running, answers accepted
	PhaseShowingCorrectFeedback              // Wrong answer or timeout, correct answer shown
	PhaseShowingCorrectEmoji                 // Right answer celebration
	PhaseGameOver                            // Terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseAwaitingAnswer:
		return "awaiting-answer"
	case PhaseShowingCorrectFeedback:
		return "showing-correct-feedback"
	case PhaseShowingCorrectEmoji:
		return "showing-correct-emoji"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// SessionState is the mutable root of a quiz session. The engine owns it;
// everyone else sees copies returned by Engine.State.
type SessionState struct {
	// QuestionOrder is the shuffled question pool. It cycles, it never runs out.
	QuestionOrder []Question

	// CurrentIndex points into QuestionOrder.
	CurrentIndex int

	// ShuffledOptions is the display order of the current question's options.
	ShuffledOptions []string

	// Remaining is the time left to answer the current question.
	Remaining time.Duration

	// AnswerBudget is the per-question countdown length. Shrinks on level up.
	AnswerBudget time.Duration

	CorrectCount   int
	IncorrectCount int
	Level          int
	Phase          Phase

	// CorrectAnswer is set after a wrong answer or timeout, for display.
	CorrectAnswer string

	// TimedOut is true when the last miss was the countdown running out,
	// including an answer that arrived after it.
	TimedOut bool

	// Exited is true once the session has been torn down.
	Exited bool
}

// Current returns the active question. ok is false before questions are loaded.
func (s SessionState) Current() (q Question, ok bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.QuestionOrder) {
		return Question{}, false
	}
	return s.QuestionOrder[s.CurrentIndex], true
}

// FilledSegments returns how many of the CountdownSegments progress
// markers are still lit.
func (s SessionState) FilledSegments() int {
	perSegment := s.AnswerBudget / CountdownSegments
	if perSegment <= 0 {
		return 0
	}
	n := int(s.Remaining / perSegment)
	if n < 0 {
		return 0
	}
	if n > CountdownSegments {
		return CountdownSegments
	}
	return n
}

// AcceptsAnswers reports whether an answer selection would be evaluated.
func (s SessionState) AcceptsAnswers() bool {
	return s.Phase == PhaseAwaitingAnswer && !s.Exited
}

// Result summarizes a finished (or abandoned) session.
type Result struct {
	SessionID    string
	Topic        string
	Title        string
	Correct      int
	Incorrect    int
	Level        int
	AnswerBudget time.Duration
	Duration     time.Duration
	GameOver     bool
}
