package game

import (
	"sync/atomic"
	"time"

	"github.com/abhisek/quizrush/internal/quiz"
)

// screenSeq hands out screen ids. Messages carry the id of the screen that
// produced them; the router delivers to whichever screen is active, so a
// screen drops anything addressed to another one.
var screenSeq atomic.Uint64

// questionsLoadedMsg carries the result of loading the topic.
type questionsLoadedMsg struct {
	Screen    uint64
	Questions []quiz.Question
	Err       error
}

// transitionDueMsg is sent when a scheduled engine transition is due.
type transitionDueMsg struct {
	Screen uint64
	ID     int
}

// renderTickMsg refreshes the countdown display.
type renderTickMsg struct {
	Screen uint64
	At     time.Time
}
