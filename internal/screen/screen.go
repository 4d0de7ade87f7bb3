package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizrush/internal/ui/layout"
)

// Screen is one page of the application.
type Screen interface {
	// Init returns the command to run when the screen becomes active.
	Init() tea.Cmd

	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area, excluding header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen choose its footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// ScoreProvider lets a screen show a scoreboard in the header.
type ScoreProvider interface {
	Scoreboard() *layout.Scoreboard
}

// Disposer is implemented by screens holding resources that must be
// released when they leave the stack, such as pending timers.
type Disposer interface {
	Dispose()
}
