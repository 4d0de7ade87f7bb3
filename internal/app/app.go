package app

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/quizrush/internal/launcher"
	"github.com/abhisek/quizrush/internal/router"
	"github.com/abhisek/quizrush/internal/screen"
	"github.com/abhisek/quizrush/internal/screens/game"
	launcherscreen "github.com/abhisek/quizrush/internal/screens/launcher"
	"github.com/abhisek/quizrush/internal/topics"
	"github.com/abhisek/quizrush/internal/ui/components"
	"github.com/abhisek/quizrush/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Loader  topics.Loader
	Entries []launcher.Entry
	Logger  zerolog.Logger

	// Start, if set, opens a game for this entry on top of the launcher.
	Start *launcher.Entry
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	start  screen.Screen
	width  int
	height int
}

// NewAppModel creates the root model with the launcher at the bottom of
// the stack.
func NewAppModel(opts Options) AppModel {
	m := AppModel{
		router: router.New(launcherscreen.New(opts.Entries, opts.Loader, opts.Logger)),
	}
	if opts.Start != nil {
		m.start = game.New(opts.Start.SessionConfig(), opts.Loader, opts.Logger)
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	if m.start != nil {
		return router.PushCmd(m.start)
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch {
		case msg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(msg, components.KeyBack):
			if m.router.Depth() > 1 {
				return m, router.PopCmd
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	var score *layout.Scoreboard
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.ScoreProvider); ok {
			score = sp.Scoreboard()
		}
	}

	header := layout.RenderHeader(title, score, m.width)
	footer := layout.RenderFooter(m.keyHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) keyHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		if hints := kp.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	_, err := tea.NewProgram(NewAppModel(opts)).Run()
	return err
}
