// Package gameover shows the final score of a finished session.
package gameover

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizrush/internal/quiz"
	"github.com/abhisek/quizrush/internal/router"
	"github.com/abhisek/quizrush/internal/screen"
	"github.com/abhisek/quizrush/internal/ui/components"
	"github.com/abhisek/quizrush/internal/ui/layout"
	"github.com/abhisek/quizrush/internal/ui/theme"
)

// Screen displays a session result.
type Screen struct {
	result quiz.Result
	menu   components.Menu
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.ScoreProvider = (*Screen)(nil)

// New creates the game over screen. If replay is non-nil a "play again"
// item replaces this screen with a fresh game.
func New(result quiz.Result, replay func() screen.Screen) *Screen {
	var items []components.MenuItem
	if replay != nil {
		items = append(items, components.MenuItem{Label: "PLAY AGAIN", Action: func() tea.Cmd {
			return router.ReplaceCmd(replay())
		}})
	}
	items = append(items, components.MenuItem{Label: "BACK TO MENU", Action: func() tea.Cmd {
		return router.PopCmd
	}})
	return &Screen{result: result, menu: components.NewMenu(items)}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	if s.result.Title != "" {
		return s.result.Title
	}
	return "Game Over"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Menu"},
	}
}

func (s *Screen) Scoreboard() *layout.Scoreboard {
	return &layout.Scoreboard{
		Correct:   s.result.Correct,
		Incorrect: s.result.Incorrect,
		Level:     s.result.Level,
	}
}

// Result returns the result being shown.
func (s *Screen) Result() quiz.Result {
	return s.result
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	r := s.result

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render("G A M E   O V E R"))
	b.WriteString("\n\n")

	score := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("%d", r.Correct))
	b.WriteString(theme.Body.Render("Correct answers: ") + score)
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Level reached:   %d", r.Level)))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf(
		"final time %s · played %s",
		r.AnswerBudget.Round(100*time.Millisecond),
		r.Duration.Round(time.Second),
	)))

	card := components.Card(b.String(), cw, theme.Error)
	content := lipgloss.JoinVertical(lipgloss.Center, card, "", s.menu.View())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
