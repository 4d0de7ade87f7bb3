package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizrush/internal/ui/theme"
)

// AnswerChosenMsg is emitted when the player picks an option.
type AnswerChosenMsg struct {
	Option string
}

// AnswerList shows the options of the current question. Number keys pick
// directly; arrows and enter pick the highlighted option. While Locked the
// list ignores input and, once Reveal is called, marks the correct option
// and the player's choice.
type AnswerList struct {
	Options  []string
	Selected int
	Locked   bool

	correct string
	chosen  string
}

// NewAnswerList creates an unlocked list.
func NewAnswerList(options []string) AnswerList {
	return AnswerList{Options: options}
}

// Choose records the player's pick and locks the list.
func (a *AnswerList) Choose(option string) {
	a.chosen = option
	a.Locked = true
}

// Reveal locks the list and highlights correct.
func (a *AnswerList) Reveal(correct string) {
	a.correct = correct
	a.Locked = true
}

// Update handles answer keys.
func (a AnswerList) Update(msg tea.Msg) (AnswerList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || a.Locked || len(a.Options) == 0 {
		return a, nil
	}

	switch {
	case key.Matches(kmsg, KeyUp):
		a.Selected = (a.Selected - 1 + len(a.Options)) % len(a.Options)
		return a, nil
	case key.Matches(kmsg, KeyDown):
		a.Selected = (a.Selected + 1) % len(a.Options)
		return a, nil
	case key.Matches(kmsg, KeySelect):
		return a, a.emit(a.Selected)
	}

	k := kmsg.String()
	if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
		if i := int(k[0] - '1'); i < len(a.Options) {
			a.Selected = i
			return a, a.emit(i)
		}
	}
	return a, nil
}

func (a AnswerList) emit(i int) tea.Cmd {
	opt := a.Options[i]
	return func() tea.Msg { return AnswerChosenMsg{Option: opt} }
}

// View renders the options centered in width.
func (a AnswerList) View(width int) string {
	lines := make([]string, 0, len(a.Options))
	for i, opt := range a.Options {
		prefix := "  "
		if i == a.Selected && !a.Locked {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		style := theme.Unselected
		switch {
		case a.correct != "" && opt == a.correct:
			style = theme.Correct
			line += "  ✓"
		case a.chosen != "" && opt == a.chosen && a.correct != "":
			style = theme.Incorrect
			line += "  ✗"
		case a.chosen != "" && opt == a.chosen:
			style = theme.Correct
		case a.Locked:
			style = theme.Locked
		case i == a.Selected:
			style = theme.Selected
		}
		lines = append(lines, style.Render(line))
	}

	block := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// Chosen returns the option picked by the player, if any.
func (a AnswerList) Chosen() string {
	return a.chosen
}
