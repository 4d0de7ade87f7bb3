package game

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizrush/internal/quiz"
	"github.com/abhisek/quizrush/internal/ui/components"
	"github.com/abhisek/quizrush/internal/ui/layout"
	"github.com/abhisek/quizrush/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.engine == nil {
		return renderLoading(width, height, s.spinner.View())
	}
	st := s.engine.State()
	q, _ := st.Current()
	cw := components.ContentWidth(width)
	// Card border and padding take 6 columns.
	inner := cw - 6

	// Header and footer take about eight rows.
	compact := layout.IsCompactHeight(height + 8)

	var b strings.Builder

	if !compact {
		b.WriteString(theme.Title.Width(inner).Render(s.Title()))
		b.WriteString("\n\n")
	}

	b.WriteString(components.Countdown{
		Filled:    st.FilledSegments(),
		Segments:  quiz.CountdownSegments,
		Remaining: st.Remaining,
		Width:     inner,
	}.View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(inner).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n")

	if q.ImageURL != "" && !compact {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(inner, lipgloss.Center, theme.Link.Render(q.ImageURL)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.answers.View(inner))
	b.WriteString("\n\n")
	b.WriteString(renderFeedback(st, inner))

	content := components.Card(b.String(), cw, phaseBorder(st.Phase))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderFeedback renders the line under the options for the current phase.
func renderFeedback(st quiz.SessionState, cw int) string {
	var line string
	switch st.Phase {
	case quiz.PhaseShowingCorrectEmoji:
		line = theme.Correct.Render("🎉  Correct!")
	case quiz.PhaseShowingCorrectFeedback:
		lead := "✗  Wrong."
		if st.TimedOut {
			lead = "⏰  Time's up!"
		}
		line = theme.Incorrect.Render(lead) + " " +
			theme.Body.Render("The correct answer was: ") +
			theme.Correct.Render(st.CorrectAnswer)
	default:
		line = theme.Hint.Render("Pick an answer before the time runs out")
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(line)
}

func phaseBorder(p quiz.Phase) color.Color {
	switch p {
	case quiz.PhaseShowingCorrectEmoji:
		return theme.Success
	case quiz.PhaseShowingCorrectFeedback:
		return theme.Error
	}
	return theme.Primary
}

func renderLoading(width, height int, spin string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		spin+" "+theme.Hint.Render("Loading questions..."))
}
