package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizrush/internal/ui/theme"
)

// Countdown renders the answer timer as a row of segments.
type Countdown struct {
	Filled    int
	Segments  int
	Remaining time.Duration
	Width     int
}

// View renders lit segments, then empty ones, then the seconds left.
// Segments turn amber at two and red at one.
func (c Countdown) View() string {
	if c.Segments <= 0 {
		return ""
	}
	filled := min(max(c.Filled, 0), c.Segments)

	label := fmt.Sprintf("  %4.1fs", c.Remaining.Seconds())
	segWidth := max((c.Width-len(label))/c.Segments-1, 2)

	lit := theme.SegmentFull
	switch {
	case filled <= 1:
		lit = theme.SegmentCritical
	case filled == 2:
		lit = theme.SegmentLow
	}

	block := strings.Repeat(" ", segWidth)
	parts := make([]string, 0, c.Segments)
	for i := range c.Segments {
		if i < filled {
			parts = append(parts, lit.Render(block))
		} else {
			parts = append(parts, theme.SegmentEmpty.Render(block))
		}
	}

	return strings.Join(parts, " ") +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
}
