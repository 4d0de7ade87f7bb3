// Package launcher is the menu screen listing the playable topics.
package launcher

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/quizrush/internal/launcher"
	"github.com/abhisek/quizrush/internal/router"
	"github.com/abhisek/quizrush/internal/screen"
	"github.com/abhisek/quizrush/internal/screens/game"
	"github.com/abhisek/quizrush/internal/topics"
	"github.com/abhisek/quizrush/internal/ui/components"
)

const exitLabel = "EXIT"

// Screen is the root menu. Picking an entry pushes a fresh game screen.
type Screen struct {
	entries []launcher.Entry
	menu    components.Menu
	labels  []string
}

var _ screen.Screen = (*Screen)(nil)

// New creates the launcher for entries. Games load questions from loader.
func New(entries []launcher.Entry, loader topics.Loader, log zerolog.Logger) *Screen {
	items := make([]components.MenuItem, 0, len(entries)+1)
	labels := make([]string, 0, len(entries)+1)
	for _, e := range entries {
		cfg := e.SessionConfig()
		label := strings.ToUpper(e.Label())
		items = append(items, components.MenuItem{Label: label, Action: func() tea.Cmd {
			log.Debug().Str("topic", cfg.Topic).Msg("topic selected")
			return router.PushCmd(game.New(cfg, loader, log))
		}})
		labels = append(labels, label)
	}
	items = append(items, components.MenuItem{Label: exitLabel, Action: func() tea.Cmd {
		return tea.Quit
	}})
	labels = append(labels, exitLabel)

	return &Screen{
		entries: entries,
		menu:    components.NewMenu(items),
		labels:  labels,
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Pick a topic"
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	// Bordered buttons take three rows each.
	compact := height < len(s.labels)*3+8

	sections := []string{renderTitle(cw, compact)}
	if compact {
		sections = append(sections, renderMenuCompact(s.labels, s.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(s.labels, s.menu.Selected, cw))
	}
	return components.Stage(strings.Join(sections, "\n\n"), width, height)
}
