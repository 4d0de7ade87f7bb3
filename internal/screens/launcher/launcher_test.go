package launcher

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizrush/internal/launcher"
	"github.com/abhisek/quizrush/internal/quiz"
	"github.com/abhisek/quizrush/internal/router"
	"github.com/abhisek/quizrush/internal/screens/game"
)

type nopLoader struct{}

func (nopLoader) Load(context.Context, string) ([]quiz.Question, error) { return nil, nil }

func TestLauncher_ListsEntriesAndExit(t *testing.T) {
	s := New(launcher.DefaultEntries(), nopLoader{}, zerolog.Nop())

	view := s.View(100, 40)
	assert.Contains(t, view, "GENERAL QUIZ (5S)")
	assert.Contains(t, view, "MULTIPLICATION TABLES (6S)")
	assert.Contains(t, view, exitLabel)
	assert.Len(t, s.labels, len(launcher.DefaultEntries())+1)
}

func TestLauncher_SelectPushesGame(t *testing.T) {
	s := New(launcher.DefaultEntries(), nopLoader{}, zerolog.Nop())

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok, "expected PushScreenMsg")
	g, ok := msg.Screen.(*game.Screen)
	require.True(t, ok)
	assert.Equal(t, "History Quiz", g.Title())
}

func TestLauncher_ExitQuits(t *testing.T) {
	entries := []launcher.Entry{{Topic: "theme1", Budget: 5 * time.Second, Title: "General Quiz"}}
	s := New(entries, nopLoader{}, zerolog.Nop())

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok, "expected QuitMsg")
}

func TestLauncher_CompactViewOnShortTerminal(t *testing.T) {
	s := New(launcher.DefaultEntries(), nopLoader{}, zerolog.Nop())
	view := s.View(80, 20)
	assert.Contains(t, view, titleCompact)
	assert.Contains(t, view, "▸ GENERAL QUIZ (5S)")
}
