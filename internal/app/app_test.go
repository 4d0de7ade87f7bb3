package app

import (
	"context"
	"testing"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizrush/internal/launcher"
	"github.com/abhisek/quizrush/internal/quiz"
	"github.com/abhisek/quizrush/internal/router"
	"github.com/abhisek/quizrush/internal/screens/game"
)

type stubLoader struct{}

func (stubLoader) Load(context.Context, string) ([]quiz.Question, error) {
	return []quiz.Question{{Text: "1 + 1 = ?", Options: []string{"2", "3", "4", "5"}}}, nil
}

func testOptions(start *launcher.Entry) Options {
	return Options{
		Loader:  stubLoader{},
		Entries: launcher.DefaultEntries(),
		Logger:  zerolog.Nop(),
		Start:   start,
	}
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func TestApp_StartsOnLauncher(t *testing.T) {
	m := NewAppModel(testOptions(nil))
	assert.Nil(t, m.Init())
	assert.Equal(t, 1, m.router.Depth())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	view := m.View()
	assert.True(t, view.AltScreen)
}

func TestApp_StartEntryPushesGame(t *testing.T) {
	entry := launcher.Entry{Topic: "theme1", Budget: 5 * time.Second, Title: "General Quiz"}
	m := NewAppModel(testOptions(&entry))

	cmd := m.Init()
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	require.Equal(t, 2, m.router.Depth())
	_, ok := m.router.Active().(*game.Screen)
	assert.True(t, ok)
}

func TestApp_EscPopsAndTearsDownGame(t *testing.T) {
	entry := launcher.Entry{Topic: "theme1", Budget: 5 * time.Second, Title: "General Quiz"}
	m := NewAppModel(testOptions(&entry))
	m, _ = update(t, m, m.Init()())

	g := m.router.Active().(*game.Screen)
	m, _ = update(t, m, loadMsg(t, g))
	require.NotNil(t, g.Engine())

	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	require.True(t, ok)

	m, _ = update(t, m, cmd())
	assert.Equal(t, 1, m.router.Depth())
	assert.True(t, g.Engine().State().Exited)
}

func TestApp_EscOnLauncherIsNoop(t *testing.T) {
	m := NewAppModel(testOptions(nil))
	_, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
}

func TestApp_TooSmall(t *testing.T) {
	m := NewAppModel(testOptions(nil))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.NotNil(t, m.View().Content)
}

// loadMsg runs the game's Init and returns the message carrying the
// loaded questions.
func loadMsg(t *testing.T, g *game.Screen) tea.Msg {
	t.Helper()
	batch, ok := g.Init()().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		if msg := c(); !isSpinnerTick(msg) {
			return msg
		}
	}
	t.Fatal("no load message")
	return nil
}

func isSpinnerTick(msg tea.Msg) bool {
	_, ok := msg.(spinner.TickMsg)
	return ok
}
