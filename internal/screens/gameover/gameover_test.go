package gameover

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizrush/internal/quiz"
	"github.com/abhisek/quizrush/internal/router"
	"github.com/abhisek/quizrush/internal/screen"
)

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                           { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string                    { return "" }
func (stubScreen) Title() string                           { return "replay" }

func testResult() quiz.Result {
	return quiz.Result{
		Topic:        "theme1",
		Title:        "General Quiz",
		Correct:      23,
		Incorrect:    5,
		Level:        3,
		AnswerBudget: 4400 * time.Millisecond,
		Duration:     2 * time.Minute,
		GameOver:     true,
	}
}

func TestGameOver_ViewShowsScoreAndLevel(t *testing.T) {
	s := New(testResult(), nil)
	view := s.View(80, 24)

	assert.Contains(t, view, "23")
	assert.Contains(t, view, "Level reached:   3")
	assert.Contains(t, view, "BACK TO MENU")
	assert.NotContains(t, view, "PLAY AGAIN")
	assert.Equal(t, "General Quiz", s.Title())
}

func TestGameOver_EnterPopsToLauncher(t *testing.T) {
	s := New(testResult(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok, "expected PopScreenMsg")
}

func TestGameOver_PlayAgainReplaces(t *testing.T) {
	calls := 0
	s := New(testResult(), func() screen.Screen {
		calls++
		return stubScreen{}
	})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg")
	assert.Equal(t, "replay", msg.Screen.Title())
	assert.Equal(t, 1, calls)
}

func TestGameOver_Scoreboard(t *testing.T) {
	s := New(testResult(), nil)
	sb := s.Scoreboard()
	require.NotNil(t, sb)
	assert.Equal(t, 23, sb.Correct)
	assert.Equal(t, 5, sb.Incorrect)
	assert.Equal(t, 3, sb.Level)
	assert.Len(t, s.KeyHints(), 3)
}
