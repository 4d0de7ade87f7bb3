package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizrush/internal/screen"
)

type stubScreen struct {
	title    string
	initRan  bool
	disposed int
	updates  int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { s.updates++; return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }
func (s *stubScreen) Dispose()                                { s.disposed++ }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "launcher"}
	r := New(s1)

	s2 := &stubScreen{title: "game"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "game" {
		t.Errorf("expected active 'game', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPopDisposes(t *testing.T) {
	s1 := &stubScreen{title: "launcher"}
	r := New(s1)

	s2 := &stubScreen{title: "game"}
	r.Push(s2)
	r.Update(PopScreenMsg{})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "launcher" {
		t.Errorf("expected active 'launcher', got %q", r.Active().Title())
	}
	if s2.disposed != 1 {
		t.Errorf("expected popped screen disposed once, got %d", s2.disposed)
	}
	if s1.disposed != 0 {
		t.Error("root screen must not be disposed")
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "launcher"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
	if s1.disposed != 0 {
		t.Error("root screen must not be disposed")
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "launcher"}
	r := New(s1)

	s2 := &stubScreen{title: "game"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "game" {
		t.Errorf("expected active 'game', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replacing screen")
	}
	if s1.disposed != 1 {
		t.Errorf("expected replaced screen disposed once, got %d", s1.disposed)
	}
}

func TestReplaceScreenMsgPreservesDepth(t *testing.T) {
	r := New(&stubScreen{title: "launcher"})

	game := &stubScreen{title: "game"}
	r.Push(game)

	over := &stubScreen{title: "game over"}
	r.Update(ReplaceScreenMsg{Screen: over})

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "game over" {
		t.Errorf("expected active 'game over', got %q", r.Active().Title())
	}
	if game.disposed != 1 {
		t.Errorf("expected game disposed once, got %d", game.disposed)
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	s1 := &stubScreen{title: "launcher"}
	r := New(s1)
	s2 := &stubScreen{title: "game"}
	r.Push(s2)

	r.Update(struct{}{})

	if s2.updates != 1 || s1.updates != 0 {
		t.Errorf("expected only active screen updated, got active=%d root=%d", s2.updates, s1.updates)
	}
	if got := r.View(80, 24); got != "game" {
		t.Errorf("expected view of active screen, got %q", got)
	}
}

func TestCommands(t *testing.T) {
	s := &stubScreen{title: "x"}
	if msg, ok := PushCmd(s)().(PushScreenMsg); !ok || msg.Screen != s {
		t.Errorf("PushCmd produced %#v", msg)
	}
	if _, ok := PopCmd().(PopScreenMsg); !ok {
		t.Error("PopCmd did not produce PopScreenMsg")
	}
	if msg, ok := ReplaceCmd(s)().(ReplaceScreenMsg); !ok || msg.Screen != s {
		t.Errorf("ReplaceCmd produced %#v", msg)
	}
}
