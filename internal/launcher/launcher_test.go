package launcher

import (
	"testing"
	"time"
)

func TestDefaultEntries(t *testing.T) {
	entries := DefaultEntries()
	if len(entries) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(entries))
	}

	e, ok := Find(entries, "theme3")
	if !ok {
		t.Fatal("theme3 not found")
	}
	if e.Budget != 10*time.Second {
		t.Errorf("budget = %v, want 10s", e.Budget)
	}
	if e.Title != "Science Quiz" {
		t.Errorf("title = %q, want Science Quiz", e.Title)
	}

	if _, ok := Find(entries, "missing"); ok {
		t.Error("unexpected entry for missing topic")
	}
}

func TestEntry_SessionConfig(t *testing.T) {
	cfg := Entry{Topic: "theme2", Budget: 7 * time.Second, Title: "History Quiz"}.SessionConfig()

	if cfg.Topic != "theme2" {
		t.Errorf("topic = %q", cfg.Topic)
	}
	if cfg.InitialAnswerBudget != 7*time.Second {
		t.Errorf("budget = %v, want 7s", cfg.InitialAnswerBudget)
	}
	if cfg.Title != "History Quiz" {
		t.Errorf("title = %q", cfg.Title)
	}
}

func TestEntry_Label(t *testing.T) {
	tests := []struct {
		entry Entry
		want  string
	}{
		{Entry{Topic: "theme1", Budget: 5 * time.Second, Title: "General Quiz"}, "General Quiz (5s)"},
		{Entry{Topic: "x", Budget: 6500 * time.Millisecond, Title: "X"}, "X (6.5s)"},
		{Entry{Topic: "raw"}, "raw"},
	}
	for _, tt := range tests {
		if got := tt.entry.Label(); got != tt.want {
			t.Errorf("Label() = %q, want %q", got, tt.want)
		}
	}
}
