// Package launcher holds the fixed set of topic entries offered on the menu.
package launcher

import (
	"fmt"
	"time"

	"github.com/abhisek/quizrush/internal/quiz"
)

// Entry is one menu choice: a topic played with a given answer budget and title.
type Entry struct {
	Topic  string        `yaml:"topic"`
	Budget time.Duration `yaml:"budget"`
	Title  string        `yaml:"title"`
}

// DefaultEntries returns the built-in menu.
func DefaultEntries() []Entry {
	return []Entry{
		{Topic: "theme1", Budget: 5000 * time.Millisecond, Title: "General Quiz"},
		{Topic: "theme2", Budget: 7000 * time.Millisecond, Title: "History Quiz"},
		{Topic: "theme3", Budget: 10000 * time.Millisecond, Title: "Science Quiz"},
		{Topic: "colombia_capitals", Budget: 6000 * time.Millisecond, Title: "Colombian Capitals"},
		{Topic: "tablas_multiplicar", Budget: 6000 * time.Millisecond, Title: "Multiplication Tables"},
	}
}

// SessionConfig builds the configuration handed to a new quiz engine.
func (e Entry) SessionConfig() quiz.SessionConfig {
	return quiz.SessionConfig{
		Topic:               e.Topic,
		InitialAnswerBudget: e.Budget,
		Title:               e.Title,
	}
}

// Label is the menu text, e.g. "General Quiz (5s)".
func (e Entry) Label() string {
	title := e.Title
	if title == "" {
		title = e.Topic
	}
	if e.Budget <= 0 {
		return title
	}
	return fmt.Sprintf("%s (%s)", title, e.Budget.Round(100*time.Millisecond))
}

// Find returns the entry for topic.
func Find(entries []Entry, topic string) (Entry, bool) {
	for _, e := range entries {
		if e.Topic == topic {
			return e, true
		}
	}
	return Entry{}, false
}
