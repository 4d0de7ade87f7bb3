package quiz

import "time"

const (
	// DefaultAnswerBudget is used when a SessionConfig carries no budget.
	DefaultAnswerBudget = 5 * time.Second

	// DefaultTitle is used when a SessionConfig carries no title.
	DefaultTitle = "Quiz"
)

// SessionConfig is handed from the launcher to the engine when a topic is picked.
type SessionConfig struct {
	Topic               string
	InitialAnswerBudget time.Duration
	Title               string
}

// withDefaults fills zero-valued budget and title.
func (c SessionConfig) withDefaults() SessionConfig {
	if c.InitialAnswerBudget <= 0 {
		c.InitialAnswerBudget = DefaultAnswerBudget
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	return c
}
