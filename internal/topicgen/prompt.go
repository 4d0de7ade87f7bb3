package topicgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You write questions for a fast-paced multiple-choice quiz game.

Rules:
- Each question has exactly 4 options.
- The first option is ALWAYS the correct answer. The game shuffles options itself.
- Wrong options must be plausible but unambiguously wrong.
- Options are short: a word, a name, a number or a short phrase.
- Questions are answerable in a few seconds without calculation aids.
- Never repeat a question from the "Already used" list.`

func buildUserMessage(subject string, n int, prior []string, maxPrior int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s\n", subject)
	fmt.Fprintf(&b, "Number of questions: %d\n\n", n)
	b.WriteString("Already used:\n")
	b.WriteString(formatPrior(prior, maxPrior))
	return b.String()
}

// formatPrior lists the most recent maxPrior questions, or "None".
func formatPrior(prior []string, maxPrior int) string {
	if len(prior) == 0 {
		return "None"
	}
	if maxPrior > 0 && len(prior) > maxPrior {
		prior = prior[len(prior)-maxPrior:]
	}
	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
