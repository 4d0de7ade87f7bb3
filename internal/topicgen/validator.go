package topicgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizrush/internal/quiz"
)

// Validator checks one generated question. Rejected questions are dropped
// from the batch, not retried individually.
type Validator interface {
	Name() string
	Validate(q quiz.Question) *ValidationError
}

// ValidationError describes why a question was rejected.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator requires text and exactly MinOptions distinct,
// non-empty options.
type StructuralValidator struct{}

func (StructuralValidator) Name() string { return "structural" }

func (v StructuralValidator) Validate(q quiz.Question) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
	}

	if strings.TrimSpace(q.Text) == "" {
		return fail("question text is empty")
	}
	if len(q.Options) != quiz.MinOptions {
		return fail("expected %d options, got %d", quiz.MinOptions, len(q.Options))
	}
	seen := make(map[string]bool, len(q.Options))
	for i, opt := range q.Options {
		key := normalize(opt)
		if key == "" {
			return fail("option %d is empty", i)
		}
		if seen[key] {
			return fail("duplicate option %q", opt)
		}
		seen[key] = true
	}
	return nil
}

// AnswerLeakValidator rejects questions whose text contains the correct answer.
type AnswerLeakValidator struct{}

func (AnswerLeakValidator) Name() string { return "answer-leak" }

func (v AnswerLeakValidator) Validate(q quiz.Question) *ValidationError {
	answer := normalize(q.Correct())
	if len(answer) > 3 && strings.Contains(normalize(q.Text), answer) {
		return &ValidationError{Validator: v.Name(), Message: "question text contains the answer"}
	}
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
