// Package topics resolves topic keys to question collections.
//
// Topics come from three places: files embedded in the binary, an optional
// directory of user files (which override embedded ones with the same key),
// and generated sources such as the multiplication tables.
package topics

import (
	"context"
	"errors"

	"github.com/abhisek/quizrush/internal/quiz"
)

var (
	// ErrTopicNotFound is returned when no source is registered for a key.
	ErrTopicNotFound = errors.New("topic not found")

	// ErrNoValidQuestions is returned when a topic has no question with
	// enough options after filtering.
	ErrNoValidQuestions = errors.New("topic has no valid questions")

	// ErrInvalidTopicFile is returned when a topic file fails to parse or
	// does not match the topic file schema.
	ErrInvalidTopicFile = errors.New("invalid topic file")

	// ErrUnsupportedVersion is returned for topic files with a version
	// this build cannot read.
	ErrUnsupportedVersion = errors.New("unsupported topic file version")
)

// Loader resolves a topic key to its playable questions.
type Loader interface {
	Load(ctx context.Context, key string) ([]quiz.Question, error)
}

// Source produces the raw questions of a single topic.
type Source interface {
	Questions(ctx context.Context) ([]quiz.Question, error)
}

// SourceFunc adapts a function to a Source.
type SourceFunc func(ctx context.Context) ([]quiz.Question, error)

func (f SourceFunc) Questions(ctx context.Context) ([]quiz.Question, error) {
	return f(ctx)
}

// Static returns a Source serving a fixed question list.
func Static(questions []quiz.Question) Source {
	return SourceFunc(func(context.Context) ([]quiz.Question, error) {
		return questions, nil
	})
}
