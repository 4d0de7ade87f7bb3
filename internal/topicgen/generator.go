// Package topicgen drafts topic files with an LLM.
package topicgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/abhisek/quizrush/internal/llm"
	"github.com/abhisek/quizrush/internal/quiz"
	"github.com/abhisek/quizrush/internal/topics"
)

// ErrShortfall is returned when the model stops producing new valid
// questions before the requested count is reached.
var ErrShortfall = errors.New("could not generate enough questions")

// Config controls generation.
type Config struct {
	Validators []Validator

	// BatchSize is the number of questions asked for per request.
	BatchSize int

	// MaxRounds bounds the number of requests per Generate call.
	MaxRounds int

	MaxTokens   int
	Temperature float64

	// MaxPriorQuestions caps the "already used" list sent in the prompt.
	MaxPriorQuestions int
}

// DefaultConfig returns the standard validator chain and limits.
func DefaultConfig() Config {
	return Config{
		Validators:        []Validator{StructuralValidator{}, AnswerLeakValidator{}},
		BatchSize:         10,
		MaxRounds:         6,
		MaxTokens:         2048,
		Temperature:       0.8,
		MaxPriorQuestions: 40,
	}
}

// Request describes the topic to generate.
type Request struct {
	Subject string
	Title   string
	Count   int

	// Existing questions are never duplicated, for extending a topic.
	Existing []quiz.Question
}

// Generator produces topic files.
type Generator struct {
	provider llm.Provider
	config   Config
	log      zerolog.Logger
}

// New creates a Generator.
func New(provider llm.Provider, cfg Config, log zerolog.Logger) *Generator {
	return &Generator{provider: provider, config: cfg, log: log.With().Str("component", "topicgen").Logger()}
}

// Generate asks the model for questions in batches until req.Count new
// valid questions exist. The returned file holds Existing followed by the
// new questions. If the rounds run out, the partial file is returned with
// ErrShortfall.
func (g *Generator) Generate(ctx context.Context, req Request) (*topics.File, error) {
	if req.Count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", req.Count)
	}
	ctx = llm.WithPurpose(ctx, "topic-generation")

	seen := make(map[string]bool)
	var prior []string
	for _, q := range req.Existing {
		seen[normalize(q.Text)] = true
		prior = append(prior, q.Text)
	}

	var fresh []quiz.Question
	for round := 0; round < g.config.MaxRounds && len(fresh) < req.Count; round++ {
		want := min(g.config.BatchSize, req.Count-len(fresh))
		batch, err := g.requestBatch(ctx, req.Subject, want, prior)
		if err != nil {
			return nil, err
		}

		accepted := 0
		for _, q := range batch {
			if len(fresh) == req.Count {
				break
			}
			key := normalize(q.Text)
			if seen[key] {
				continue
			}
			if verr := g.validate(q); verr != nil {
				g.log.Debug().Str("question", q.Text).Err(verr).Msg("question rejected")
				continue
			}
			seen[key] = true
			prior = append(prior, q.Text)
			fresh = append(fresh, q)
			accepted++
		}
		g.log.Info().Int("round", round+1).Int("accepted", accepted).Int("total", len(fresh)).Msg("batch processed")
	}

	f := &topics.File{
		Version:   topics.CurrentVersion,
		Title:     req.Title,
		Questions: append(append([]quiz.Question(nil), req.Existing...), fresh...),
	}
	if len(fresh) < req.Count {
		return f, fmt.Errorf("%w: got %d of %d", ErrShortfall, len(fresh), req.Count)
	}
	return f, nil
}

func (g *Generator) requestBatch(ctx context.Context, subject string, n int, prior []string) ([]quiz.Question, error) {
	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    llm.UserMessage(buildUserMessage(subject, n, prior, g.config.MaxPriorQuestions)),
		Schema:      BatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var out batchOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	return out.Questions, nil
}

func (g *Generator) validate(q quiz.Question) *ValidationError {
	for _, v := range g.config.Validators {
		if err := v.Validate(q); err != nil {
			return err
		}
	}
	return nil
}
