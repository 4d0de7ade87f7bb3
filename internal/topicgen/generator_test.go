package topicgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizrush/internal/llm"
	"github.com/abhisek/quizrush/internal/quiz"
	"github.com/abhisek/quizrush/internal/topics"
)

func batch(t *testing.T, qs ...quiz.Question) llm.MockResponse {
	t.Helper()
	b, err := json.Marshal(batchOutput{Questions: qs})
	require.NoError(t, err)
	return llm.MockResponse{Content: b}
}

func q(text string) quiz.Question {
	return quiz.Question{Text: text, Options: []string{"yes", "no", "maybe", "never"}}
}

func TestGenerate_CollectsAcrossBatches(t *testing.T) {
	mock := llm.NewMockProvider(
		batch(t, q("One?"), q("Two?")),
		batch(t, q("two?"), q("Three?"), quiz.Question{Text: "Bad?", Options: []string{"a", "a", "b", "c"}}),
	)
	cfg := DefaultConfig()
	cfg.BatchSize = 2

	f, err := New(mock, cfg, zerolog.Nop()).Generate(context.Background(), Request{Subject: "misc", Title: "Misc", Count: 3})
	require.NoError(t, err)

	assert.Equal(t, topics.CurrentVersion, f.Version)
	assert.Equal(t, "Misc", f.Title)
	require.Len(t, f.Questions, 3)
	assert.Equal(t, "Three?", f.Questions[2].Text)
	assert.Equal(t, 2, mock.CallCount())

	calls := mock.Calls()
	assert.Equal(t, BatchSchema, calls[0].Schema)
	assert.Contains(t, calls[1].Messages[0].Content, "1. One?")
	assert.Contains(t, calls[1].Messages[0].Content, "Number of questions: 1")
}

func TestGenerate_KeepsExisting(t *testing.T) {
	mock := llm.NewMockProvider(batch(t, q("Old?"), q("New?")))

	f, err := New(mock, DefaultConfig(), zerolog.Nop()).Generate(context.Background(), Request{
		Subject:  "misc",
		Count:    1,
		Existing: []quiz.Question{q("Old?")},
	})
	require.NoError(t, err)
	require.Len(t, f.Questions, 2)
	assert.Equal(t, "Old?", f.Questions[0].Text)
	assert.Equal(t, "New?", f.Questions[1].Text)
}

func TestGenerate_Shortfall(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRounds = 2
	mock := llm.NewMockProvider(batch(t, q("A?")), batch(t, q("A?")))

	f, err := New(mock, cfg, zerolog.Nop()).Generate(context.Background(), Request{Subject: "s", Count: 5})
	assert.ErrorIs(t, err, ErrShortfall)
	require.NotNil(t, f)
	assert.Len(t, f.Questions, 1)
}

func TestGenerate_ProviderError(t *testing.T) {
	boom := errors.New("boom")
	mock := llm.NewMockProvider(llm.MockResponse{Err: boom})

	_, err := New(mock, DefaultConfig(), zerolog.Nop()).Generate(context.Background(), Request{Subject: "s", Count: 1})
	assert.ErrorIs(t, err, boom)
}

func TestGenerate_InvalidCount(t *testing.T) {
	_, err := New(llm.NewMockProvider(), DefaultConfig(), zerolog.Nop()).Generate(context.Background(), Request{Count: 0})
	assert.Error(t, err)
}

func TestGenerate_OutputDecodes(t *testing.T) {
	mock := llm.NewMockProvider(batch(t, q("One?"), q("Two?")))
	f, err := New(mock, DefaultConfig(), zerolog.Nop()).Generate(context.Background(), Request{Subject: "s", Count: 2})
	require.NoError(t, err)

	data, err := topics.Encode("out.json", f)
	require.NoError(t, err)
	back, err := topics.Decode("out.json", data)
	require.NoError(t, err)
	assert.Len(t, quiz.FilterPlayable(back.Questions), 2)
}

func TestFormatPrior(t *testing.T) {
	assert.Equal(t, "None", formatPrior(nil, 5))

	var prior []string
	for i := range 10 {
		prior = append(prior, fmt.Sprintf("Q%d", i))
	}
	got := formatPrior(prior, 3)
	assert.Equal(t, "1. Q7\n2. Q8\n3. Q9", got)
	assert.False(t, strings.Contains(got, "Q6"))
}
