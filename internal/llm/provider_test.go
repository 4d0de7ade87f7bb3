package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestMockProvider(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 3}})
	mock.AddResponse(MockResponse{Err: errors.New("boom")})

	resp, err := mock.Generate(context.Background(), Request{Messages: UserMessage("hi")})
	require.NoError(t, err)
	assert.Equal(t, "end", resp.StopReason)
	assert.Equal(t, 3, resp.Usage.InputTokens)

	_, err = mock.Generate(context.Background(), Request{})
	assert.EqualError(t, err, "boom")

	_, err = mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)

	calls := mock.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, "hi", calls[0].Messages[0].Content)
}

func TestLoggingProvider(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`), Usage: Usage{InputTokens: 5, OutputTokens: 7}})

	ctx := WithPurpose(context.Background(), "topic-generation")
	_, err := WithLogging(mock, log).Generate(ctx, Request{Schema: &Schema{Name: "s"}})
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "llm request", line["message"])
	assert.Equal(t, "topic-generation", line["purpose"])
	assert.Equal(t, "s", line["schema"])
	assert.EqualValues(t, 7, line["output_tokens"])
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: ProviderMock}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, ProviderMock, p.ModelID())

	_, err = NewProvider(context.Background(), Config{Provider: ProviderOpenAI}, zerolog.Nop())
	assert.Error(t, err)
}

func TestNewOpenAIProvider_OpenRouterModel(t *testing.T) {
	p, err := NewOpenAIProvider(Config{Provider: ProviderOpenRouter, APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, defaultModels[ProviderOpenRouter], p.ModelID())
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 4,
			},
			"kind": map[string]any{"type": "string", "enum": []any{"a", "b"}},
		},
		"required": []string{"options"},
	})

	assert.Equal(t, genai.TypeObject, s.Type)
	assert.Equal(t, []string{"options"}, s.Required)
	opts := s.Properties["options"]
	require.NotNil(t, opts)
	assert.Equal(t, genai.TypeArray, opts.Type)
	assert.Equal(t, genai.TypeString, opts.Items.Type)
	require.NotNil(t, opts.MinItems)
	assert.EqualValues(t, 4, *opts.MinItems)
	assert.Equal(t, []string{"a", "b"}, s.Properties["kind"].Enum)
}
