package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pairSchema() *Schema {
	return &Schema{
		Name: "test-pair",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":  map[string]any{"type": "string"},
				"count": map[string]any{"type": "integer", "minimum": 0},
				"tags":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 1},
			},
			"required": []string{"name", "count"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"name":"a","count":1,"tags":["x"]}`, false},
		{"optional omitted", `{"name":"a","count":0}`, false},
		{"missing required", `{"name":"a"}`, true},
		{"wrong type", `{"name":"a","count":"one"}`, true},
		{"below minimum", `{"name":"a","count":-1}`, true},
		{"empty tags", `{"name":"a","count":1,"tags":[]}`, true},
		{"not json", `name: a`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(pairSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var inv *ErrInvalidResponse
			require.True(t, errors.As(err, &inv), "got %T", err)
			assert.Equal(t, tt.raw, string(inv.Content))
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	assert.NoError(t, validateResponse(nil, json.RawMessage(`not json`)))
}

func TestValidatingProvider(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"name":"a","count":2}`)},
		MockResponse{Content: json.RawMessage(`{"name":"a"}`)},
		MockResponse{Content: json.RawMessage(`{"name":`), StopReason: "max_tokens"},
	)
	p := WithValidation(mock)
	req := Request{Schema: pairSchema()}

	resp, err := p.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"a","count":2}`, string(resp.Content))

	_, err = p.Generate(context.Background(), req)
	var inv *ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)

	_, err = p.Generate(context.Background(), req)
	var maxTok *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &maxTok)
}
