package topicgen

import (
	"github.com/abhisek/quizrush/internal/llm"
	"github.com/abhisek/quizrush/internal/quiz"
)

// BatchSchema is the structured output requested from the model.
var BatchSchema = &llm.Schema{
	Name:        "quiz-question-batch",
	Description: "A batch of multiple-choice quiz questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text, one sentence",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    quiz.MinOptions,
							"maxItems":    quiz.MinOptions,
							"description": "Exactly 4 answer options. The FIRST option is the correct answer.",
						},
					},
					"required":             []any{"question", "options"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

type batchOutput struct {
	Questions []quiz.Question `json:"questions"`
}
