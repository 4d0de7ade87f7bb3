package llm

// defaultModels is used when Config.Model is empty.
var defaultModels = map[string]string{
	ProviderAnthropic:  "claude-haiku",
	ProviderOpenAI:     "gpt-4o-mini",
	ProviderOpenRouter: "google/gemini-2.0-flash-001",
	ProviderGemini:     "gemini-flash",
}

// modelAliases maps friendly names to provider model IDs. Unknown names
// pass through unchanged.
var modelAliases = map[string]string{
	"claude-sonnet": "claude-sonnet-4-20250514",
	"claude-haiku":  "claude-haiku-4-5-20251001",
	"gemini-flash":  "gemini-2.0-flash",
	"gemini-pro":    "gemini-2.5-pro",
}

func resolveModel(provider, name string) string {
	if name == "" {
		name = defaultModels[provider]
	}
	if id, ok := modelAliases[name]; ok {
		return id
	}
	return name
}

// ModelCost is USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost returns the USD cost of a request.
func (c ModelCost) Cost(u Usage) float64 {
	return float64(u.InputTokens)*c.InputPerMTok/1_000_000 +
		float64(u.OutputTokens)*c.OutputPerMTok/1_000_000
}

// modelCosts covers the default and aliased models only.
var modelCosts = map[string]ModelCost{
	"claude-haiku-4-5-20251001": {1, 5},
	"claude-sonnet-4-20250514":  {3, 15},
	"gpt-4o-mini":               {0.15, 0.6},
	"gpt-4o":                    {2.5, 10},
	"gemini-2.0-flash":          {0.1, 0.4},
	"gemini-2.5-pro":            {1.25, 10},
}

// LookupCost returns the pricing for a model ID.
func LookupCost(modelID string) (ModelCost, bool) {
	c, ok := modelCosts[modelID]
	return c, ok
}
