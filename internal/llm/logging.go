package llm

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// LoggingProvider writes one structured log line per request.
type LoggingProvider struct {
	inner Provider
	log   zerolog.Logger
}

// WithLogging wraps p with request logging.
func WithLogging(p Provider, log zerolog.Logger) Provider {
	return &LoggingProvider{inner: p, log: log.With().Str("component", "llm").Logger()}
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	ev := l.log.Info()
	if err != nil {
		ev = l.log.Warn().Err(err)
	}
	ev = ev.Str("purpose", PurposeFrom(ctx)).
		Str("model", l.inner.ModelID()).
		Dur("latency", time.Since(start))
	if req.Schema != nil {
		ev = ev.Str("schema", req.Schema.Name)
	}
	if resp != nil {
		ev = ev.Str("served_by", resp.Model).
			Int("input_tokens", resp.Usage.InputTokens).
			Int("output_tokens", resp.Usage.OutputTokens)
		if cost, ok := LookupCost(resp.Model); ok {
			ev = ev.Float64("cost_usd", cost.Cost(resp.Usage))
		}
	}
	ev.Msg("llm request")

	return resp, err
}
