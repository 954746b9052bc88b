// Package agent turns the user's morning inputs into a structured reflection
// by prompting a text-completion provider and defensively parsing its reply.
package agent

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"consciousday/internal/config"
	"consciousday/internal/llm"
	"consciousday/internal/model"
)

// Agent orchestrates one reflection: credential check, prompt, provider
// call, extraction, parse, normalization. It holds no mutable state and is
// safe for concurrent use.
type Agent struct {
	cfg       config.Config
	completer llm.Completer
	log       *zap.Logger
}

// New builds an agent from an immutable config snapshot and a completer.
// A nil logger disables logging.
func New(cfg config.Config, completer llm.Completer, log *zap.Logger) *Agent {
	if log == nil {
		log = zap.NewNop()
	}
	return &Agent{cfg: cfg, completer: completer, log: log}
}

// Generate runs the full reflection pipeline. It returns either a complete
// Reflection (all four fields present, "" fallbacks for missing ones) or an
// *Error — never a partial result, never a panic. Exactly one provider call
// is made per invocation, and none at all when no credential is configured.
func (a *Agent) Generate(ctx context.Context, req model.ReflectionRequest) (model.Reflection, error) {
	if a.cfg.APIKey == "" {
		return model.Reflection{}, &Error{Kind: KindNoCredentials}
	}

	prompt := BuildPrompt(req.Journal, req.Intention, req.Dream, req.Priorities)
	a.log.Debug("calling provider",
		zap.String("model", a.cfg.Model),
		zap.Float64("temperature", a.cfg.Temperature),
		zap.Int("prompt_chars", len(prompt)))

	raw, err := a.completer.Complete(ctx, prompt)
	if err != nil {
		a.log.Debug("provider call failed", zap.Error(err))
		return model.Reflection{}, &Error{Kind: KindCallFailed, Raw: err.Error()}
	}

	raw = strings.TrimSpace(raw)
	jsonText, ok := ExtractJSON(raw)
	if !ok {
		return model.Reflection{}, &Error{Kind: KindNoJSON, Raw: raw}
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(jsonText), &data); err != nil {
		return model.Reflection{}, &Error{Kind: KindDecode, Raw: jsonText}
	}

	return Normalize(data), nil
}
