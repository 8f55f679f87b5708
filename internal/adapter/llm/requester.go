package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"foodtrend/internal/domain/suggestion"
)

// RequesterConfig contains configuration for the suggestion requester
type RequesterConfig struct {
	MaxTokens int
	Timeout   time.Duration
}

// SuggestionRequester turns trend requests into dish suggestions via a Generator
type SuggestionRequester struct {
	generator Generator
	config    RequesterConfig
	logger    *slog.Logger
}

// NewSuggestionRequester creates a requester over generator
func NewSuggestionRequester(generator Generator, config RequesterConfig, logger *slog.Logger) *SuggestionRequester {
	if config.MaxTokens <= 0 {
		config.MaxTokens = 1024
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SuggestionRequester{
		generator: generator,
		config:    config,
		logger:    logger,
	}
}

// Suggest requests dish suggestions. Upstream failures wrap
// suggestion.ErrGenerationFailed; malformed output wraps suggestion.ErrInvalidFormat.
func (r *SuggestionRequester) Suggest(ctx context.Context, req suggestion.Request) (suggestion.Result, error) {
	prompt, err := BuildPrompt(req)
	if err != nil {
		return suggestion.Result{}, fmt.Errorf("%w: %v", suggestion.ErrGenerationFailed, err)
	}

	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := r.generator.Generate(ctx, prompt, r.config.MaxTokens)
	if err != nil {
		r.logger.Error("suggestion generation failed", "model", r.generator.Version(), "error", err)
		return suggestion.Result{}, fmt.Errorf("%w: %w", suggestion.ErrGenerationFailed, err)
	}

	result, err := ParseResult(raw)
	if err != nil {
		r.logger.Error("suggestion response rejected", "model", r.generator.Version(), "error", err)
		return suggestion.Result{}, err
	}

	r.logger.Info("suggestions generated",
		"model", r.generator.Version(),
		"restaurant_type", req.RestaurantType,
		"dishes", len(result.Dishes),
		"duration", time.Since(start),
	)
	return result, nil
}

var _ suggestion.Requester = (*SuggestionRequester)(nil)
