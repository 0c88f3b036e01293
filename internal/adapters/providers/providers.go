// Package providers builds the configured generator.Model.
package providers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/journeyexplore/trip-planner-api/internal/adapters/gemini"
	"github.com/journeyexplore/trip-planner-api/internal/adapters/openai"
	"github.com/journeyexplore/trip-planner-api/internal/platform/config"
	"github.com/journeyexplore/trip-planner-api/internal/ports/out/generator"
)

// New returns the model named by cfg.Provider.
func New(ctx context.Context, cfg config.ModelConfig, logger *slog.Logger) (generator.Model, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return gemini.New(ctx, cfg.APIKey,
			gemini.WithModelName(cfg.Name),
			gemini.WithTemperature(float32(cfg.Temperature)),
			gemini.WithLogger(logger),
		)
	case config.ProviderOpenAI:
		return openai.New(cfg.APIKey,
			openai.WithModelName(cfg.Name),
			openai.WithTemperature(cfg.Temperature),
			openai.WithLogger(logger),
		)
	default:
		return nil, fmt.Errorf("unknown model provider %q", cfg.Provider)
	}
}
