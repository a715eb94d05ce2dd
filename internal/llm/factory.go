package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/hanzi/internal/store"
)

// NewProvider builds the configured provider wrapped as
// caller → retry → rate limit → logging → SDK, so each retry is paced and
// recorded separately.
func NewProvider(ctx context.Context, cfg Config, repo store.EventRepo, logger *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderMock:
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	burst := max(cfg.Concurrency, 1)
	p := WithLogging(base, cfg.Provider, repo, logger)
	p = WithRateLimit(p, NewLimiter(cfg.Rate, burst))
	return WithRetry(p, cfg.Retry), nil
}
