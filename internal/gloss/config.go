package gloss

import "time"

// Config controls the behavior of the Enricher.
type Config struct {
	// Concurrency is the number of characters enriched in parallel.
	Concurrency int

	// MaxTokens is the token budget for one response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// Timeout bounds the request for one character. Zero means no bound
	// beyond the caller's context.
	Timeout time.Duration

	// Limit caps the number of characters enriched in one run. Zero
	// enriches every character with missing glosses.
	Limit int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		Concurrency: 4,
		MaxTokens:   1024,
		Temperature: 0.2,
		Timeout:     60 * time.Second,
	}
}
