package store

import (
	"context"
	"time"
)

// QueryOpts configures history queries with filtering and pagination.
// Results are returned newest first.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// KV is the string key-value contract completion state is stored through.
// Writes are last-write-wins.
type KV interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// Attempt is one scored quiz.
type Attempt struct {
	ID       int64
	Sequence int64
	QuizID   string
	Date     string
	Mode     string // "choice" or "typing"
	Score    int
	Total    int
	TakenAt  time.Time
}

// AttemptRepo records scored quizzes.
type AttemptRepo interface {
	// Append stores a new attempt, filling ID and Sequence.
	Append(ctx context.Context, a *Attempt) error

	// Recent returns attempts newest first.
	Recent(ctx context.Context, opts QueryOpts) ([]Attempt, error)

	// ForDate returns the attempts for one scheduled date, newest first.
	ForDate(ctx context.Context, date string) ([]Attempt, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored LLM request.
type LLMRequestEvent struct {
	LLMRequestEventData
	ID        int64
	Sequence  int64
	Timestamp time.Time
}

// EventRepo records LLM API calls.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMRequests returns LLM request events newest first.
	QueryLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)
}
