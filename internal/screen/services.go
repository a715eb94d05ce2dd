package screen

import (
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/hanzi/internal/dataset"
	"github.com/abhisek/hanzi/internal/quiz"
	"github.com/abhisek/hanzi/internal/session"
	"github.com/abhisek/hanzi/internal/store"
	"github.com/abhisek/hanzi/internal/tracker"
)

// Services are the dependencies screens share. Attempts may be nil, which
// hides history.
type Services struct {
	Data      *dataset.Dataset
	Tracker   *tracker.Tracker
	Recorder  *session.Recorder
	Attempts  store.AttemptRepo
	Generator *quiz.Generator
	Logger    *zap.Logger

	// Now returns the current time; nil means time.Now.
	Now func() time.Time
}

// Today returns the current time from Now.
func (s *Services) Today() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// Log returns the logger, or a no-op logger when none is set.
func (s *Services) Log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
