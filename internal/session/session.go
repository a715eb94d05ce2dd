package session

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/hanzi/internal/quiz"
	"github.com/abhisek/hanzi/internal/store"
	"github.com/abhisek/hanzi/internal/tracker"
)

// Answer records value for the current question and switches to feedback.
// In choice mode a 1-based option number selects that option. Returns
// whether the answer was correct; false if nothing is awaiting an answer.
func (s *State) Answer(value string) bool {
	q := s.Question()
	if q == nil || s.Phase != PhaseAnswering {
		return false
	}
	if s.Mode == ModeChoice {
		value = q.ResolveChoice(value)
	}
	s.Answers[s.Current] = value
	s.LastCorrect = quiz.IsCorrect(*q, value)
	s.Phase = PhaseFeedback
	return s.LastCorrect
}

// Skip leaves the current question unanswered and moves on.
func (s *State) Skip() {
	if s.Phase != PhaseAnswering {
		return
	}
	s.LastCorrect = false
	s.advance()
}

// Next leaves the feedback phase for the next question. Returns false once
// the quiz is finished.
func (s *State) Next() bool {
	if s.Phase == PhaseFeedback {
		s.advance()
	}
	return s.Phase != PhaseFinished
}

func (s *State) advance() {
	s.Current++
	if s.Current >= s.Total() {
		s.finish()
		return
	}
	s.Phase = PhaseAnswering
}

func (s *State) finish() {
	if s.Elapsed == 0 {
		s.Elapsed = time.Since(s.StartTime)
	}
	s.Phase = PhaseFinished
}

// Correct returns the number of correct answers so far.
func (s *State) Correct() int {
	n := 0
	for i, a := range s.Answers {
		if quiz.IsCorrect(s.Quiz.Questions[i], a) {
			n++
		}
	}
	return n
}

// Answered returns the number of questions answered so far.
func (s *State) Answered() int {
	return len(s.Answers)
}

// Finish ends the session, leaving any remaining questions unanswered, and
// returns the scored result. The quiz is scored once; later calls return the
// same result.
func (s *State) Finish() quiz.Result {
	if s.result != nil {
		return *s.result
	}
	s.finish()
	res := quiz.Score(s.Quiz.Questions, s.Answers)
	s.result = &res
	return res
}

// Recorder persists finished sessions.
type Recorder struct {
	tracker  *tracker.Tracker
	attempts store.AttemptRepo
}

// NewRecorder creates a Recorder. attempts may be nil to skip the history
// log.
func NewRecorder(t *tracker.Tracker, attempts store.AttemptRepo) *Recorder {
	return &Recorder{tracker: t, attempts: attempts}
}

// Record finishes s and stores its score as the latest score of the quiz
// date, then appends it to the attempt history.
func (r *Recorder) Record(ctx context.Context, s *State) (*Summary, error) {
	res := s.Finish()
	summary := BuildSummary(s)

	if err := r.tracker.SaveScore(ctx, s.Quiz.Date, res.Score); err != nil {
		return summary, fmt.Errorf("save score: %w", err)
	}
	if r.attempts == nil {
		return summary, nil
	}
	err := r.attempts.Append(ctx, &store.Attempt{
		QuizID:  s.Quiz.ID,
		Date:    s.Quiz.Date,
		Mode:    string(s.Mode),
		Score:   res.Score,
		Total:   res.Total,
		TakenAt: s.StartTime.Add(s.Elapsed),
	})
	if err != nil {
		return summary, fmt.Errorf("save attempt: %w", err)
	}
	return summary, nil
}
