package session

import (
	"time"

	"github.com/abhisek/hanzi/internal/quiz"
)

// Mode is how the learner answers questions.
type Mode string

const (
	// ModeChoice picks one of the generated options.
	ModeChoice Mode = "choice"

	// ModeTyping types the answer as free text.
	ModeTyping Mode = "typing"
)

// Phase represents the current phase of a quiz session.
type Phase int

const (
	PhaseAnswering Phase = iota // Waiting for an answer to the current question
	PhaseFeedback               // Showing whether the last answer was correct
	PhaseFinished               // All questions served; result available
)

// State tracks a learner working through one quiz.
type State struct {
	// Quiz is the generated quiz being taken.
	Quiz *quiz.Quiz

	// Mode is how answers are entered.
	Mode Mode

	// Current is the index of the question being shown.
	Current int

	// Answers holds submitted answers by question index. Skipped questions
	// have no entry.
	Answers map[int]string

	// Phase is the current session phase.
	Phase Phase

	// LastCorrect records whether the most recent answer was correct.
	LastCorrect bool

	// StartTime is when the session began.
	StartTime time.Time

	// Elapsed is the time spent, fixed when the session finishes.
	Elapsed time.Duration

	result *quiz.Result
}

// NewState starts a session over q. A quiz with no questions starts
// finished.
func NewState(q *quiz.Quiz, mode Mode) *State {
	s := &State{
		Quiz:      q,
		Mode:      mode,
		Answers:   make(map[int]string),
		Phase:     PhaseAnswering,
		StartTime: time.Now(),
	}
	if len(q.Questions) == 0 {
		s.Phase = PhaseFinished
	}
	return s
}

// Total returns the number of questions in the quiz.
func (s *State) Total() int {
	return len(s.Quiz.Questions)
}

// Question returns the question being shown, or nil once finished.
func (s *State) Question() *quiz.Question {
	if s.Phase == PhaseFinished || s.Current >= s.Total() {
		return nil
	}
	return &s.Quiz.Questions[s.Current]
}
