package session

import (
	"time"

	"github.com/abhisek/hanzi/internal/quiz"
)

// Summary holds the data displayed on the result screen.
type Summary struct {
	QuizID   string
	Date     string
	Mode     Mode
	Duration time.Duration
	Result   quiz.Result
	Accuracy float64
}

// BuildSummary creates a Summary from a finished session.
func BuildSummary(s *State) *Summary {
	res := s.Finish()

	var accuracy float64
	if res.Total > 0 {
		accuracy = float64(res.Score) / float64(res.Total)
	}

	return &Summary{
		QuizID:   s.Quiz.ID,
		Date:     s.Quiz.Date,
		Mode:     s.Mode,
		Duration: s.Elapsed,
		Result:   res,
		Accuracy: accuracy,
	}
}

// Missed returns the reviews of incorrectly answered questions.
func (s *Summary) Missed() []quiz.Review {
	var out []quiz.Review
	for _, r := range s.Result.PerQuestion {
		if !r.IsCorrect {
			out = append(out, r)
		}
	}
	return out
}
