package quiz

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NoAnswer is the submitted value recorded for an unanswered question.
const NoAnswer = ""

// Normalize applies the free-text policy used when comparing answers:
// surrounding whitespace is trimmed and the text is put in Unicode NFC form.
// Case is left alone.
func Normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// IsCorrect reports whether submitted matches the question's answer.
func IsCorrect(q Question, submitted string) bool {
	got := Normalize(submitted)
	if got == NoAnswer {
		return false
	}
	return got == Normalize(q.Answer)
}

// Score grades submitted answers, keyed by question index, against
// questions. A missing index counts as unanswered and incorrect. Score has no
// side effects.
func Score(questions []Question, submitted map[int]string) Result {
	res := Result{
		PerQuestion: make([]Review, len(questions)),
		Total:       len(questions),
	}
	for i, q := range questions {
		answer, ok := submitted[i]
		if !ok {
			answer = NoAnswer
		}
		correct := IsCorrect(q, answer)
		if correct {
			res.Score++
		}
		res.PerQuestion[i] = Review{
			Prompt:    q.Prompt,
			Submitted: answer,
			Correct:   q.Answer,
			IsCorrect: correct,
		}
	}
	return res
}
