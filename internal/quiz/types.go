package quiz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/hanzi/internal/dictionary"
)

// QuestionType selects which field of a dictionary entry a question tests.
type QuestionType int

const (
	// TypeReading asks for the bopomofo reading of the character.
	TypeReading QuestionType = iota

	// TypeDefinition asks for the meaning of the character.
	TypeDefinition

	// TypePhrase shows a phrase gloss and asks for the two-character phrase.
	TypePhrase

	// TypeCombine asks which character completes a two-character phrase.
	TypeCombine
)

// QuestionTypes lists every question type, in declaration order.
var QuestionTypes = []QuestionType{TypeReading, TypeDefinition, TypePhrase, TypeCombine}

var typeNames = map[QuestionType]string{
	TypeReading:    "reading",
	TypeDefinition: "definition",
	TypePhrase:     "phrase",
	TypeCombine:    "combine",
}

func (t QuestionType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("QuestionType(%d)", int(t))
}

// ParseQuestionType parses the stable string form of a question type.
func ParseQuestionType(s string) (QuestionType, error) {
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown question type %q", s)
}

// NeedsPhrase reports whether the type is built from a two-character phrase.
func (t QuestionType) NeedsPhrase() bool {
	return t == TypePhrase || t == TypeCombine
}

// Question is one generated multiple-choice question.
type Question struct {
	// Character is the headword under test.
	Character string

	// Type is the question type after any downgrade.
	Type QuestionType

	// Prompt is the question text shown to the learner.
	Prompt string

	// Options holds the shuffled choices. It contains Answer exactly once and
	// no duplicates. Normally 4 entries, fewer when the pool runs dry.
	Options []string

	// Answer is the correct option.
	Answer string

	// Phrase is the phrase the question was built from. Set only for
	// TypePhrase and TypeCombine.
	Phrase *dictionary.Phrase
}

// ResolveChoice maps a 1-based option number to the option text. Any other
// input is returned trimmed and unchanged.
func (q Question) ResolveChoice(input string) string {
	input = strings.TrimSpace(input)
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(q.Options) {
		return q.Options[n-1]
	}
	return input
}

// Quiz is a generated question set for one scheduled day.
type Quiz struct {
	ID        string
	Date      string
	Questions []Question
}

// Review is the scored outcome of one question.
type Review struct {
	Prompt    string
	Submitted string
	Correct   string
	IsCorrect bool
}

// Result is the scored outcome of a whole quiz.
type Result struct {
	PerQuestion []Review
	Score       int
	Total       int
}

// Percent returns the score as a percentage of the total.
func (r Result) Percent() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.Total) * 100
}
