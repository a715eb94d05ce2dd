package quiz

import (
	"github.com/abhisek/hanzi/internal/dictionary"
)

// Pools holds the candidate distractor values for each question type,
// gathered across the whole dictionary. Values may repeat.
type Pools struct {
	Readings    []string
	Definitions []string
	PhraseWords []string
	PhraseChars []string
}

// BuildPools collects distractor candidates from every entry in d. Empty
// fields and the sentinel never enter a pool.
func BuildPools(d *dictionary.Dictionary) Pools {
	var p Pools
	for _, ch := range d.Characters() {
		e, _ := d.Lookup(ch)
		if dictionary.Present(e.Reading) {
			p.Readings = append(p.Readings, e.Reading)
		}
		if dictionary.Present(e.Definition) {
			p.Definitions = append(p.Definitions, e.Definition)
		}
		for _, phrase := range e.PhrasesOf(2) {
			if !dictionary.Present(phrase.Word) {
				continue
			}
			p.PhraseWords = append(p.PhraseWords, phrase.Word)
			for _, r := range phrase.Word {
				p.PhraseChars = append(p.PhraseChars, string(r))
			}
		}
	}
	return p
}

// For returns the pool distractors for t are drawn from.
func (p Pools) For(t QuestionType) []string {
	switch t {
	case TypeReading:
		return p.Readings
	case TypeDefinition:
		return p.Definitions
	case TypePhrase:
		return p.PhraseWords
	case TypeCombine:
		return p.PhraseChars
	default:
		return nil
	}
}
