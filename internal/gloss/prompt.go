package gloss

import (
	"fmt"
	"strings"

	"github.com/abhisek/hanzi/internal/dictionary"
)

const systemPrompt = `You write English glosses for a Traditional Chinese flashcard deck.

Rules:
- Gloss every phrase in the list, and only those phrases.
- Copy each phrase into "word" exactly as given.
- Keep each gloss short: a word or a brief phrase, lowercase, no trailing period.
- Use the Chinese explanation, when given, to pick the intended sense.
- Do not transliterate; give the meaning.`

// buildUserMessage lists the phrases of one headword that need a gloss.
func buildUserMessage(ch string, phrases []dictionary.Phrase) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Character: %s\n\nPhrases:\n", ch)
	for _, p := range phrases {
		if dictionary.Present(p.LocalGloss) {
			fmt.Fprintf(&b, "- %s: %s\n", p.Word, p.LocalGloss)
		} else {
			fmt.Fprintf(&b, "- %s\n", p.Word)
		}
	}
	return b.String()
}
