package quiz

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/hanzi/internal/dictionary"
)

const (
	// OptionCount is the number of choices a question normally offers.
	OptionCount = 4

	// DefaultSize is the number of characters a quiz tests when the day has
	// enough of them.
	DefaultSize = 10

	// pinned is the number of leading day characters every quiz tests.
	pinned = 2
)

// Generator builds quizzes from a dictionary. It is safe for concurrent use.
type Generator struct {
	dict   *dictionary.Dictionary
	pools  Pools
	size   int
	logger *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source. Tests pass a seeded source.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// WithSize sets the maximum number of characters per quiz. Values below 2
// are raised to 2.
func WithSize(n int) Option {
	return func(g *Generator) { g.size = max(n, pinned) }
}

// WithLogger sets the logger used for degenerate-pool diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithPools overrides the pools derived from the dictionary.
func WithPools(p Pools) Option {
	return func(g *Generator) { g.pools = p }
}

// NewGenerator creates a Generator over dict. Pools are built once here.
func NewGenerator(dict *dictionary.Dictionary, opts ...Option) *Generator {
	g := &Generator{
		dict:   dict,
		pools:  BuildPools(dict),
		size:   DefaultSize,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		seed := uint64(time.Now().UnixNano())
		g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	return g
}

// Pools returns the distractor pools in use.
func (g *Generator) Pools() Pools {
	return g.pools
}

// Size returns the maximum number of characters per quiz.
func (g *Generator) Size() int {
	return g.size
}

// Generate builds one question per selected character. The first two
// characters are always tested, in order; up to Size()-2 more are drawn at
// random from the rest.
func (g *Generator) Generate(chars []string) ([]Question, error) {
	if len(chars) < pinned {
		return nil, ErrInsufficientData
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	selected := g.selectCharacters(chars)
	questions := make([]Question, 0, len(selected))
	for _, ch := range selected {
		t := QuestionTypes[g.rng.IntN(len(QuestionTypes))]
		questions = append(questions, g.buildQuestion(ch, t))
	}
	return questions, nil
}

// GenerateQuiz generates the quiz for a scheduled day.
func (g *Generator) GenerateQuiz(date string, chars []string) (*Quiz, error) {
	questions, err := g.Generate(chars)
	if err != nil {
		return nil, fmt.Errorf("generate quiz for %s: %w", date, err)
	}
	return &Quiz{
		ID:        uuid.New().String(),
		Date:      date,
		Questions: questions,
	}, nil
}

func (g *Generator) selectCharacters(chars []string) []string {
	n := min(g.size, len(chars))
	out := make([]string, 0, n)
	out = append(out, chars[:pinned]...)

	rest := slices.Clone(chars[pinned:])
	g.rng.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})
	return append(out, rest[:n-pinned]...)
}

// buildQuestion assembles a question of type t for ch, downgrading phrase
// based types when the character has no two-character phrase.
func (g *Generator) buildQuestion(ch string, t QuestionType) Question {
	entry := g.dict.Entry(ch)

	phrase, hasPhrase := entry.FirstPhrase(2)
	var blanked, rest string
	if hasPhrase {
		blanked, rest = splitPhrase(phrase.Word, ch)
	}
	switch {
	case t == TypePhrase && !hasPhrase:
		t = TypeDefinition
	case t == TypeCombine && (!hasPhrase || rest == ""):
		t = TypeReading
	}

	q := Question{Character: ch, Type: t}
	switch t {
	case TypeReading:
		q.Answer = entry.Reading
		q.Prompt = fmt.Sprintf("「%s」的注音是什麼？", ch)
	case TypeDefinition:
		q.Answer = entry.Definition
		q.Prompt = fmt.Sprintf("「%s」是什麼意思？", ch)
	case TypePhrase:
		q.Answer = phrase.Word
		q.Prompt = phrasePrompt(ch, phrase)
		q.Phrase = &phrase
	case TypeCombine:
		q.Answer = rest
		q.Prompt = fmt.Sprintf("「%s」要和哪個字組成詞語「%s」？", ch, blanked)
		q.Phrase = &phrase
	}

	pool := g.pools.For(t)
	q.Options = g.buildOptions(q.Answer, pool)
	if len(q.Options) < OptionCount {
		g.logger.Debug("distractor pool exhausted",
			zap.String("character", ch),
			zap.Stringer("type", t),
			zap.Int("options", len(q.Options)),
			zap.Int("pool", len(pool)))
	}
	return q
}

func phrasePrompt(ch string, p dictionary.Phrase) string {
	switch {
	case dictionary.Present(p.LocalGloss):
		return fmt.Sprintf("哪個含有「%s」的詞語是「%s」的意思？", ch, p.LocalGloss)
	case dictionary.Present(p.ForeignGloss):
		return fmt.Sprintf("哪個含有「%s」的詞語是「%s」的意思？", ch, p.ForeignGloss)
	default:
		return fmt.Sprintf("哪個是含有「%s」的詞語？", ch)
	}
}

// splitPhrase removes the first occurrence of ch from word. It returns the
// word with the remaining part blanked out, and the remaining part itself.
func splitPhrase(word, ch string) (blanked, rest string) {
	i := strings.Index(word, ch)
	if i < 0 {
		return "", ""
	}
	rest = word[:i] + word[i+len(ch):]
	blank := strings.Repeat("＿", len([]rune(rest)))
	if i == 0 {
		return ch + blank, rest
	}
	return blank + ch, rest
}

// buildOptions returns the answer plus up to OptionCount-1 distinct
// distractors drawn uniformly from pool, shuffled. Random draws are capped;
// if the cap is hit, the remaining unseen pool values are taken in random
// order, so the loop ends once every distinct pool value has been considered.
func (g *Generator) buildOptions(answer string, pool []string) []string {
	options := []string{answer}
	seen := map[string]struct{}{answer: {}}

	unseen := make(map[string]struct{})
	for _, v := range pool {
		if _, ok := seen[v]; !ok {
			unseen[v] = struct{}{}
		}
	}

	add := func(v string) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		delete(unseen, v)
		options = append(options, v)
	}

	maxDraws := OptionCount * len(pool)
	for draws := 0; len(options) < OptionCount && len(unseen) > 0 && draws < maxDraws; draws++ {
		add(pool[g.rng.IntN(len(pool))])
	}

	if len(options) < OptionCount && len(unseen) > 0 {
		remaining := make([]string, 0, len(unseen))
		for _, v := range pool {
			if _, ok := unseen[v]; ok && !slices.Contains(remaining, v) {
				remaining = append(remaining, v)
			}
		}
		g.rng.Shuffle(len(remaining), func(i, j int) {
			remaining[i], remaining[j] = remaining[j], remaining[i]
		})
		for _, v := range remaining {
			if len(options) == OptionCount {
				break
			}
			add(v)
		}
	}

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
