package quiz

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/abhisek/hanzi/internal/dictionary"
)

func phrases(word, zh, en string) map[int][]dictionary.Phrase {
	return map[int][]dictionary.Phrase{2: {{Word: word, LocalGloss: zh, ForeignGloss: en}}}
}

func testDictionary() *dictionary.Dictionary {
	return dictionary.New(map[string]dictionary.Entry{
		"掌": {Reading: "ㄓㄤˇ", Radical: "手", Definition: "手心", Phrases: phrases("鼓掌", "拍手", "applaud")},
		"瓣": {Reading: "ㄅㄢˋ", Radical: "瓜", Definition: "花冠的組成部分"},
		"梢": {Reading: "ㄕㄠ", Radical: "木", Definition: "樹枝的末端", Phrases: phrases("眉梢", "眉毛的末尾", "")},
		"禮": {Reading: "ㄌㄧˇ", Radical: "示", Definition: "社會的規範", Phrases: phrases("禮物", "贈送的物品", "gift")},
		"取": {Reading: "ㄑㄩˇ", Radical: "又", Definition: "拿", Phrases: phrases("取消", "撤銷", "cancel")},
		"抬": {Reading: "ㄊㄞˊ", Radical: "手", Definition: "舉起", Phrases: phrases("抬頭", "仰起頭", "")},
		"初": {Reading: "ㄔㄨ", Radical: "刀", Definition: "開始", Phrases: phrases("最初", "最早的時候", "")},
		"夏": {Reading: "ㄒㄧㄚˋ", Radical: "夊", Definition: "四季中的第二季", Phrases: phrases("夏天", "夏季", "summer")},
		"包": {Reading: "ㄅㄠ", Radical: "勹", Definition: "裹", Phrases: phrases("書包", "裝書的袋子", "schoolbag")},
		"類": {Reading: "ㄌㄟˋ", Radical: "頁", Definition: "種類", Phrases: phrases("人類", "人的總稱", "humanity")},
		"目": {Reading: "ㄇㄨˋ", Radical: "目", Definition: "眼睛", Phrases: phrases("目標", "想要達到的地方", "goal")},
		"描": {Reading: "ㄇㄧㄠˊ", Radical: "手", Definition: "照著樣子畫", Phrases: phrases("描寫", "敘述", "describe")},
	})
}

var day = []string{"掌", "瓣", "梢", "禮", "取", "抬", "初", "夏", "包", "類", "目", "描", "極", "障"}

func seeded(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed+1)))
}

func countOf(list []string, v string) int {
	n := 0
	for _, s := range list {
		if s == v {
			n++
		}
	}
	return n
}

func characters(questions []Question) []string {
	out := make([]string, len(questions))
	for i, q := range questions {
		out[i] = q.Character
	}
	return out
}

func mustGenerate(t *testing.T, g *Generator, chars []string) []Question {
	t.Helper()
	questions, err := g.Generate(chars)
	if err != nil {
		t.Fatalf("Generate(%v) error = %v", chars, err)
	}
	return questions
}

func checkWellFormed(t *testing.T, q Question) {
	t.Helper()
	if n := countOf(q.Options, q.Answer); n != 1 {
		t.Errorf("answer %q appears %d times in %v, want 1", q.Answer, n, q.Options)
	}
	seen := map[string]bool{}
	for _, o := range q.Options {
		if seen[o] {
			t.Errorf("duplicate option %q in %v", o, q.Options)
		}
		seen[o] = true
	}
	if len(q.Options) > OptionCount {
		t.Errorf("len(Options) = %d, want <= %d", len(q.Options), OptionCount)
	}
	if !strings.Contains(q.Prompt, q.Character) {
		t.Errorf("prompt %q does not name %s", q.Prompt, q.Character)
	}
	if got, want := q.Phrase != nil, q.Type.NeedsPhrase(); got != want {
		t.Errorf("%s question has phrase = %v, want %v", q.Type, got, want)
	}
}

func TestGenerate_OptionInvariants(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		questions := mustGenerate(t, NewGenerator(testDictionary(), seeded(seed)), day)
		if len(questions) != DefaultSize {
			t.Fatalf("seed %d: len = %d, want %d", seed, len(questions), DefaultSize)
		}
		for _, q := range questions {
			checkWellFormed(t, q)
		}
	}
}

func TestGenerate_FirstTwoAlwaysTestedInOrder(t *testing.T) {
	for seed := uint64(0); seed < 100; seed++ {
		questions := mustGenerate(t, NewGenerator(testDictionary(), seeded(seed)), day)
		if questions[0].Character != "掌" || questions[1].Character != "瓣" {
			t.Errorf("seed %d: first two = %s %s, want 掌 瓣", seed, questions[0].Character, questions[1].Character)
		}

		tested := map[string]int{}
		for _, q := range questions {
			tested[q.Character]++
			if !slices.Contains(day, q.Character) {
				t.Errorf("seed %d: %s is not in the day", seed, q.Character)
			}
		}
		for ch, n := range tested {
			if n != 1 {
				t.Errorf("seed %d: %s tested %d times, want 1", seed, ch, n)
			}
		}
	}
}

func TestGenerate_DuplicatesPreserved(t *testing.T) {
	chars := []string{"掌", "掌", "瓣", "掌"}
	for seed := uint64(0); seed < 20; seed++ {
		got := characters(mustGenerate(t, NewGenerator(testDictionary(), seeded(seed)), chars))
		if len(got) != len(chars) {
			t.Fatalf("seed %d: characters = %v, want %d entries", seed, got, len(chars))
		}
		if got[0] != "掌" || got[1] != "掌" {
			t.Errorf("seed %d: first two = %v, want 掌 掌", seed, got[:2])
		}
		if n := countOf(got, "掌"); n != 3 {
			t.Errorf("seed %d: 掌 tested %d times, want 3", seed, n)
		}
		if n := countOf(got, "瓣"); n != 1 {
			t.Errorf("seed %d: 瓣 tested %d times, want 1", seed, n)
		}
	}

	g := NewGenerator(testDictionary(), seeded(4))
	got := characters(mustGenerate(t, g, []string{"掌", "掌", "瓣"}))
	if want := []string{"掌", "掌", "瓣"}; !slices.Equal(got, want) {
		t.Errorf("characters = %v, want %v", got, want)
	}
}

func TestGenerate_RerandomizesPerCall(t *testing.T) {
	g := NewGenerator(testDictionary(), seeded(11))
	first := mustGenerate(t, g, day)

	signature := func(questions []Question) []string {
		out := make([]string, len(questions))
		for i, q := range questions {
			out[i] = q.Character + "/" + q.Type.String()
		}
		return out
	}
	want := signature(first)
	for i := 0; i < 20; i++ {
		if got := signature(mustGenerate(t, g, day)); !slices.Equal(got, want) {
			return
		}
	}
	t.Errorf("20 calls on one generator all produced %v", want)
}

func TestGenerate_InsufficientData(t *testing.T) {
	g := NewGenerator(testDictionary(), seeded(1))
	for _, chars := range [][]string{nil, {}, {"掌"}} {
		questions, err := g.Generate(chars)
		if !errors.Is(err, ErrInsufficientData) {
			t.Errorf("Generate(%v) error = %v, want ErrInsufficientData", chars, err)
		}
		if len(questions) != 0 {
			t.Errorf("Generate(%v) = %v, want none", chars, questions)
		}
	}
}

func TestGenerate_SingleCharacterDay(t *testing.T) {
	dict := dictionary.New(map[string]dictionary.Entry{
		"掌": {Reading: "ㄓㄤˇ", Definition: "手心", Phrases: phrases("鼓掌", "拍手", "applaud")},
	})
	g := NewGenerator(dict, seeded(7))

	questions, err := g.Generate([]string{"掌"})
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("error = %v, want ErrInsufficientData", err)
	}
	if questions != nil {
		t.Errorf("questions = %v, want nil", questions)
	}
}

func TestGenerate_TwoCharacterDay(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		questions := mustGenerate(t, NewGenerator(testDictionary(), seeded(seed)), []string{"掌", "瓣"})
		if len(questions) != 2 {
			t.Fatalf("seed %d: len = %d, want 2", seed, len(questions))
		}
		for _, q := range questions {
			if len(q.Options) != OptionCount {
				t.Errorf("seed %d: len(Options) = %d, want %d", seed, len(q.Options), OptionCount)
			}
			if !slices.Contains(q.Options, q.Answer) {
				t.Errorf("seed %d: options %v lack answer %q", seed, q.Options, q.Answer)
			}
		}
	}
}

func TestGenerate_ShortDayIsNotTruncated(t *testing.T) {
	questions := mustGenerate(t, NewGenerator(testDictionary(), seeded(3)), day[:5])
	if len(questions) != 5 {
		t.Errorf("len = %d, want 5", len(questions))
	}
}

func TestGenerate_Size(t *testing.T) {
	questions := mustGenerate(t, NewGenerator(testDictionary(), seeded(3), WithSize(4)), day)
	if len(questions) != 4 {
		t.Errorf("len = %d, want 4", len(questions))
	}

	g := NewGenerator(testDictionary(), WithSize(0))
	if got := g.Size(); got != 2 {
		t.Errorf("Size() = %d, want 2", got)
	}
}

func TestGenerate_AnswersMatchEntry(t *testing.T) {
	dict := testDictionary()
	for seed := uint64(0); seed < 100; seed++ {
		for _, q := range mustGenerate(t, NewGenerator(dict, seeded(seed)), day) {
			e := dict.Entry(q.Character)
			var want string
			switch q.Type {
			case TypeReading:
				want = e.Reading
			case TypeDefinition:
				want = e.Definition
			case TypePhrase:
				p, ok := e.FirstPhrase(2)
				if !ok {
					t.Fatalf("phrase question for %s without a phrase", q.Character)
				}
				want = p.Word
				if !strings.Contains(q.Prompt, p.LocalGloss) {
					t.Errorf("prompt %q lacks gloss %q", q.Prompt, p.LocalGloss)
				}
			case TypeCombine:
				p, ok := e.FirstPhrase(2)
				if !ok {
					t.Fatalf("combine question for %s without a phrase", q.Character)
				}
				want = strings.Replace(p.Word, q.Character, "", 1)
				if strings.Contains(q.Prompt, p.Word) {
					t.Errorf("prompt %q gives away %q", q.Prompt, p.Word)
				}
			}
			if q.Answer != want {
				t.Errorf("%s %s answer = %q, want %q", q.Character, q.Type, q.Answer, want)
			}
		}
	}
}

func TestGenerate_DowngradesWithoutPhrases(t *testing.T) {
	seenTypes := map[QuestionType]bool{}
	for seed := uint64(0); seed < 200; seed++ {
		q := mustGenerate(t, NewGenerator(testDictionary(), seeded(seed)), []string{"掌", "瓣"})[1]
		if q.Type != TypeReading && q.Type != TypeDefinition {
			t.Errorf("seed %d: 瓣 type = %s, want reading or definition", seed, q.Type)
		}
		seenTypes[q.Type] = true
	}
	if !seenTypes[TypeReading] || !seenTypes[TypeDefinition] {
		t.Errorf("types seen = %v, want both reading and definition", seenTypes)
	}
}

func TestGenerate_CombineWithoutHeadwordFallsBackToReading(t *testing.T) {
	dict := dictionary.New(map[string]dictionary.Entry{
		"掌": {Reading: "ㄓㄤˇ", Definition: "手心", Phrases: phrases("拍手", "鼓掌", "clap")},
		"瓣": {Reading: "ㄅㄢˋ", Definition: "花瓣"},
	})
	g := NewGenerator(dict, seeded(2))
	q := g.buildQuestion("掌", TypeCombine)
	if q.Type != TypeReading || q.Answer != "ㄓㄤˇ" {
		t.Errorf("buildQuestion = %s %q, want reading ㄓㄤˇ", q.Type, q.Answer)
	}
}

func TestGenerate_MissingEntryUsesSentinel(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		for _, q := range mustGenerate(t, NewGenerator(testDictionary(), seeded(seed)), []string{"極", "障"}) {
			if q.Answer != dictionary.Sentinel {
				t.Errorf("answer = %q, want sentinel", q.Answer)
			}
			checkWellFormed(t, q)
			if len(q.Options) != OptionCount {
				t.Errorf("len(Options) = %d, want %d", len(q.Options), OptionCount)
			}
		}
	}
}

func TestGenerate_DegeneratePoolTerminates(t *testing.T) {
	dict := dictionary.New(map[string]dictionary.Entry{
		"掌": {Reading: "ㄓㄤˇ", Definition: "手心"},
		"瓣": {Reading: "ㄓㄤˇ", Definition: "手心"},
	})
	for _, q := range mustGenerate(t, NewGenerator(dict, seeded(5)), []string{"掌", "瓣"}) {
		if want := []string{q.Answer}; !slices.Equal(q.Options, want) {
			t.Errorf("Options = %v, want %v", q.Options, want)
		}
	}

	empty := NewGenerator(dictionary.New(nil), seeded(5))
	for _, q := range mustGenerate(t, empty, []string{"掌", "瓣"}) {
		if want := []string{dictionary.Sentinel}; !slices.Equal(q.Options, want) {
			t.Errorf("Options = %v, want %v", q.Options, want)
		}
	}
}

func TestBuildOptions_SmallPool(t *testing.T) {
	g := NewGenerator(dictionary.New(nil), seeded(9))
	pool := []string{"a", "a", "a", "b", "answer"}
	want := []string{"a", "answer", "b"}
	for i := 0; i < 50; i++ {
		got := slices.Sorted(slices.Values(g.buildOptions("answer", pool)))
		if !slices.Equal(got, want) {
			t.Fatalf("buildOptions = %v, want %v in any order", got, want)
		}
	}
}

func TestGenerate_DeterministicWithSeed(t *testing.T) {
	a := mustGenerate(t, NewGenerator(testDictionary(), seeded(42)), day)
	b := mustGenerate(t, NewGenerator(testDictionary(), seeded(42)), day)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different quizzes:\n%v\n%v", a, b)
	}
}

func TestGenerateQuiz(t *testing.T) {
	g := NewGenerator(testDictionary(), seeded(1))
	q, err := g.GenerateQuiz("2025-05-10", day)
	if err != nil {
		t.Fatalf("GenerateQuiz error = %v", err)
	}
	if q.ID == "" {
		t.Error("quiz ID is empty")
	}
	if q.Date != "2025-05-10" {
		t.Errorf("Date = %q, want 2025-05-10", q.Date)
	}
	if len(q.Questions) != DefaultSize {
		t.Errorf("len(Questions) = %d, want %d", len(q.Questions), DefaultSize)
	}

	if _, err := g.GenerateQuiz("2025-05-10", day[:1]); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("GenerateQuiz(one char) error = %v, want ErrInsufficientData", err)
	}
}

func TestSplitPhrase(t *testing.T) {
	tests := []struct {
		word, ch      string
		blanked, rest string
	}{
		{"鼓掌", "掌", "＿掌", "鼓"},
		{"禮物", "禮", "禮＿", "物"},
		{"年年", "年", "年＿", "年"},
		{"書包", "掌", "", ""},
	}
	for _, tt := range tests {
		blanked, rest := splitPhrase(tt.word, tt.ch)
		if blanked != tt.blanked || rest != tt.rest {
			t.Errorf("splitPhrase(%q, %q) = %q, %q, want %q, %q", tt.word, tt.ch, blanked, rest, tt.blanked, tt.rest)
		}
	}
}

func TestBuildPools(t *testing.T) {
	dict := dictionary.New(map[string]dictionary.Entry{
		"掌": {Reading: "ㄓㄤˇ", Definition: dictionary.Sentinel, Phrases: phrases("鼓掌", "拍手", "")},
		"瓣": {Reading: "", Definition: "花瓣"},
		"梢": {Reading: "ㄓㄤˇ", Phrases: map[int][]dictionary.Phrase{
			2: {{Word: "眉梢"}, {Word: "樹梢"}},
			3: {{Word: "不相干"}},
		}},
	})
	p := BuildPools(dict)

	tests := []struct {
		name      string
		got, want []string
	}{
		{"Readings", p.Readings, []string{"ㄓㄤˇ", "ㄓㄤˇ"}},
		{"Definitions", p.Definitions, []string{"花瓣"}},
		{"PhraseWords", p.PhraseWords, []string{"鼓掌", "眉梢", "樹梢"}},
		{"PhraseChars", p.PhraseChars, []string{"鼓", "掌", "眉", "梢", "樹", "梢"}},
		{"For(reading)", p.For(TypeReading), p.Readings},
		{"For(combine)", p.For(TypeCombine), p.PhraseChars},
	}
	for _, tt := range tests {
		if !slices.Equal(tt.got, tt.want) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	empty := BuildPools(dictionary.New(nil))
	if len(empty.Readings) != 0 || len(empty.PhraseChars) != 0 {
		t.Errorf("empty pools = %+v, want none", empty)
	}
}

func TestQuestionTypeString(t *testing.T) {
	for _, qt := range QuestionTypes {
		parsed, err := ParseQuestionType(qt.String())
		if err != nil || parsed != qt {
			t.Errorf("ParseQuestionType(%q) = %v, %v, want %v", qt.String(), parsed, err, qt)
		}
	}
	if _, err := ParseQuestionType("essay"); err == nil {
		t.Error("ParseQuestionType(essay) succeeded, want error")
	}
	if got := QuestionType(9).String(); got != "QuestionType(9)" {
		t.Errorf("QuestionType(9).String() = %q", got)
	}
}

func TestResolveChoice(t *testing.T) {
	q := Question{Options: []string{"甲", "乙", "丙", "丁"}}
	tests := []struct {
		input, want string
	}{
		{" 2 ", "乙"},
		{"5", "5"},
		{"丙", "丙"},
	}
	for _, tt := range tests {
		if got := q.ResolveChoice(tt.input); got != tt.want {
			t.Errorf("ResolveChoice(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
