package gloss

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hanzi/internal/dictionary"
	"github.com/abhisek/hanzi/internal/llm"
)

func testDictionary() *dictionary.Dictionary {
	return dictionary.New(map[string]dictionary.Entry{
		"鼓": {Reading: "ㄍㄨˇ", Radical: "鼓", Definition: "打擊樂器", Phrases: map[int][]dictionary.Phrase{
			2: {
				{Word: "鼓掌", LocalGloss: "拍手"},
				{Word: "鼓勵", LocalGloss: "激勵", ForeignGloss: "encourage"},
			},
		}},
		"掌": {Reading: "ㄓㄤˇ", Radical: "手", Definition: "手心", Phrases: map[int][]dictionary.Phrase{
			2: {{Word: "手掌", LocalGloss: "手心"}},
			4: {{Word: "易如反掌", LocalGloss: "非常容易"}},
		}},
		"瓣": {Reading: "ㄅㄢˋ", Radical: "瓜", Definition: "花瓣"},
	})
}

var testGlosses = map[string]string{
	"鼓掌":   "applaud",
	"手掌":   "palm",
	"易如反掌": "easy as pie",
}

// answerFromPrompt glosses every known word mentioned in the request.
func answerFromPrompt(req llm.Request) llm.MockResponse {
	var out glossOutput
	for word, en := range testGlosses {
		if strings.Contains(req.Messages[0].Content, word) {
			out.Glosses = append(out.Glosses, struct {
				Word string `json:"word"`
				En   string `json:"en"`
			}{word, en})
		}
	}
	raw, _ := json.Marshal(out)
	return llm.MockResponse{Content: raw}
}

func TestPending(t *testing.T) {
	chars, pending := Pending(testDictionary())
	assert.Equal(t, []string{"掌", "鼓"}, chars)
	require.Len(t, pending["鼓"], 1)
	assert.Equal(t, "鼓掌", pending["鼓"][0].Word)
	assert.Len(t, pending["掌"], 2)
	assert.NotContains(t, pending, "瓣")
}

func TestEnrich_FillsMissingGlosses(t *testing.T) {
	mock := llm.NewMockFunc(answerFromPrompt)
	e := New(mock, DefaultConfig(), nil)

	dict := testDictionary()
	out, report, err := e.Enrich(context.Background(), dict)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Characters)
	assert.Equal(t, 3, report.Requested)
	assert.Equal(t, 3, report.Filled)
	assert.Empty(t, report.Failed)
	assert.Equal(t, 2, mock.CallCount())

	gu, _ := out.Lookup("鼓")
	assert.Equal(t, "applaud", gu.Phrases[2][0].ForeignGloss)
	assert.Equal(t, "encourage", gu.Phrases[2][1].ForeignGloss)

	zhang, _ := out.Lookup("掌")
	assert.Equal(t, "palm", zhang.Phrases[2][0].ForeignGloss)
	assert.Equal(t, "easy as pie", zhang.Phrases[4][0].ForeignGloss)

	// The input dictionary is untouched.
	orig, _ := dict.Lookup("鼓")
	assert.Empty(t, orig.Phrases[2][0].ForeignGloss)
}

func TestEnrich_RequestShape(t *testing.T) {
	mock := llm.NewMockFunc(answerFromPrompt)
	cfg := DefaultConfig()
	cfg.Limit = 1
	e := New(mock, cfg, nil)

	_, report, err := e.Enrich(context.Background(), testDictionary())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Characters)
	require.Equal(t, 1, mock.CallCount())

	req := mock.Calls[0]
	assert.Equal(t, GlossSchema, req.Schema)
	assert.Equal(t, cfg.MaxTokens, req.MaxTokens)
	assert.Contains(t, req.Messages[0].Content, "Character: 掌")
	assert.Contains(t, req.Messages[0].Content, "- 手掌: 手心")
	assert.NotContains(t, req.Messages[0].Content, "鼓勵")
}

func TestEnrich_SkipsFailedCharacters(t *testing.T) {
	mock := llm.NewMockFunc(func(req llm.Request) llm.MockResponse {
		if strings.Contains(req.Messages[0].Content, "Character: 掌") {
			return llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}}
		}
		return answerFromPrompt(req)
	})
	e := New(mock, DefaultConfig(), nil)

	out, report, err := e.Enrich(context.Background(), testDictionary())
	require.NoError(t, err)
	assert.Equal(t, []string{"掌"}, report.Failed)
	assert.Equal(t, 1, report.Filled)

	zhang, _ := out.Lookup("掌")
	assert.Empty(t, zhang.Phrases[2][0].ForeignGloss)
	gu, _ := out.Lookup("鼓")
	assert.Equal(t, "applaud", gu.Phrases[2][0].ForeignGloss)
}

func TestEnrich_IgnoresUnrequestedAndMalformed(t *testing.T) {
	mock := llm.NewMockFunc(func(req llm.Request) llm.MockResponse {
		if strings.Contains(req.Messages[0].Content, "Character: 鼓") {
			return llm.MockResponse{Content: json.RawMessage(`{"glosses":[{"word":"鼓勵","en":"cheer"},{"word":"鼓掌","en":"  "}]}`)}
		}
		return llm.MockResponse{Content: json.RawMessage(`not json`)}
	})
	e := New(mock, DefaultConfig(), nil)

	out, report, err := e.Enrich(context.Background(), testDictionary())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Filled)
	assert.Equal(t, []string{"掌"}, report.Failed)

	gu, _ := out.Lookup("鼓")
	assert.Equal(t, "encourage", gu.Phrases[2][1].ForeignGloss)
	assert.Empty(t, gu.Phrases[2][0].ForeignGloss)
}

func TestEnrich_Cancelled(t *testing.T) {
	mock := llm.NewMockFunc(answerFromPrompt)
	e := New(mock, DefaultConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, _, err := e.Enrich(ctx, testDictionary())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, out)
}

func TestEnrich_BoundedConcurrency(t *testing.T) {
	entries := make(map[string]dictionary.Entry)
	for _, ch := range []string{"一", "二", "三", "四", "五", "六", "七", "八"} {
		entries[ch] = dictionary.Entry{Phrases: map[int][]dictionary.Phrase{
			2: {{Word: ch + "月"}},
		}}
	}

	var inFlight, peak atomic.Int32
	mock := llm.NewMockFunc(func(req llm.Request) llm.MockResponse {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return llm.MockResponse{Content: json.RawMessage(`{"glosses":[]}`)}
	})

	cfg := DefaultConfig()
	cfg.Concurrency = 2
	_, report, err := New(mock, cfg, nil).Enrich(context.Background(), dictionary.New(entries))
	require.NoError(t, err)
	assert.Equal(t, 8, report.Characters)
	assert.Equal(t, 8, mock.CallCount())
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestEnrich_WithRateLimitedProvider(t *testing.T) {
	mock := llm.NewMockFunc(answerFromPrompt)
	p := llm.WithRateLimit(mock, llm.NewLimiter(1000, 1))

	_, report, err := New(p, DefaultConfig(), nil).Enrich(context.Background(), testDictionary())
	require.NoError(t, err)
	assert.Equal(t, 3, report.Filled)
}
