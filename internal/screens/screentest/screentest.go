// Package screentest builds the shared services screen tests run against.
package screentest

import (
	"math/rand/v2"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hanzi/internal/dataset"
	"github.com/abhisek/hanzi/internal/dictionary"
	"github.com/abhisek/hanzi/internal/quiz"
	"github.com/abhisek/hanzi/internal/schedule"
	"github.com/abhisek/hanzi/internal/screen"
	"github.com/abhisek/hanzi/internal/session"
	"github.com/abhisek/hanzi/internal/store"
	"github.com/abhisek/hanzi/internal/tracker"
)

// Today is the fixed clock of the test services.
var Today = time.Date(2025, 5, 11, 9, 0, 0, 0, time.UTC)

// Dictionary returns a small dictionary covering the test schedule.
func Dictionary() *dictionary.Dictionary {
	return dictionary.New(map[string]dictionary.Entry{
		"掌": {Reading: "ㄓㄤˇ", Radical: "手", Definition: "手心", Phrases: map[int][]dictionary.Phrase{
			2: {{Word: "鼓掌", LocalGloss: "拍手", ForeignGloss: "applaud"}, {Word: "手掌", LocalGloss: "手心"}},
			4: {{Word: "易如反掌", LocalGloss: "非常容易"}},
		}},
		"瓣": {Reading: "ㄅㄢˋ", Radical: "瓜", Definition: "花瓣", Phrases: map[int][]dictionary.Phrase{
			2: {{Word: "花瓣", LocalGloss: "花冠的一片"}},
		}},
		"鼓": {Reading: "ㄍㄨˇ", Radical: "鼓", Definition: "打擊樂器", Phrases: map[int][]dictionary.Phrase{
			2: {{Word: "鼓勵", LocalGloss: "激勵"}},
		}},
		"貓": {Reading: "ㄇㄠ", Radical: "豸", Definition: "動物"},
		"行": {Reading: "ㄒㄧㄥˊ", Radical: "行", Definition: "走", Phrases: map[int][]dictionary.Phrase{
			3: {{Word: "行不通", LocalGloss: "做不到"}},
		}},
	})
}

// Schedule returns two scheduled days: "2025-05-10" with 掌 and 瓣, and
// "2025-05-11" with 鼓, 貓 and 行, plus a one-character day "2025-06-01".
func Schedule(t testing.TB) *schedule.Schedule {
	t.Helper()
	s, err := schedule.New(map[string][]string{
		"2025-05-10": {"掌", "瓣"},
		"2025-05-11": {"鼓", "貓", "行"},
		"2025-06-01": {"掌"},
	})
	require.NoError(t, err)
	return s
}

// Services returns services over an in-memory store. The store is closed
// when the test ends.
func Services(t testing.TB) *screen.Services {
	t.Helper()
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	dict := Dictionary()
	tr := tracker.New(st.KV())
	attempts := st.AttemptRepo()
	return &screen.Services{
		Data:      &dataset.Dataset{Dictionary: dict, Schedule: Schedule(t)},
		Tracker:   tr,
		Recorder:  session.NewRecorder(tr, attempts),
		Attempts:  attempts,
		Generator: quiz.NewGenerator(dict, quiz.WithRand(rand.New(rand.NewPCG(1, 2)))),
		Now:       func() time.Time { return Today },
	}
}

// Key returns the key press for a printable rune.
func Key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// Special returns the key press for a non-printable key such as
// tea.KeyEnter.
func Special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// Collect runs cmd and returns the messages it produces, expanding batches.
// Commands that do not return within a short wait, such as cursor blinks,
// are dropped.
func Collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(100 * time.Millisecond):
		return nil
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, Collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// Find returns the first message of type T among msgs.
func Find[T any](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
