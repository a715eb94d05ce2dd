package session

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hanzi/internal/quiz"
	"github.com/abhisek/hanzi/internal/router"
	"github.com/abhisek/hanzi/internal/screen"
	"github.com/abhisek/hanzi/internal/screens/screentest"
	"github.com/abhisek/hanzi/internal/screens/summary"
	sess "github.com/abhisek/hanzi/internal/session"
	"github.com/abhisek/hanzi/internal/store"
)

func testQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		ID:   "quiz-1",
		Date: "2025-05-10",
		Questions: []quiz.Question{
			{
				Character: "掌",
				Type:      quiz.TypeReading,
				Prompt:    "「掌」的注音是？",
				Options:   []string{"ㄓㄤˇ", "ㄅㄢˋ", "ㄍㄨˇ", "ㄇㄠ"},
				Answer:    "ㄓㄤˇ",
			},
			{
				Character: "瓣",
				Type:      quiz.TypeDefinition,
				Prompt:    "「瓣」的意思是？",
				Options:   []string{"動物", "花瓣", "走", "手心"},
				Answer:    "花瓣",
			},
		},
	}
}

func testSessionScreen(t *testing.T, mode sess.Mode) (*SessionScreen, *screen.Services) {
	t.Helper()
	svc := screentest.Services(t)
	return New(svc, testQuiz(), mode), svc
}

// press sends a key and returns the screen, asserting it stays the same.
func press(t *testing.T, s *SessionScreen, msg tea.Msg) tea.Cmd {
	t.Helper()
	scr, cmd := s.Update(msg)
	require.Same(t, s, scr)
	return cmd
}

// complete delivers the save result and returns the screen it navigates to.
func complete(t *testing.T, s *SessionScreen, cmd tea.Cmd) screen.Screen {
	t.Helper()
	require.NotNil(t, cmd)
	saved, ok := screentest.Find[quizSavedMsg](screentest.Collect(cmd))
	require.True(t, ok, "expected quizSavedMsg")

	next := press(t, s, saved)
	require.NotNil(t, next)
	replace, ok := next().(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg")
	return replace.Screen
}

func TestSessionScreen_Title(t *testing.T) {
	s, _ := testSessionScreen(t, sess.ModeChoice)
	assert.Equal(t, "Quiz 2025-05-10", s.Title())
	assert.True(t, s.CapturesEscape())
}

func TestSessionScreen_View_Question(t *testing.T) {
	s, _ := testSessionScreen(t, sess.ModeChoice)
	view := s.View(80, 24)
	assert.Contains(t, view, "「掌」的注音是？")
	assert.Contains(t, view, "ㄅㄢˋ")
	assert.Contains(t, view, "Q 1/2")
}

func TestSessionScreen_ChoiceFlow(t *testing.T) {
	s, svc := testSessionScreen(t, sess.ModeChoice)
	ctx := context.Background()

	press(t, s, screentest.Key('1'))
	require.Equal(t, sess.PhaseFeedback, s.state.Phase)
	assert.True(t, s.state.LastCorrect)
	assert.Contains(t, s.View(80, 30), "Correct!")

	// Any key continues.
	press(t, s, screentest.Key('x'))
	require.Equal(t, sess.PhaseAnswering, s.state.Phase)
	assert.Equal(t, 1, s.state.Current)
	assert.Equal(t, -1, s.choice.Chosen)

	press(t, s, screentest.Key('1'))
	require.Equal(t, sess.PhaseFeedback, s.state.Phase)
	assert.False(t, s.state.LastCorrect)
	assert.Contains(t, s.View(80, 30), "Correct answer: 花瓣")

	cmd := press(t, s, screentest.Special(tea.KeyEnter))
	assert.True(t, s.saving)
	assert.Contains(t, s.View(80, 24), "Saving")

	next := complete(t, s, cmd)
	_, ok := next.(*summary.SummaryScreen)
	assert.True(t, ok)

	score, ok, err := svc.Tracker.LastScore(ctx, "2025-05-10")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, score)

	done, err := svc.Tracker.IsDone(ctx, "2025-05-10")
	require.NoError(t, err)
	assert.False(t, done)

	attempts, err := svc.Attempts.Recent(ctx, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, "quiz-1", attempts[0].QuizID)
	assert.Equal(t, "choice", attempts[0].Mode)
	assert.Equal(t, 2, attempts[0].Total)
}

func TestSessionScreen_ArrowSelection(t *testing.T) {
	s, _ := testSessionScreen(t, sess.ModeChoice)
	press(t, s, screentest.Special(tea.KeyDown))
	press(t, s, screentest.Special(tea.KeyDown))
	assert.Equal(t, sess.PhaseAnswering, s.state.Phase)

	press(t, s, screentest.Special(tea.KeyEnter))
	require.Equal(t, sess.PhaseFeedback, s.state.Phase)
	assert.Equal(t, "ㄍㄨˇ", s.state.Answers[0])
	assert.False(t, s.state.LastCorrect)
}

func TestSessionScreen_TypingFlow(t *testing.T) {
	s, svc := testSessionScreen(t, sess.ModeTyping)

	// Enter on an empty input is ignored.
	press(t, s, screentest.Special(tea.KeyEnter))
	assert.Equal(t, sess.PhaseAnswering, s.state.Phase)

	for _, r := range "ㄓㄤˇ" {
		press(t, s, screentest.Key(r))
	}
	press(t, s, screentest.Special(tea.KeyEnter))
	require.Equal(t, sess.PhaseFeedback, s.state.Phase)
	assert.True(t, s.state.LastCorrect)

	press(t, s, screentest.Key('n'))
	require.Equal(t, 1, s.state.Current)
	assert.Empty(t, s.input.Value())

	for _, r := range "花瓣" {
		press(t, s, screentest.Key(r))
	}
	press(t, s, screentest.Special(tea.KeyEnter))
	require.True(t, s.state.LastCorrect)

	cmd := press(t, s, screentest.Key('n'))
	complete(t, s, cmd)

	score, _, err := svc.Tracker.LastScore(context.Background(), "2025-05-10")
	require.NoError(t, err)
	assert.Equal(t, 2, score)
}

func TestSessionScreen_Skip(t *testing.T) {
	s, _ := testSessionScreen(t, sess.ModeChoice)

	press(t, s, screentest.Special(tea.KeyTab))
	assert.Equal(t, 1, s.state.Current)
	assert.Equal(t, 0, s.state.Answered())

	cmd := press(t, s, screentest.Special(tea.KeyTab))
	next := complete(t, s, cmd)
	assert.Contains(t, next.View(80, 40), "Score: 0/2")
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s, _ := testSessionScreen(t, sess.ModeChoice)

	press(t, s, screentest.Special(tea.KeyEscape))
	require.True(t, s.showingQuitConfirm)
	assert.Contains(t, s.View(80, 24), "End this quiz?")

	// Answer keys are ignored while the dialog is open.
	press(t, s, screentest.Key('1'))
	assert.Equal(t, sess.PhaseAnswering, s.state.Phase)

	press(t, s, screentest.Key('n'))
	assert.False(t, s.showingQuitConfirm)
}

func TestSessionScreen_QuitConfirm_Yes(t *testing.T) {
	s, svc := testSessionScreen(t, sess.ModeChoice)
	press(t, s, screentest.Key('1'))
	press(t, s, screentest.Key('x'))

	press(t, s, screentest.Special(tea.KeyEscape))
	cmd := press(t, s, screentest.Key('y'))
	complete(t, s, cmd)

	score, ok, err := svc.Tracker.LastScore(context.Background(), "2025-05-10")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, score)
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s, _ := testSessionScreen(t, sess.ModeChoice)
	hints := s.KeyHints()
	require.NotEmpty(t, hints)
	assert.Equal(t, "1-4", hints[0].Key)

	press(t, s, screentest.Key('1'))
	assert.Equal(t, "any key", s.KeyHints()[0].Key)

	typing, _ := testSessionScreen(t, sess.ModeTyping)
	assert.Equal(t, "Enter", typing.KeyHints()[0].Key)
}

func TestSessionScreen_EmptyQuiz(t *testing.T) {
	svc := screentest.Services(t)
	s := New(svc, &quiz.Quiz{ID: "empty", Date: "2025-05-10"}, sess.ModeChoice)

	next := complete(t, s, s.Init())
	assert.True(t, strings.Contains(next.View(80, 40), "Score: 0/0"))
}

func TestSessionScreen_WithoutRecorder(t *testing.T) {
	svc := screentest.Services(t)
	svc.Recorder = nil
	s := New(svc, testQuiz(), sess.ModeChoice)

	press(t, s, screentest.Special(tea.KeyTab))
	cmd := press(t, s, screentest.Special(tea.KeyTab))
	complete(t, s, cmd)

	_, ok, err := svc.Tracker.LastScore(context.Background(), "2025-05-10")
	require.NoError(t, err)
	assert.False(t, ok)
}
