// Package session is the quiz screen: one question at a time, answered by
// picking an option or by typing, with feedback after every answer.
package session

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/hanzi/internal/quiz"
	"github.com/abhisek/hanzi/internal/router"
	"github.com/abhisek/hanzi/internal/screen"
	"github.com/abhisek/hanzi/internal/screens/summary"
	sess "github.com/abhisek/hanzi/internal/session"
	"github.com/abhisek/hanzi/internal/ui/components"
	"github.com/abhisek/hanzi/internal/ui/layout"
)

// SessionScreen implements screen.Screen for a running quiz.
type SessionScreen struct {
	svc   *screen.Services
	state *sess.State

	choice components.MultiChoice
	input  components.TextInput

	showingQuitConfirm bool
	saving             bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.EscapeCapturer = (*SessionScreen)(nil)

// New creates a quiz screen over q in the given answer mode.
func New(svc *screen.Services, q *quiz.Quiz, mode sess.Mode) *SessionScreen {
	s := &SessionScreen{
		svc:   svc,
		state: sess.NewState(q, mode),
	}
	s.prepareQuestion()
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	if s.state.Phase == sess.PhaseFinished {
		return s.finish()
	}
	if s.state.Mode == sess.ModeTyping {
		return s.input.Init()
	}
	return nil
}

func (s *SessionScreen) Title() string {
	return "Quiz " + s.state.Quiz.Date
}

// CapturesEscape keeps Esc on this screen so quitting asks first.
func (s *SessionScreen) CapturesEscape() bool {
	return true
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.saving:
		return nil
	case s.showingQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	case s.state.Phase == sess.PhaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case s.state.Mode == sess.ModeChoice:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "↑↓ Enter", Description: "Select"},
			{Key: "Tab", Description: "Skip"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "Skip"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *SessionScreen) View(width, height int) string {
	switch {
	case s.saving:
		return renderSaving(width, height)
	case s.showingQuitConfirm:
		return renderQuitConfirm(width, height, s.state)
	case s.state.Phase == sess.PhaseFeedback:
		return s.renderFeedback(width, height)
	default:
		return s.renderQuestionView(width, height)
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizSavedMsg:
		return s.handleSaved(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward cursor blinks and the like to the text input.
	if s.acceptsTyping() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) acceptsTyping() bool {
	return s.state.Mode == sess.ModeTyping &&
		s.state.Phase == sess.PhaseAnswering &&
		!s.showingQuitConfirm && !s.saving
}

// prepareQuestion resets the inputs for the current question.
func (s *SessionScreen) prepareQuestion() {
	q := s.state.Question()
	if q == nil {
		return
	}
	s.choice = components.NewMultiChoice(q.Options)
	s.input = components.NewTextInput("Type your answer...", 40)
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.saving {
		return s, nil
	}
	key := msg.String()

	// Quit confirmation dialog.
	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, s.finish()
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	switch s.state.Phase {
	case sess.PhaseFeedback:
		// Any key moves on.
		if !s.state.Next() {
			return s, s.finish()
		}
		s.prepareQuestion()
		if s.state.Mode == sess.ModeTyping {
			return s, s.input.Init()
		}
		return s, nil

	case sess.PhaseAnswering:
		switch key {
		case "esc":
			s.showingQuitConfirm = true
			return s, nil
		case "tab":
			s.state.Skip()
			if s.state.Phase == sess.PhaseFinished {
				return s, s.finish()
			}
			s.prepareQuestion()
			return s, nil
		}

		if s.state.Mode == sess.ModeChoice {
			var picked bool
			s.choice, picked = s.choice.Update(msg)
			if picked {
				s.submitAnswer(s.choice.Value())
			}
			return s, nil
		}

		if key == "enter" {
			if strings.TrimSpace(s.input.Value()) == "" {
				return s, nil
			}
			s.submitAnswer(s.input.Value())
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// submitAnswer scores value against the current question and switches to
// feedback.
func (s *SessionScreen) submitAnswer(value string) {
	q := s.state.Question()
	if q == nil {
		return
	}
	correct := s.state.Answer(value)
	s.choice.Reveal(q.Answer)
	s.input.Submit(correct)
}

// finish scores the quiz and records it in the background.
func (s *SessionScreen) finish() tea.Cmd {
	s.saving = true
	state := s.state
	svc := s.svc
	return func() tea.Msg {
		if svc.Recorder == nil {
			return quizSavedMsg{Summary: sess.BuildSummary(state)}
		}
		summary, err := svc.Recorder.Record(context.Background(), state)
		return quizSavedMsg{Summary: summary, Err: err}
	}
}

func (s *SessionScreen) handleSaved(msg quizSavedMsg) (screen.Screen, tea.Cmd) {
	log := s.svc.Log()
	if msg.Err != nil {
		log.Error("failed to record quiz", zap.String("date", s.state.Quiz.Date), zap.Error(msg.Err))
	} else {
		log.Info("quiz recorded",
			zap.String("quiz_id", msg.Summary.QuizID),
			zap.String("date", msg.Summary.Date),
			zap.Int("score", msg.Summary.Result.Score),
			zap.Int("total", msg.Summary.Result.Total),
		)
	}
	result := summary.New(msg.Summary, msg.Err)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: result} }
}
