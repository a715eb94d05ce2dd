// Package cards shows the flashcards of one scheduled day.
package cards

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/hanzi/internal/dictionary"
	"github.com/abhisek/hanzi/internal/quiz"
	"github.com/abhisek/hanzi/internal/router"
	"github.com/abhisek/hanzi/internal/screen"
	"github.com/abhisek/hanzi/internal/screens/notice"
	sessionscreen "github.com/abhisek/hanzi/internal/screens/session"
	sess "github.com/abhisek/hanzi/internal/session"
	"github.com/abhisek/hanzi/internal/ui/components"
	"github.com/abhisek/hanzi/internal/ui/layout"
	"github.com/abhisek/hanzi/internal/ui/theme"
)

// phraseLabels names the phrase groups by length.
var phraseLabels = map[int]string{
	2: "二字詞",
	3: "三字詞",
	4: "四字詞",
}

// doneStateMsg carries the completion flag of the day.
type doneStateMsg struct {
	Done bool
	Err  error
}

// CardsScreen pages through the characters of a day.
type CardsScreen struct {
	svc   *screen.Services
	date  string
	chars []string
	index int
	done  bool
	err   error
}

var _ screen.Screen = (*CardsScreen)(nil)
var _ screen.KeyHintProvider = (*CardsScreen)(nil)

// New creates a CardsScreen for date.
func New(svc *screen.Services, date string) *CardsScreen {
	return &CardsScreen{
		svc:   svc,
		date:  date,
		chars: svc.Data.Schedule.Day(date),
	}
}

// Init loads the completion flag. It runs again when the screen is shown
// after a quiz.
func (c *CardsScreen) Init() tea.Cmd {
	return c.loadDone()
}

func (c *CardsScreen) loadDone() tea.Cmd {
	tr, date := c.svc.Tracker, c.date
	return func() tea.Msg {
		done, err := tr.IsDone(context.Background(), date)
		return doneStateMsg{Done: done, Err: err}
	}
}

func (c *CardsScreen) toggleDone() tea.Cmd {
	tr, date, done := c.svc.Tracker, c.date, c.done
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if done {
			err = tr.Unmark(ctx, date)
		} else {
			err = tr.MarkDone(ctx, date)
		}
		if err != nil {
			return doneStateMsg{Done: done, Err: err}
		}
		return doneStateMsg{Done: !done}
	}
}

func (c *CardsScreen) Title() string {
	return "Cards " + c.date
}

func (c *CardsScreen) KeyHints() []layout.KeyHint {
	doneLabel := "Mark done"
	if c.done {
		doneLabel = "Unmark"
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Card"},
		{Key: "D", Description: doneLabel},
		{Key: "Q", Description: "Quiz"},
		{Key: "T", Description: "Typing quiz"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *CardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case doneStateMsg:
		c.err = msg.Err
		if msg.Err != nil {
			c.svc.Log().Error("completion flag", zap.String("date", c.date), zap.Error(msg.Err))
			return c, nil
		}
		changed := c.done != msg.Done
		c.done = msg.Done
		if changed {
			return c, func() tea.Msg { return screen.ProgressChangedMsg{} }
		}
		return c, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if c.index > 0 {
				c.index--
			}
		case "right", "l", "space":
			if c.index < len(c.chars)-1 {
				c.index++
			}
		case "home":
			c.index = 0
		case "end":
			c.index = max(len(c.chars)-1, 0)
		case "d":
			return c, c.toggleDone()
		case "q":
			return c, c.startQuiz(sess.ModeChoice)
		case "t":
			return c, c.startQuiz(sess.ModeTyping)
		}
	}
	return c, nil
}

// startQuiz generates a quiz for the day, or a notice when the day cannot
// be quizzed.
func (c *CardsScreen) startQuiz(mode sess.Mode) tea.Cmd {
	q, err := c.svc.Generator.GenerateQuiz(c.date, c.chars)
	if errors.Is(err, quiz.ErrInsufficientData) {
		n := notice.New("Not enough characters",
			fmt.Sprintf("%s has %d character(s). A quiz needs at least 2.", c.date, len(c.chars)))
		return func() tea.Msg { return router.PushScreenMsg{Screen: n} }
	}
	if err != nil {
		c.svc.Log().Error("quiz generation failed", zap.String("date", c.date), zap.Error(err))
		n := notice.New("Quiz unavailable", err.Error())
		return func() tea.Msg { return router.PushScreenMsg{Screen: n} }
	}
	c.svc.Log().Debug("quiz generated",
		zap.String("quiz_id", q.ID),
		zap.String("date", c.date),
		zap.Int("questions", len(q.Questions)),
	)
	next := sessionscreen.New(c.svc, q, mode)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (c *CardsScreen) View(width, height int) string {
	if len(c.chars) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No characters scheduled for "+c.date))
	}

	cw := components.ContentWidth(width)
	ch := c.chars[c.index]
	entry := c.svc.Data.Dictionary.Entry(ch)

	status := theme.Pending.Render("○ not done")
	if c.done {
		status = theme.Done.Render("● done")
	}
	counter := theme.Hint.Render(fmt.Sprintf("%d / %d", c.index+1, len(c.chars)))
	top := lipgloss.NewStyle().Width(cw).Render(
		counter + strings.Repeat(" ", max(cw-lipgloss.Width(counter)-lipgloss.Width(status), 1)) + status)

	var sections []string
	sections = append(sections, top, "", theme.Glyph.Render(ch), "")
	sections = append(sections, renderField("注音", entry.Reading), renderField("部首", entry.Radical))
	sections = append(sections, renderField("釋義", entry.Definition))

	if phrases := renderPhrases(entry, cw-6); phrases != "" {
		sections = append(sections, "", phrases)
	}
	if c.err != nil {
		sections = append(sections, "", theme.Incorrect.Render(c.err.Error()))
	}

	card := components.Card(lipgloss.JoinVertical(lipgloss.Center, sections...), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func renderField(label, value string) string {
	return theme.Label.Render(label) + "  " + theme.Body.Render(value)
}

// renderPhrases lists the phrases of each length with their glosses.
func renderPhrases(e dictionary.Entry, width int) string {
	var lines []string
	for _, n := range dictionary.PhraseLengths {
		list := e.PhrasesOf(n)
		if len(list) == 0 {
			continue
		}
		lines = append(lines, theme.Label.Render(phraseLabels[n]))
		for _, p := range list {
			line := p.Word
			if p.LocalGloss != "" {
				line += "：" + p.LocalGloss
			}
			if p.ForeignGloss != "" {
				line += " " + theme.Hint.Render("("+p.ForeignGloss+")")
			}
			lines = append(lines, lipgloss.NewStyle().Width(width).Render("  "+line))
		}
	}
	return strings.Join(lines, "\n")
}
