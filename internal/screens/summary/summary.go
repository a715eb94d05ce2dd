package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanzi/internal/quiz"
	"github.com/abhisek/hanzi/internal/router"
	"github.com/abhisek/hanzi/internal/screen"
	"github.com/abhisek/hanzi/internal/session"
	"github.com/abhisek/hanzi/internal/ui/components"
	"github.com/abhisek/hanzi/internal/ui/layout"
	"github.com/abhisek/hanzi/internal/ui/theme"
)

// SummaryScreen displays the result of a finished quiz with a per-question
// review.
type SummaryScreen struct {
	summary *session.Summary
	saveErr error
	offset  int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. saveErr is the error from persisting the
// score, if any; it is shown as a warning.
func New(summary *session.Summary, saveErr error) *SummaryScreen {
	return &SummaryScreen{summary: summary, saveErr: saveErr}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Result"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "Back to cards"},
		{Key: "H", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "h":
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		if s.summary != nil && s.offset < len(s.summary.Result.PerQuestion)-1 {
			s.offset++
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	res := sum.Result
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	heading := "Quiz complete!"
	if res.Total > 0 && res.Score == res.Total {
		heading = "Perfect score!"
	}
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render(heading))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center.Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s  ·  %s mode  ·  %d:%02d", sum.Date, sum.Mode, mins, secs)))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.Text).Render(
		fmt.Sprintf("Score: %d/%d        %.0f%%", res.Score, res.Total, res.Percent())))
	b.WriteString("\n")
	bar := components.NewProgressBar("", res.Score, res.Total, false, min(width-8, 40))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	if s.saveErr != nil {
		b.WriteString(center.Foreground(theme.Error).Render("Score not saved: " + s.saveErr.Error()))
		b.WriteString("\n\n")
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Review")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	used := lipgloss.Height(b.String())
	rows := max(height-used, 3)

	reviews := res.PerQuestion
	for i := s.offset; i < len(reviews) && i < s.offset+rows/2; i++ {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderReview(i+1, reviews[i], width-8)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderReview(n int, r quiz.Review, width int) string {
	prompt := firstLine(r.Prompt)
	var mark, answer string
	switch {
	case r.IsCorrect:
		mark = theme.Correct.Render("✓")
		answer = theme.Correct.Render(r.Correct)
	case r.Submitted == "":
		mark = theme.Incorrect.Render("✗")
		answer = theme.Pending.Render("(no answer)") + "  →  " + theme.Correct.Render(r.Correct)
	default:
		mark = theme.Incorrect.Render("✗")
		answer = theme.Incorrect.Render(r.Submitted) + "  →  " + theme.Correct.Render(r.Correct)
	}
	line := fmt.Sprintf("%s %2d. %s", mark, n, prompt)
	return lipgloss.NewStyle().Width(width).Render(line + "\n      " + answer)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
