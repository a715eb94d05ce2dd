// Package calendar shows the schedule month by month, coloured by
// completion.
package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanzi/internal/router"
	"github.com/abhisek/hanzi/internal/schedule"
	"github.com/abhisek/hanzi/internal/screen"
	"github.com/abhisek/hanzi/internal/screens/cards"
	"github.com/abhisek/hanzi/internal/tracker"
	"github.com/abhisek/hanzi/internal/ui/components"
	"github.com/abhisek/hanzi/internal/ui/layout"
	"github.com/abhisek/hanzi/internal/ui/theme"
)

const cellWidth = 4

var weekdays = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

type statesLoadedMsg struct {
	States []tracker.State
	Err    error
}

// CalendarScreen renders one month at a time. Scheduled days are shown
// done or pending; the cursor moves between scheduled days.
type CalendarScreen struct {
	svc      *screen.Services
	months   []schedule.Month
	month    int
	selected int
	done     map[string]bool
	errMsg   string
}

var _ screen.Screen = (*CalendarScreen)(nil)
var _ screen.KeyHintProvider = (*CalendarScreen)(nil)

// New creates a CalendarScreen opened on the month of the current study
// date.
func New(svc *screen.Services) *CalendarScreen {
	c := &CalendarScreen{
		svc:    svc,
		months: svc.Data.Schedule.Months(),
		done:   make(map[string]bool),
	}
	if cur, ok := svc.Data.Schedule.Current(svc.Today()); ok {
		for i, m := range c.months {
			for j, date := range m.Dates {
				if date == cur {
					c.month, c.selected = i, j
				}
			}
		}
	}
	return c
}

func (c *CalendarScreen) Init() tea.Cmd {
	tr, dates := c.svc.Tracker, c.svc.Data.Schedule.Dates()
	return func() tea.Msg {
		states, err := tr.States(context.Background(), dates)
		return statesLoadedMsg{States: states, Err: err}
	}
}

func (c *CalendarScreen) Title() string {
	return "Calendar"
}

func (c *CalendarScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Month"},
		{Key: "↑↓", Description: "Day"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *CalendarScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statesLoadedMsg:
		if msg.Err != nil {
			c.errMsg = msg.Err.Error()
			return c, nil
		}
		for _, st := range msg.States {
			c.done[st.Date] = st.Completed
		}

	case tea.KeyMsg:
		if len(c.months) == 0 {
			return c, nil
		}
		switch msg.String() {
		case "left", "h":
			if c.month > 0 {
				c.month--
				c.selected = 0
			}
		case "right", "l":
			if c.month < len(c.months)-1 {
				c.month++
				c.selected = 0
			}
		case "up", "k":
			if c.selected > 0 {
				c.selected--
			}
		case "down", "j":
			if c.selected < len(c.months[c.month].Dates)-1 {
				c.selected++
			}
		case "enter":
			next := cards.New(c.svc, c.SelectedDate())
			return c, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	}
	return c, nil
}

// SelectedDate returns the date under the cursor, or "" for an empty
// schedule.
func (c *CalendarScreen) SelectedDate() string {
	if len(c.months) == 0 {
		return ""
	}
	return c.months[c.month].Dates[c.selected]
}

func (c *CalendarScreen) View(width, height int) string {
	if len(c.months) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("The schedule has no dates."))
	}

	m := c.months[c.month]
	first, err := time.Parse("2006-01", m.Key)
	if err != nil {
		return theme.Incorrect.Render(err.Error())
	}

	doneCount := 0
	for _, date := range m.Dates {
		if c.done[date] {
			doneCount++
		}
	}

	nav := first.Format("January 2006")
	if c.month > 0 {
		nav = "◂ " + nav
	} else {
		nav = "  " + nav
	}
	if c.month < len(c.months)-1 {
		nav += " ▸"
	}

	gridWidth := cellWidth * len(weekdays)
	sections := []string{
		theme.Title.Render(nav),
		"",
		renderGrid(first, m.Dates, c.done, c.SelectedDate()),
		"",
		components.NewProgressBar("done", doneCount, len(m.Dates), true, gridWidth+12).View(),
		"",
		theme.Done.Render("■ done") + "   " + theme.Pending.Render("■ pending"),
	}
	if sel := c.SelectedDate(); sel != "" {
		chars := c.svc.Data.Schedule.Day(sel)
		sections = append(sections, "", theme.Body.Render(sel+"  "+strings.Join(chars, " ")))
	}
	if c.errMsg != "" {
		sections = append(sections, "", theme.Incorrect.Render("Error: "+c.errMsg))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// renderGrid draws a Monday-first month grid.
func renderGrid(first time.Time, dates []string, done map[string]bool, selected string) string {
	scheduled := make(map[string]bool, len(dates))
	for _, d := range dates {
		scheduled[d] = true
	}

	cell := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Right)

	var b strings.Builder
	for _, wd := range weekdays {
		b.WriteString(cell.Foreground(theme.TextDim).Render(wd))
	}
	b.WriteString("\n")

	offset := (int(first.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat(" ", offset*cellWidth))

	days := time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	for day := 1; day <= days; day++ {
		date := fmt.Sprintf("%s-%02d", first.Format("2006-01"), day)
		label := fmt.Sprintf("%d", day)

		style := cell.Foreground(theme.Border)
		switch {
		case done[date]:
			style = cell.Foreground(theme.Success).Bold(true)
		case scheduled[date]:
			style = cell.Foreground(theme.Accent)
		}
		if date == selected {
			label = "[" + label + "]"
		}
		b.WriteString(style.Render(label))

		if (offset+day)%7 == 0 && day < days {
			b.WriteString("\n")
		}
	}
	return b.String()
}
