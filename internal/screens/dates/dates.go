// Package dates lists the scheduled days with their completion state.
package dates

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanzi/internal/router"
	"github.com/abhisek/hanzi/internal/screen"
	"github.com/abhisek/hanzi/internal/screens/cards"
	"github.com/abhisek/hanzi/internal/tracker"
	"github.com/abhisek/hanzi/internal/ui/layout"
	"github.com/abhisek/hanzi/internal/ui/theme"
)

type statesLoadedMsg struct {
	States []tracker.State
	Err    error
}

// DatesScreen is a scrollable list of scheduled dates.
type DatesScreen struct {
	svc      *screen.Services
	dates    []string
	states   map[string]tracker.State
	selected int
	errMsg   string
}

var _ screen.Screen = (*DatesScreen)(nil)
var _ screen.KeyHintProvider = (*DatesScreen)(nil)

// New creates a DatesScreen with the current study date selected.
func New(svc *screen.Services) *DatesScreen {
	d := &DatesScreen{
		svc:    svc,
		dates:  svc.Data.Schedule.Dates(),
		states: make(map[string]tracker.State),
	}
	if cur, ok := svc.Data.Schedule.Current(svc.Today()); ok {
		for i, date := range d.dates {
			if date == cur {
				d.selected = i
			}
		}
	}
	return d
}

// Init loads the completion states. It runs again when the screen is
// shown after the cards of a day.
func (d *DatesScreen) Init() tea.Cmd {
	tr, dates := d.svc.Tracker, d.dates
	return func() tea.Msg {
		states, err := tr.States(context.Background(), dates)
		return statesLoadedMsg{States: states, Err: err}
	}
}

func (d *DatesScreen) Title() string {
	return "Pick a Date"
}

func (d *DatesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DatesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statesLoadedMsg:
		if msg.Err != nil {
			d.errMsg = msg.Err.Error()
			return d, nil
		}
		d.errMsg = ""
		for _, st := range msg.States {
			d.states[st.Date] = st
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if d.selected > 0 {
				d.selected--
			}
		case "down", "j":
			if d.selected < len(d.dates)-1 {
				d.selected++
			}
		case "pgup":
			d.selected = max(d.selected-10, 0)
		case "pgdown":
			d.selected = max(min(d.selected+10, len(d.dates)-1), 0)
		case "enter":
			if d.selected < len(d.dates) {
				next := cards.New(d.svc, d.dates[d.selected])
				return d, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
			}
		}
	}
	return d, nil
}

func (d *DatesScreen) View(width, height int) string {
	if len(d.dates) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("The schedule has no dates."))
	}

	var b strings.Builder
	if d.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Foreground(theme.Error).Render("Error: " + d.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	rows := max(height-3, 1)
	first := min(max(d.selected-rows/2, 0), max(len(d.dates)-rows, 0))
	for i := first; i < len(d.dates) && i < first+rows; i++ {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, d.renderRow(i)))
		b.WriteString("\n")
	}
	return b.String()
}

func (d *DatesScreen) renderRow(i int) string {
	date := d.dates[i]
	st := d.states[date]
	n := len(d.svc.Data.Schedule.Day(date))

	mark := theme.Pending.Render("○")
	if st.Completed {
		mark = theme.Done.Render("●")
	}
	score := "last —"
	if st.LastScore != nil {
		score = fmt.Sprintf("last %d", *st.LastScore)
	}

	prefix := "  "
	style := theme.Unselected
	if i == d.selected {
		prefix = "▸ "
		style = theme.Selected
	}
	return mark + " " + style.Render(fmt.Sprintf("%s%s  %2d chars  %s", prefix, date, n, score))
}
