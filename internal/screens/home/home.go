// Package home is the main menu.
package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hanzi/internal/router"
	"github.com/abhisek/hanzi/internal/screen"
	"github.com/abhisek/hanzi/internal/screens/calendar"
	"github.com/abhisek/hanzi/internal/screens/cards"
	"github.com/abhisek/hanzi/internal/screens/dates"
	"github.com/abhisek/hanzi/internal/screens/history"
	"github.com/abhisek/hanzi/internal/ui/components"
	"github.com/abhisek/hanzi/internal/ui/layout"
)

// Menu labels.
const (
	LabelToday    = "TODAY"
	LabelPick     = "PICK A DATE"
	LabelCalendar = "CALENDAR"
	LabelHistory  = "HISTORY"
	LabelExit     = "EXIT"
)

type stats struct {
	Done      int
	Total     int
	Today     string
	TodayDone bool
	Err       error
}

type statsLoadedMsg stats

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	svc   *screen.Services
	menu  components.Menu
	stats stats
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc *screen.Services) *HomeScreen {
	h := &HomeScreen{svc: svc}
	sched := svc.Data.Schedule

	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			s := build()
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}

	items := []components.MenuItem{
		{Label: LabelToday, Disabled: sched.Len() == 0, Action: push(func() screen.Screen {
			date, _ := sched.Current(svc.Today())
			return cards.New(svc, date)
		})},
		{Label: LabelPick, Disabled: sched.Len() == 0, Action: push(func() screen.Screen {
			return dates.New(svc)
		})},
		{Label: LabelCalendar, Disabled: sched.Len() == 0, Action: push(func() screen.Screen {
			return calendar.New(svc)
		})},
		{Label: LabelHistory, Disabled: svc.Attempts == nil, Action: push(func() screen.Screen {
			return history.New(svc)
		})},
		{Label: LabelExit, Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

// Init loads the progress stats. It runs again whenever the home screen
// is shown.
func (h *HomeScreen) Init() tea.Cmd {
	svc := h.svc
	return func() tea.Msg {
		sched := svc.Data.Schedule
		st := stats{Total: sched.Len()}
		ctx := context.Background()

		st.Done, st.Err = svc.Tracker.CompletedCount(ctx, sched.Dates())
		if st.Err != nil {
			return statsLoadedMsg(st)
		}
		if today, ok := sched.Current(svc.Today()); ok {
			st.Today = today
			st.TodayDone, st.Err = svc.Tracker.IsDone(ctx, today)
		}
		return statsLoadedMsg(st)
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		h.stats = stats(msg)
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height by adding
	// back header (3) + footer (3) + frame gaps.
	compact := layout.IsCompactHeight(height+8) || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		variant := SealPending
		if h.stats.TodayDone {
			variant = SealDone
		}
		sections = append(sections, renderSealBox(variant, cw))
	}
	sections = append(sections, renderStatsBar(h.stats, cw, compact))
	sections = append(sections, components.Buttons(h.menu.Labels(), h.menu.Selected, cw, compact))

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
