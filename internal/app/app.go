// Package app is the root Bubble Tea model of the TUI.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/hanzi/internal/router"
	"github.com/abhisek/hanzi/internal/screen"
	"github.com/abhisek/hanzi/internal/screens/home"
	"github.com/abhisek/hanzi/internal/screens/welcome"
	"github.com/abhisek/hanzi/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Services *screen.Services

	// Splash shows the welcome screen before the home screen.
	Splash bool
}

// progressMsg carries the day counts shown in the header.
type progressMsg struct {
	Done  int
	Total int
	Err   error
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	svc    *screen.Services
	router *router.Router
	width  int
	height int
	done   int
	total  int
}

// newAppModel creates a new AppModel starting at the home screen, or at
// the splash when requested.
func newAppModel(opts Options) AppModel {
	svc := opts.Services
	var first screen.Screen = home.New(svc)
	if opts.Splash {
		first = welcome.New(func() screen.Screen { return home.New(svc) })
	}
	return AppModel{
		svc:    svc,
		router: router.New(first),
		total:  svc.Data.Schedule.Len(),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.loadProgress())
}

func (m AppModel) loadProgress() tea.Cmd {
	tr, dates := m.svc.Tracker, m.svc.Data.Schedule.Dates()
	return func() tea.Msg {
		done, err := tr.CompletedCount(context.Background(), dates)
		return progressMsg{Done: done, Total: len(dates), Err: err}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case progressMsg:
		if msg.Err != nil {
			m.svc.Log().Warn("failed to load progress", zap.Error(msg.Err))
			return m, nil
		}
		m.done, m.total = msg.Done, msg.Total
		return m, nil

	case screen.ProgressChangedMsg:
		return m, m.loadProgress()

	case router.PopScreenMsg, router.PopToRootMsg:
		return m, tea.Batch(m.router.Update(msg), m.loadProgress())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if c, ok := m.router.Active().(screen.EscapeCapturer); ok && c.CapturesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if content := m.render(); content != "" {
		v.SetContent(content)
	}
	return v
}

// render draws the full frame, or "" before the first window size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.done, m.total, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// footerHints prefers the active screen's own hints.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
