// Package notice shows a short message, such as a day that cannot be
// quizzed, until the learner dismisses it.
package notice

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanzi/internal/router"
	"github.com/abhisek/hanzi/internal/screen"
	"github.com/abhisek/hanzi/internal/ui/components"
	"github.com/abhisek/hanzi/internal/ui/layout"
	"github.com/abhisek/hanzi/internal/ui/theme"
)

// NoticeScreen is a dismissable message.
type NoticeScreen struct {
	title   string
	message string
}

var _ screen.Screen = (*NoticeScreen)(nil)
var _ screen.KeyHintProvider = (*NoticeScreen)(nil)

// New creates a NoticeScreen.
func New(title, message string) *NoticeScreen {
	return &NoticeScreen{title: title, message: message}
}

func (n *NoticeScreen) Init() tea.Cmd {
	return nil
}

func (n *NoticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "space", "q":
			return n, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return n, nil
}

func (n *NoticeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render(n.title),
		"",
		theme.Body.Width(cw-6).Align(lipgloss.Center).Render(n.message),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, components.Card(body, cw))
}

func (n *NoticeScreen) Title() string {
	return n.title
}

func (n *NoticeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "OK"},
	}
}
