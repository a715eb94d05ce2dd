package dates

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hanzi/internal/router"
	"github.com/abhisek/hanzi/internal/screens/cards"
	"github.com/abhisek/hanzi/internal/screens/screentest"
)

func TestDatesScreen_SelectsCurrentDate(t *testing.T) {
	d := New(screentest.Services(t))
	assert.Equal(t, "Pick a Date", d.Title())
	assert.Equal(t, []string{"2025-05-10", "2025-05-11", "2025-06-01"}, d.dates)
	assert.Equal(t, 1, d.selected)
}

func TestDatesScreen_States(t *testing.T) {
	svc := screentest.Services(t)
	ctx := context.Background()
	require.NoError(t, svc.Tracker.MarkDone(ctx, "2025-05-10"))
	require.NoError(t, svc.Tracker.SaveScore(ctx, "2025-05-10", 2))

	d := New(svc)
	msgs := screentest.Collect(d.Init())
	require.Len(t, msgs, 1)
	d.Update(msgs[0])

	assert.True(t, d.states["2025-05-10"].Completed)
	assert.False(t, d.states["2025-05-11"].Completed)

	view := d.View(80, 20)
	assert.Contains(t, view, "●")
	assert.Contains(t, view, "last 2")
	assert.Contains(t, view, "last —")
	assert.Contains(t, view, "▸ 2025-05-11")
}

func TestDatesScreen_Navigation(t *testing.T) {
	d := New(screentest.Services(t))

	d.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	d.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, d.selected)

	d.Update(tea.KeyPressMsg{Code: tea.KeyPgDown})
	assert.Equal(t, 2, d.selected)

	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	c, ok := push.Screen.(*cards.CardsScreen)
	require.True(t, ok)
	assert.Equal(t, "Cards 2025-06-01", c.Title())
}
