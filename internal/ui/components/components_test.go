package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMultiChoice_NumberKey(t *testing.T) {
	mc := NewMultiChoice([]string{"ㄓㄤˇ", "ㄅㄢˋ", "ㄍㄨˇ"})

	mc, picked := mc.Update(keyPress('2'))
	assert.True(t, picked)
	assert.Equal(t, "ㄅㄢˋ", mc.Value())

	// Further keys are ignored once picked.
	mc, picked = mc.Update(keyPress('1'))
	assert.False(t, picked)
	assert.Equal(t, "ㄅㄢˋ", mc.Value())
}

func TestMultiChoice_OutOfRangeNumber(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b"})
	mc, picked := mc.Update(keyPress('3'))
	assert.False(t, picked)
	assert.Equal(t, "", mc.Value())
}

func TestMultiChoice_ArrowsAndEnter(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b", "c"})
	mc, _ = mc.Update(specialKey(tea.KeyDown))
	mc, _ = mc.Update(specialKey(tea.KeyDown))
	mc, _ = mc.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 2, mc.Selected)
	mc, _ = mc.Update(specialKey(tea.KeyUp))

	mc, picked := mc.Update(specialKey(tea.KeyEnter))
	assert.True(t, picked)
	assert.Equal(t, "b", mc.Value())
}

func TestMultiChoice_RevealAndView(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b"})
	mc, _ = mc.Update(keyPress('1'))
	mc.Reveal("b")
	assert.Equal(t, 1, mc.Answer)

	view := mc.View()
	assert.Contains(t, view, "1)  a")
	assert.Contains(t, view, "2)  b")
}

func TestMenu_SkipsDisabled(t *testing.T) {
	called := ""
	m := NewMenu([]MenuItem{
		{Label: "A", Disabled: true},
		{Label: "B", Action: func() tea.Cmd { called = "B"; return nil }},
		{Label: "C", Disabled: true},
		{Label: "D", Action: func() tea.Cmd { called = "D"; return nil }},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 3, m.Selected)
	m, _ = m.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, "D", called)

	m, _ = m.Update(specialKey(tea.KeyUp))
	assert.Equal(t, 1, m.Selected)
	assert.Equal(t, []string{"A", "B", "C", "D"}, m.Labels())
	assert.Equal(t, 4, strings.Count(m.View(), "\n"))
}

func TestProgressBar(t *testing.T) {
	p := NewProgressBar("Days", 1, 4, true, 40)
	assert.InDelta(t, 0.25, p.Percent, 1e-9)
	assert.Contains(t, p.View(), "25%")

	empty := NewProgressBar("", 0, 0, false, 10)
	assert.Equal(t, 0.0, empty.Percent)
}

func TestContentWidth(t *testing.T) {
	assert.Equal(t, 20, ContentWidth(10))
	assert.Equal(t, 54, ContentWidth(60))
	assert.Equal(t, 60, ContentWidth(200))
}

func TestTextInput_Submit(t *testing.T) {
	ti := NewTextInput("答案", 8)
	ti.Model.SetValue("掌")
	ti.Submit(true)
	ti, _ = ti.Update(keyPress('x'))
	assert.Equal(t, "掌", ti.Value())
	assert.Contains(t, ti.View(), "✓")
}
