package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shaktichain/internal/app"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("space", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q", app.ViewLanding, false) == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup(" ", app.ViewLanding, false) == nil {
		t.Error("expected space to be bound via SPC normalization")
	}
	if reg.Lookup("j", app.ViewLanding, false) != nil {
		t.Error("expected nil command for j")
	}
	if reg.Lookup("unknown", app.ViewLanding, false) != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_ModeFilter(t *testing.T) {
	reg := NewDefaultKeybinds()

	assert.Nil(t, reg.Lookup("b", app.ViewLanding, false), "back is not bound on landing")
	assert.Nil(t, reg.Lookup("esc", app.ViewLanding, false))
	for _, v := range []app.View{app.ViewIndividual, app.ViewOrgLogin, app.ViewOrgDashboard, app.ViewAbout} {
		cmd := reg.Lookup("esc", v, false)
		require.NotNil(t, cmd, "esc on %s", v)
		assert.Equal(t, NavigateMsg{To: app.ViewLanding}, cmd())
	}
}

func TestKeybindRegistry_TypingFilter(t *testing.T) {
	reg := NewDefaultKeybinds()

	assert.Nil(t, reg.Lookup("q", app.ViewIndividual, true), "q is text while typing")
	assert.Nil(t, reg.Lookup("a", app.ViewOrgLogin, true))
	assert.Nil(t, reg.Lookup("b", app.ViewOrgLogin, true))
	assert.NotNil(t, reg.Lookup("ctrl+c", app.ViewIndividual, true))
	assert.NotNil(t, reg.Lookup("esc", app.ViewOrgLogin, true))

	cmd := reg.Lookup("f1", app.ViewIndividual, true)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{To: app.ViewAbout}, cmd())
}

func TestKeybindRegistry_HintsMergeSameDescription(t *testing.T) {
	reg := NewDefaultKeybinds()

	var got []string
	for _, b := range reg.Hints(app.ViewAbout, false) {
		got = append(got, b.Help().Key+" "+b.Help().Desc)
	}
	assert.Equal(t, []string{"esc/b back", "f1/a about", "q/ctrl+c quit"}, got)

	got = nil
	for _, b := range reg.Hints(app.ViewLanding, false) {
		got = append(got, b.Help().Key)
	}
	assert.Equal(t, []string{"f1/a", "q/ctrl+c"}, got, "no back hint on landing")

	got = nil
	for _, b := range reg.Hints(app.ViewIndividual, true) {
		got = append(got, b.Help().Key)
	}
	assert.Equal(t, []string{"esc", "f1", "ctrl+c"}, got, "only non-text keys while typing")
}

func TestKeybindRegistry_RebindKeepsOrder(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("x", tea.Quit, "first")
	reg.BindWithDesc("y", tea.Quit, "second")
	reg.BindWithDesc("x", tea.Quit, "third")

	hints := reg.Hints(app.ViewLanding, false)
	require.Len(t, hints, 2)
	assert.Equal(t, "third", hints[0].Help().Desc)
	assert.Equal(t, "second", hints[1].Help().Desc)
}

func TestRenderKeybindHelp(t *testing.T) {
	out := RenderKeybindHelp(NewDefaultKeybinds(), app.ViewOrgDashboard, false, 0)
	assert.Contains(t, out, "back")
	assert.Contains(t, out, "quit")
	assert.Empty(t, RenderKeybindHelp(nil, app.ViewLanding, false, 0))
	assert.Empty(t, RenderKeybindHelp(NewKeybindRegistry(), app.ViewLanding, false, 0))
}

func TestNormalizeSeq(t *testing.T) {
	assert.Equal(t, "SPC", normalizeSeq(" "))
	assert.Equal(t, "SPC", normalizeSeq("space"))
	assert.Equal(t, "ctrl+c", normalizeSeq("ctrl+c"))
	assert.Equal(t, "SPC q", normalizeSeq("space q"))
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "f1":
		return tea.KeyMsg{Type: tea.KeyF1}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
