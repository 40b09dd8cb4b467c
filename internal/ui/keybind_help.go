package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"shaktichain/internal/app"
)

// RenderKeybindHelp produces the key hint bar shown in the footer, filtered
// by the active view and whether a text field has focus.
func RenderKeybindHelp(reg *KeybindRegistry, mode app.View, typing bool, width int) string {
	if reg == nil {
		return ""
	}
	bindings := reg.Hints(mode, typing)
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Width = width
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	helpModel.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))

	return helpModel.ShortHelpView(bindings)
}
