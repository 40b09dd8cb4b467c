package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View represents one screen with its own model, update, and view.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// scrollable views reset their offset when navigated to.
type scrollable interface {
	ScrollToTop()
}

// textCapturer views report whether printable keys belong to a text field,
// in which case single-letter global keys are not applied.
type textCapturer interface {
	CapturingText() bool
}
