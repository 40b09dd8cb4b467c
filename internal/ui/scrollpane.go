package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Default pane size until the first tea.WindowSizeMsg (and in tests).
const (
	defaultPaneWidth  = 80
	defaultPaneHeight = 20
)

// scrollPane is a viewport whose content is re-rendered on resize.
type scrollPane struct {
	viewport viewport.Model
	render   func(width int) string
}

func newScrollPane(render func(width int) string) scrollPane {
	p := scrollPane{
		viewport: viewport.New(defaultPaneWidth, defaultPaneHeight),
		render:   render,
	}
	p.viewport.SetContent(render(defaultPaneWidth))
	return p
}

// resize fits the pane to width x height, keeping at least one row.
func (p *scrollPane) resize(width, height int) {
	p.viewport.Width = width
	p.viewport.Height = max(height, 1)
	p.viewport.SetContent(p.render(width))
}

func (p *scrollPane) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

func (p *scrollPane) scrollToTop() {
	p.viewport.GotoTop()
}

func (p *scrollPane) offset() int {
	return p.viewport.YOffset
}

func (p *scrollPane) view() string {
	return p.viewport.View()
}
