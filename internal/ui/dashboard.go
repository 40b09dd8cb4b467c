package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shaktichain/internal/feedback"
	"shaktichain/internal/ui/textutil"
)

// emptyDashboardMessage is shown when there are no entries.
const emptyDashboardMessage = "No feedback reports submitted yet."

// DashboardView lists feedback reports for organizations, most recent first.
// It is read-only.
type DashboardView struct {
	Entries []feedback.Entry
	pane    scrollPane
}

// Ensure DashboardView implements View.
var _ View = (*DashboardView)(nil)

// NewDashboardView shows entries in the order given; callers pass them
// most recent first.
func NewDashboardView(entries []feedback.Entry) *DashboardView {
	d := &DashboardView{Entries: entries}
	d.pane = newScrollPane(d.renderEntries)
	return d
}

// Init implements View.
func (d *DashboardView) Init() tea.Cmd {
	return nil
}

// ScrollToTop implements scrollable.
func (d *DashboardView) ScrollToTop() {
	d.pane.scrollToTop()
}

// Update implements View.
func (d *DashboardView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Reserve the title and its blank line.
		d.pane.resize(msg.Width, msg.Height-2)
		return d, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "g", "home":
			d.pane.scrollToTop()
			return d, nil
		case "G", "end":
			d.pane.viewport.GotoBottom()
			return d, nil
		}
	}
	// Arrow keys, j/k, pgup/pgdown and the mouse wheel scroll the list.
	return d, d.pane.update(msg)
}

// View implements View.
func (d *DashboardView) View() string {
	return Styles.Title.Render("Feedback Reports") + "\n\n" + d.pane.view()
}

func (d *DashboardView) renderEntries(width int) string {
	if len(d.Entries) == 0 {
		return Styles.Empty.Render(emptyDashboardMessage)
	}

	badgeWidth := 0
	for _, c := range feedback.Categories() {
		badgeWidth = max(badgeWidth, textutil.VisualWidth(c.String()))
	}
	textWidth := width - badgeWidth - 3
	if textWidth < 20 {
		textWidth = 20
	}

	items := make([]string, 0, len(d.Entries))
	for _, e := range d.Entries {
		badge := Styles.Badge.Render(textutil.PadRightVisual(e.Category.String(), badgeWidth))
		text := Styles.Normal.Width(textWidth).Render(e.Text)
		items = append(items, lipgloss.JoinHorizontal(lipgloss.Top, badge, " │ ", text))
	}
	return strings.Join(items, "\n\n")
}
