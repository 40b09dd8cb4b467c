package ui

import tea "github.com/charmbracelet/bubbletea"

// AlertModal is a blocking message box. Enter, space or Esc dismisses it.
type AlertModal struct {
	Title string
	Text  string
}

// Ensure AlertModal implements View.
var _ View = (*AlertModal)(nil)

// NewAlertModal creates an alert. An empty title defaults to "Alert".
func NewAlertModal(title, text string) *AlertModal {
	if title == "" {
		title = "Alert"
	}
	return &AlertModal{Title: title, Text: text}
}

// Init implements View.
func (m *AlertModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *AlertModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "enter", " ":
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	}
	return m, nil
}

// View implements View.
func (m *AlertModal) View() string {
	content := Styles.TitleWarning.Render(m.Title) + "\n\n"
	content += Styles.Normal.Render(m.Text)
	content += "\n\n" + Styles.Hint.Render("Enter: OK")
	return Styles.BoxDanger.Render(content)
}
