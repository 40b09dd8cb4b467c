package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"shaktichain/internal/app"
	"shaktichain/internal/feedback"
)

// NavigateMsg requests a view change (Back buttons, About link).
type NavigateMsg struct {
	To app.View
}

// SelectRoleMsg is sent when the visitor activates a role card on the landing view.
type SelectRoleMsg struct {
	Role app.Role
}

// SubmitFeedbackMsg is sent when the individual form is submitted.
// Text is sent as typed; validation happens in the controller.
type SubmitFeedbackMsg struct {
	Text     string
	Category feedback.Category
}

// FeedbackSubmittedMsg tells the individual form its submission was accepted.
type FeedbackSubmittedMsg struct {
	Entry feedback.Entry
}

// FeedbackRejectedMsg tells the individual form its submission was refused,
// so it accepts another attempt.
type FeedbackRejectedMsg struct{}

// LoginMsg is sent when the organization login form passes required-field checks.
type LoginMsg struct {
	Email    string
	Password string
}

// AlertMsg shows a blocking alert modal.
type AlertMsg struct {
	Title string
	Text  string
}

// DismissModalMsg is sent when the user closes the top modal.
type DismissModalMsg struct{}

// navigateTo returns a command that emits NavigateMsg.
func navigateTo(v app.View) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{To: v} }
}
