package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	focusEmail    = "email"
	focusPassword = "password"
	focusLogin    = "login"
)

// requiredHint mirrors the browser's message for an empty required field.
const requiredHint = "Please fill out this field."

// OrgLoginView is the simulated organization login. Both fields are
// required; any non-empty values log in.
type OrgLoginView struct {
	email    textinput.Model
	password textinput.Model
	focus    *FocusManager
	// Missing is the ID of the required field that blocked the last submit.
	Missing string
}

// Ensure OrgLoginView implements View.
var _ View = (*OrgLoginView)(nil)

// NewOrgLoginView focuses the email field.
func NewOrgLoginView() *OrgLoginView {
	email := textinput.New()
	email.Placeholder = "admin@shaktichain.io"
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "••••••••"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.Width = 40

	v := &OrgLoginView{
		email:    email,
		password: password,
		focus:    NewFocusManager(focusEmail, focusPassword, focusLogin),
	}
	v.focus.OnChange = func(from, to string) {
		v.email.Blur()
		v.password.Blur()
		switch to {
		case focusEmail:
			v.email.Focus()
		case focusPassword:
			v.password.Focus()
		}
	}
	return v
}

// Init implements View.
func (v *OrgLoginView) Init() tea.Cmd {
	return textinput.Blink
}

// CapturingText implements textCapturer.
func (v *OrgLoginView) CapturingText() bool {
	return true
}

// Update implements View.
func (v *OrgLoginView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			v.focus.Next()
			return v, nil
		case "shift+tab", "up":
			v.focus.Prev()
			return v, nil
		case "enter":
			if v.focus.Is(focusEmail) {
				v.focus.Next()
				return v, nil
			}
			return v, v.submit()
		case " ":
			if v.focus.Is(focusLogin) {
				return v, v.submit()
			}
		}
	}

	var cmd tea.Cmd
	switch v.focus.Current {
	case focusEmail:
		v.email, cmd = v.email.Update(msg)
	case focusPassword:
		v.password, cmd = v.password.Update(msg)
	}
	if _, ok := msg.(tea.KeyMsg); ok && v.Missing == v.focus.Current {
		v.Missing = ""
	}
	return v, cmd
}

// submit applies required-field validation only. Credentials are not checked.
func (v *OrgLoginView) submit() tea.Cmd {
	email, password := v.email.Value(), v.password.Value()
	switch {
	case email == "":
		v.Missing = focusEmail
	case password == "":
		v.Missing = focusPassword
	default:
		v.Missing = ""
		return func() tea.Msg { return LoginMsg{Email: email, Password: password} }
	}
	v.focus.SetFocus(v.Missing)
	return nil
}

// View implements View.
func (v *OrgLoginView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Organization Login") + "\n\n")
	v.writeField(&b, "Email", focusEmail, v.email.View())
	v.writeField(&b, "Password", focusPassword, v.password.View())

	button := "[ Login ]"
	if v.focus.Is(focusLogin) {
		b.WriteString(Styles.Selected.Render(button))
	} else {
		b.WriteString(Styles.Muted.Render(button))
	}
	return b.String()
}

func (v *OrgLoginView) writeField(b *strings.Builder, label, id, input string) {
	b.WriteString(Styles.Label.Render(label) + "\n")
	b.WriteString(input + "\n")
	if v.Missing == id {
		b.WriteString(Styles.Invalid.Render(requiredHint) + "\n")
	}
	b.WriteString("\n")
}
