package ui

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"shaktichain/internal/app"
	"shaktichain/internal/feedback"
	"shaktichain/internal/ui/textutil"
)

// AppModel is the root model. It owns the controller, the active view and
// the modal overlays, and turns view messages into controller actions.
type AppModel struct {
	Controller *app.Controller
	Current    View
	Overlays   OverlayStack
	Keys       *KeybindRegistry
	Logger     zerolog.Logger

	ctx    context.Context
	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model on the controller's current view.
func NewAppModel(ctx context.Context, c *app.Controller, logger zerolog.Logger) *AppModel {
	m := &AppModel{
		Controller: c,
		Keys:       NewDefaultKeybinds(),
		Logger:     logger,
		ctx:        ctx,
	}
	m.Current = newScreenView(c.State().Screen())
	return m
}

// NewDefaultKeybinds registers the global keys.
func NewDefaultKeybinds() *KeybindRegistry {
	notLanding := []app.View{app.ViewIndividual, app.ViewOrgLogin, app.ViewOrgDashboard, app.ViewAbout}

	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("esc", navigateTo(app.ViewLanding), "back", notLanding)
	reg.BindWithDescForMode("b", navigateTo(app.ViewLanding), "back", notLanding)
	reg.BindWithDesc("f1", navigateTo(app.ViewAbout), "about")
	reg.BindWithDesc("a", navigateTo(app.ViewAbout), "about")
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")
	reg.AllowWhileTyping("esc", "f1", "ctrl+c")
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Current.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		var cmd tea.Cmd
		a.Current, cmd = a.Current.Update(a.bodySize())
		return a, cmd
	case NavigateMsg:
		return a, a.dispatch(app.Navigate{To: msg.To})
	case SelectRoleMsg:
		return a, a.dispatch(app.SelectRole{Role: msg.Role})
	case LoginMsg:
		return a, a.dispatch(app.Login{Email: msg.Email, Password: msg.Password})
	case SubmitFeedbackMsg:
		return a, a.submitFeedback(msg)
	case AlertMsg:
		a.Overlays.Push(Overlay{View: NewAlertModal(msg.Title, msg.Text)})
		return a, nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		// A modal swallows every other key until dismissed.
		if cmd, ok := a.Overlays.UpdateTop(msg); ok {
			return a, cmd
		}
		if cmd := a.Keys.Lookup(msg.String(), a.mode(), a.typing()); cmd != nil {
			return a, cmd
		}
	case tea.MouseMsg:
		if a.Overlays.Len() > 0 {
			return a, nil
		}
		msg.Y -= a.bodyTop()
	}

	var cmd tea.Cmd
	a.Current, cmd = a.Current.Update(msg)
	return a, cmd
}

// dispatch runs an action and applies its outcome: a new view when the
// active view changed, a scroll reset when it did not.
func (a *appModelAdapter) dispatch(action app.Action) tea.Cmd {
	before := a.Controller.State().View
	out, err := a.Controller.Dispatch(a.ctx, action)
	if err != nil {
		a.Logger.Error().Err(err).Str("action", action.Name()).Msg("dispatch failed")
		return alert("Error", err.Error())
	}

	state := a.Controller.State()
	if state.View != before {
		a.Current = newScreenView(state.Screen())
		if a.width > 0 {
			a.Current, _ = a.Current.Update(a.bodySize())
		}
		return a.Current.Init()
	}
	if s, ok := a.Current.(scrollable); ok && out.ScrollTop {
		s.ScrollToTop()
	}
	return nil
}

// submitFeedback validates through the controller. Empty text raises the
// blocking alert and leaves everything unchanged.
func (a *appModelAdapter) submitFeedback(msg SubmitFeedbackMsg) tea.Cmd {
	if iv, ok := a.Current.(*IndividualView); ok && iv.Submitted {
		a.Logger.Debug().Msg("dropped submission from a completed form")
		return nil
	}
	out, err := a.Controller.Dispatch(a.ctx, app.SubmitFeedback{Text: msg.Text, Category: msg.Category})
	if err != nil {
		a.Current, _ = a.Current.Update(FeedbackRejectedMsg{})
	}
	switch {
	case errors.Is(err, feedback.ErrEmptyFeedback):
		return alert("", "Feedback cannot be empty.")
	case err != nil:
		a.Logger.Error().Err(err).Msg("submit feedback failed")
		return alert("Error", err.Error())
	}
	entry := *out.Submitted
	return func() tea.Msg { return FeedbackSubmittedMsg{Entry: entry} }
}

func alert(title, text string) tea.Cmd {
	return func() tea.Msg { return AlertMsg{Title: title, Text: text} }
}

// newScreenView builds a fresh presentation view for a screen. Transient
// form state of the previous view is discarded.
func newScreenView(s app.Screen) View {
	switch s := s.(type) {
	case app.IndividualScreen:
		return NewIndividualView()
	case app.OrgLoginScreen:
		return NewOrgLoginView()
	case app.OrgDashboardScreen:
		return NewDashboardView(s.Entries)
	case app.AboutScreen:
		return NewAboutView()
	default:
		return NewLandingView()
	}
}

func (a *appModelAdapter) mode() app.View {
	return a.Controller.State().View
}

func (a *appModelAdapter) typing() bool {
	if t, ok := a.Current.(textCapturer); ok {
		return t.CapturingText()
	}
	return false
}

// bodyTop is the first terminal row of the active view.
func (a *appModelAdapter) bodyTop() int {
	return lipgloss.Height(a.renderHeader()) + 1
}

// bodySize is the space left for the active view between header and footer,
// each separated from it by a blank line.
func (a *appModelAdapter) bodySize() tea.WindowSizeMsg {
	h := a.height - a.bodyTop() - 1 - lipgloss.Height(a.renderFooter())
	return tea.WindowSizeMsg{Width: a.width, Height: max(h, 0)}
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	body := a.Current.View()
	if a.Overlays.Len() > 0 {
		size := a.bodySize()
		body = a.Overlays.Render(size.Width, size.Height)
	}
	return a.renderHeader() + "\n\n" + body + "\n\n" + a.renderFooter()
}

const tagline = "A Secure & Anonymous Feedback Platform"

// renderHeader keeps the tagline on one row so bodyTop stays fixed.
func (a *appModelAdapter) renderHeader() string {
	line := tagline
	if a.width > 0 {
		line = textutil.Truncate(line, a.width)
	}
	return Styles.Header.Render("ShaktiChain") + "\n" + Styles.Tagline.Render(line)
}

func (a *appModelAdapter) renderFooter() string {
	var b strings.Builder
	b.WriteString(Styles.Footer.Render("Empowering Voices with Secure Technology."))
	b.WriteString("  " + Styles.Link.Render("About ShaktiChain") + Styles.Hint.Render(" (f1)"))
	if hints := RenderKeybindHelp(a.Keys, a.mode(), a.typing(), a.width); hints != "" {
		b.WriteString("\n" + hints)
	}
	return b.String()
}
