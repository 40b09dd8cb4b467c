package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shaktichain/internal/app"
)

const (
	cardContentWidth = 30
	cardGap          = 2
	// Rows above the cards: title, subtitle, blank line.
	cardsTop = 3
)

type roleCard struct {
	role   app.Role
	title  string
	body   string
	action string
}

var roleCards = []roleCard{
	{
		role:   app.RoleIndividual,
		title:  "For Individuals",
		body:   "Anonymously share feedback about campus issues and help create a better environment.",
		action: "Share Feedback →",
	},
	{
		role:   app.RoleOrganization,
		title:  "For Organizations",
		body:   "Review anonymous feedback and validate reports to address important concerns.",
		action: "View Reports →",
	},
}

// LandingView lets the visitor pick a role. Cards are activated with
// enter/space, the 1/2 shortcuts, or a left click.
type LandingView struct {
	focus *FocusManager
}

// Ensure LandingView implements View.
var _ View = (*LandingView)(nil)

// NewLandingView focuses the individual card.
func NewLandingView() *LandingView {
	order := make([]string, len(roleCards))
	for i, c := range roleCards {
		order[i] = string(c.role)
	}
	return &LandingView{focus: NewFocusManager(order...)}
}

// Focused returns the role whose card has focus.
func (v *LandingView) Focused() app.Role {
	return app.Role(v.focus.Current)
}

// Init implements View.
func (v *LandingView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *LandingView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "up", "k", "shift+tab":
			v.focus.Prev()
		case "right", "l", "down", "j", "tab":
			v.focus.Next()
		case "enter", " ":
			return v, selectRole(v.Focused())
		case "1":
			return v, selectRole(app.RoleIndividual)
		case "2":
			return v, selectRole(app.RoleOrganization)
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return v, nil
		}
		if role, ok := v.cardAt(msg.X, msg.Y); ok {
			v.focus.SetFocus(string(role))
			return v, selectRole(role)
		}
	}
	return v, nil
}

func selectRole(r app.Role) tea.Cmd {
	return func() tea.Msg { return SelectRoleMsg{Role: r} }
}

// View implements View.
func (v *LandingView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Choose Your Role") + "\n")
	b.WriteString(Styles.Muted.Render("Select how you'd like to interact with ShaktiChain.") + "\n\n")
	b.WriteString(v.renderCards())
	return b.String()
}

func (v *LandingView) renderCards() string {
	cards := make([]string, 0, len(roleCards)*2)
	for i, c := range roleCards {
		if i > 0 {
			cards = append(cards, strings.Repeat(" ", cardGap))
		}
		cards = append(cards, v.renderCard(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (v *LandingView) renderCard(c roleCard) string {
	style := Styles.Card
	action := Styles.Muted.Render(c.action)
	if v.focus.Is(string(c.role)) {
		style = Styles.CardFocused
		action = Styles.Selected.Render(c.action)
	}
	content := Styles.Label.Render(c.title) + "\n\n" + Styles.Normal.Render(c.body) + "\n\n" + action
	return style.Width(cardContentWidth).Render(content)
}

// cardAt maps a click position (relative to the view's top-left) to a card.
func (v *LandingView) cardAt(x, y int) (app.Role, bool) {
	height := 0
	for _, c := range roleCards {
		if h := lipgloss.Height(v.renderCard(c)); h > height {
			height = h
		}
	}
	if y < cardsTop || y >= cardsTop+height || x < 0 {
		return "", false
	}
	left := 0
	for _, c := range roleCards {
		w := lipgloss.Width(v.renderCard(c))
		if x >= left && x < left+w {
			return c.role, true
		}
		left += w + cardGap
	}
	return "", false
}
