package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shaktichain/internal/app"
)

func selectedRole(t *testing.T, cmd tea.Cmd) app.Role {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(SelectRoleMsg)
	if !ok {
		t.Fatalf("expected SelectRoleMsg, got %T", cmd())
	}
	return msg.Role
}

func TestLandingView_FocusStartsOnIndividual(t *testing.T) {
	v := NewLandingView()
	if v.Focused() != app.RoleIndividual {
		t.Errorf("expected individual focus, got %q", v.Focused())
	}
}

func TestLandingView_ArrowNavigationWraps(t *testing.T) {
	v := NewLandingView()

	v.Update(keyMsg("right"))
	if v.Focused() != app.RoleOrganization {
		t.Errorf("after right: expected organization, got %q", v.Focused())
	}
	v.Update(keyMsg("right"))
	if v.Focused() != app.RoleIndividual {
		t.Errorf("right wraps: expected individual, got %q", v.Focused())
	}
	v.Update(keyMsg("h"))
	if v.Focused() != app.RoleOrganization {
		t.Errorf("h wraps: expected organization, got %q", v.Focused())
	}
	v.Update(keyMsg("tab"))
	if v.Focused() != app.RoleIndividual {
		t.Errorf("after tab: expected individual, got %q", v.Focused())
	}
}

func TestLandingView_EnterAndSpaceSelectFocused(t *testing.T) {
	v := NewLandingView()
	_, cmd := v.Update(keyMsg("enter"))
	if got := selectedRole(t, cmd); got != app.RoleIndividual {
		t.Errorf("enter: expected individual, got %q", got)
	}

	v.Update(keyMsg("l"))
	_, cmd = v.Update(keyMsg("space"))
	if got := selectedRole(t, cmd); got != app.RoleOrganization {
		t.Errorf("space: expected organization, got %q", got)
	}
}

func TestLandingView_NumberShortcuts(t *testing.T) {
	v := NewLandingView()
	_, cmd := v.Update(keyMsg("2"))
	if got := selectedRole(t, cmd); got != app.RoleOrganization {
		t.Errorf("2: expected organization, got %q", got)
	}
	_, cmd = v.Update(keyMsg("1"))
	if got := selectedRole(t, cmd); got != app.RoleIndividual {
		t.Errorf("1: expected individual, got %q", got)
	}
}

func TestLandingView_CardAt(t *testing.T) {
	v := NewLandingView()
	w := lipgloss.Width(v.renderCard(roleCards[0]))
	h := max(lipgloss.Height(v.renderCard(roleCards[0])), lipgloss.Height(v.renderCard(roleCards[1])))

	tests := []struct {
		name   string
		x, y   int
		want   app.Role
		wantOK bool
	}{
		{"title row", 1, 0, "", false},
		{"first card", 1, cardsTop, app.RoleIndividual, true},
		{"first card last column", w - 1, cardsTop + 1, app.RoleIndividual, true},
		{"gap", w, cardsTop + 1, "", false},
		{"second card", w + cardGap, cardsTop + 1, app.RoleOrganization, true},
		{"below cards", 1, cardsTop + h, "", false},
		{"right of cards", 2*w + cardGap + 1, cardsTop + 1, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := v.cardAt(tt.x, tt.y)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("cardAt(%d, %d) = %q, %v; want %q, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLandingView_MouseClick(t *testing.T) {
	v := NewLandingView()
	w := lipgloss.Width(v.renderCard(roleCards[0]))

	press := tea.MouseMsg{X: w + cardGap + 1, Y: cardsTop + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if _, cmd := v.Update(press); cmd != nil {
		t.Error("press alone should not select")
	}

	release := press
	release.Action = tea.MouseActionRelease
	_, cmd := v.Update(release)
	if got := selectedRole(t, cmd); got != app.RoleOrganization {
		t.Errorf("click: expected organization, got %q", got)
	}
	if v.Focused() != app.RoleOrganization {
		t.Error("click should move focus to the clicked card")
	}
}

func TestLandingView_ViewShowsBothCards(t *testing.T) {
	view := NewLandingView().View()
	for _, want := range []string{"Choose Your Role", "For Individuals", "For Organizations", "Share Feedback →", "View Reports →"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
	if lines := strings.Split(view, "\n"); !strings.Contains(lines[cardsTop], "╭") && !strings.Contains(lines[cardsTop], "┏") {
		t.Errorf("expected cards to start at row %d, got %q", cardsTop, lines[cardsTop])
	}
}
