package app

import (
	"errors"
	"fmt"

	"shaktichain/internal/feedback"
)

// ErrInvalidView is returned when navigating to a value outside the View enum.
var ErrInvalidView = errors.New("invalid view")

// View identifies which full-screen variant is active.
type View int

const (
	ViewLanding View = iota
	ViewIndividual
	ViewOrgLogin
	ViewOrgDashboard
	ViewAbout
)

func (v View) String() string {
	switch v {
	case ViewLanding:
		return "landing"
	case ViewIndividual:
		return "individual"
	case ViewOrgLogin:
		return "orgLogin"
	case ViewOrgDashboard:
		return "orgDashboard"
	case ViewAbout:
		return "about"
	default:
		return "unknown"
	}
}

// Valid reports whether v is one of the five views.
func (v View) Valid() bool {
	return v >= ViewLanding && v <= ViewAbout
}

// Views lists every view in declaration order.
func Views() []View {
	return []View{ViewLanding, ViewIndividual, ViewOrgLogin, ViewOrgDashboard, ViewAbout}
}

// Role is the visitor's chosen interaction mode.
type Role string

const (
	RoleIndividual   Role = "individual"
	RoleOrganization Role = "organization"
)

// View returns the view a role selection leads to. Anything that is not
// RoleIndividual is treated as an organization.
func (r Role) View() View {
	if r == RoleIndividual {
		return ViewIndividual
	}
	return ViewOrgLogin
}

// Screen is the active view together with the data it renders.
// The set of implementations is closed.
type Screen interface {
	View() View
	screen()
}

type (
	LandingScreen    struct{}
	IndividualScreen struct{}
	OrgLoginScreen   struct{}
	AboutScreen      struct{}

	// OrgDashboardScreen carries the entries most recent first.
	OrgDashboardScreen struct {
		Entries []feedback.Entry
	}
)

func (LandingScreen) View() View      { return ViewLanding }
func (IndividualScreen) View() View   { return ViewIndividual }
func (OrgLoginScreen) View() View     { return ViewOrgLogin }
func (OrgDashboardScreen) View() View { return ViewOrgDashboard }
func (AboutScreen) View() View        { return ViewAbout }

func (LandingScreen) screen()      {}
func (IndividualScreen) screen()   {}
func (OrgLoginScreen) screen()     {}
func (OrgDashboardScreen) screen() {}
func (AboutScreen) screen()        {}

func validateView(v View) error {
	if !v.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidView, int(v))
	}
	return nil
}
