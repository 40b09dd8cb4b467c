// Package app is the view controller: the application state, the actions
// that change it, and the single function mapping (state, action) to the
// next state.
package app

import (
	"errors"
	"fmt"
	"time"

	"shaktichain/internal/feedback"
)

// ErrUnknownAction is returned by Reduce for an action type it does not handle.
var ErrUnknownAction = errors.New("unknown action")

// State is everything the views observe.
type State struct {
	View     View
	Feedback feedback.Sequence
}

// NewState returns the initial state: the landing view and the given entries.
func NewState(seed feedback.Sequence) State {
	return State{View: ViewLanding, Feedback: seed}
}

// Screen derives the active screen from the state.
func (s State) Screen() Screen {
	switch s.View {
	case ViewIndividual:
		return IndividualScreen{}
	case ViewOrgLogin:
		return OrgLoginScreen{}
	case ViewOrgDashboard:
		return OrgDashboardScreen{Entries: s.Feedback.Reversed()}
	case ViewAbout:
		return AboutScreen{}
	default:
		return LandingScreen{}
	}
}

// Action is a request to change state. The set of implementations is closed.
type Action interface {
	Name() string
	action()
}

// Navigate switches to another view.
type Navigate struct {
	To View
}

// SelectRole dispatches to the view for a role.
type SelectRole struct {
	Role Role
}

// SubmitFeedback appends an anonymous entry. At seeds the entry id.
type SubmitFeedback struct {
	Text     string
	Category feedback.Category
	At       time.Time
}

// Login is the simulated organization login. The credentials are never
// checked; any input succeeds.
type Login struct {
	Email    string
	Password string
}

func (Navigate) Name() string       { return "navigate" }
func (SelectRole) Name() string     { return "select_role" }
func (SubmitFeedback) Name() string { return "submit_feedback" }
func (Login) Name() string          { return "login" }

func (Navigate) action()       {}
func (SelectRole) action()     {}
func (SubmitFeedback) action() {}
func (Login) action()          {}

// Outcome reports side effects the presentation layer should apply.
type Outcome struct {
	// ScrollTop is set whenever a navigation happened, even to the same view.
	ScrollTop bool
	// Submitted is the entry appended by SubmitFeedback.
	Submitted *feedback.Entry
}

// Reduce applies a to s. On error the returned state is s unchanged.
func Reduce(s State, a Action) (State, Outcome, error) {
	switch a := a.(type) {
	case Navigate:
		if err := validateView(a.To); err != nil {
			return s, Outcome{}, err
		}
		s.View = a.To
		return s, Outcome{ScrollTop: true}, nil

	case SelectRole:
		return Reduce(s, Navigate{To: a.Role.View()})

	case SubmitFeedback:
		e, err := feedback.NewEntry(feedback.NextID(a.At, s.Feedback.MaxID()), a.Text, a.Category)
		if err != nil {
			return s, Outcome{}, fmt.Errorf("submit feedback: %w", err)
		}
		s.Feedback = s.Feedback.Append(e)
		return s, Outcome{Submitted: &e}, nil

	case Login:
		return Reduce(s, Navigate{To: ViewOrgDashboard})

	default:
		return s, Outcome{}, fmt.Errorf("%w: %T", ErrUnknownAction, a)
	}
}
