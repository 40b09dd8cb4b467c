package ui

import (
	"strings"
	"testing"
)

func TestOrgLoginView_FocusOrder(t *testing.T) {
	v := NewOrgLoginView()
	if !v.focus.Is(focusEmail) {
		t.Fatalf("expected email focus, got %q", v.focus.Current)
	}
	v.Update(keyMsg("tab"))
	if !v.focus.Is(focusPassword) {
		t.Errorf("tab: expected password, got %q", v.focus.Current)
	}
	v.Update(keyMsg("down"))
	if !v.focus.Is(focusLogin) {
		t.Errorf("down: expected login, got %q", v.focus.Current)
	}
	v.Update(keyMsg("up"))
	v.Update(keyMsg("shift+tab"))
	if !v.focus.Is(focusEmail) {
		t.Errorf("back to email expected, got %q", v.focus.Current)
	}
}

func TestOrgLoginView_EmptySubmitFlagsField(t *testing.T) {
	v := NewOrgLoginView()
	v.Update(keyMsg("tab"))
	v.Update(keyMsg("tab"))

	if _, cmd := v.Update(keyMsg("enter")); cmd != nil {
		t.Fatal("empty form must not log in")
	}
	if v.Missing != focusEmail {
		t.Errorf("expected email flagged, got %q", v.Missing)
	}
	if !v.focus.Is(focusEmail) {
		t.Errorf("expected focus moved to email, got %q", v.focus.Current)
	}
	if !strings.Contains(v.View(), requiredHint) {
		t.Error("expected required hint in view")
	}

	typeRunes(v, "a")
	if v.Missing != "" {
		t.Errorf("typing should clear the hint, got %q", v.Missing)
	}
}

func TestOrgLoginView_MissingPassword(t *testing.T) {
	v := NewOrgLoginView()
	typeRunes(v, "admin@shaktichain.io")
	v.Update(keyMsg("tab"))
	v.Update(keyMsg("tab"))

	if _, cmd := v.Update(keyMsg("space")); cmd != nil {
		t.Fatal("missing password must not log in")
	}
	if v.Missing != focusPassword {
		t.Errorf("expected password flagged, got %q", v.Missing)
	}
}

func TestOrgLoginView_SubmitEmitsLogin(t *testing.T) {
	v := NewOrgLoginView()
	typeRunes(v, "x")
	if _, cmd := v.Update(keyMsg("enter")); cmd != nil {
		t.Error("enter on email should move to password, not submit")
	}
	typeRunes(v, "y")

	_, cmd := v.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected login command")
	}
	msg, ok := cmd().(LoginMsg)
	if !ok {
		t.Fatalf("expected LoginMsg, got %T", cmd())
	}
	if msg.Email != "x" || msg.Password != "y" {
		t.Errorf("unexpected login message: %+v", msg)
	}
}

func TestOrgLoginView_PasswordMasked(t *testing.T) {
	v := NewOrgLoginView()
	v.Update(keyMsg("tab"))
	typeRunes(v, "hunter2")

	view := v.View()
	if strings.Contains(view, "hunter2") {
		t.Error("password must not be rendered in clear text")
	}
	if !strings.Contains(view, "Organization Login") {
		t.Error("expected title")
	}
}
