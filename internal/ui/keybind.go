package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"shaktichain/internal/app"
)

// binding is one registered global key.
type binding struct {
	seq         string
	cmd         tea.Cmd
	desc        string
	modes       []app.View // nil/empty = applies to all views
	whileTyping bool       // fires even when a text field has focus
}

// KeybindRegistry maps keys to commands, filtered by the active view.
// Keys use tea.KeyMsg.String() notation ("q", "esc", "ctrl+c", "f1"),
// with "SPC" accepted for space.
type KeybindRegistry struct {
	bindings map[string]*binding
	order    []string // registration order, for stable hints
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings: make(map[string]*binding),
	}
}

// Bind registers a key to a command in all views.
// Overwrites any existing binding for the key.
// Use BindWithDesc for human-readable hints in the footer.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key with a description for the footer hints.
// The binding applies to all views.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(seq, cmd, desc, nil)
}

// BindWithDescForMode registers a key with a description and view filter.
// If modes is nil or empty, the binding applies to all views.
func (r *KeybindRegistry) BindWithDescForMode(seq string, cmd tea.Cmd, desc string, modes []app.View) {
	n := normalizeSeq(seq)
	if _, exists := r.bindings[n]; !exists {
		r.order = append(r.order, n)
	}
	r.bindings[n] = &binding{seq: n, cmd: cmd, desc: desc, modes: modes}
}

// AllowWhileTyping marks keys that fire even while a text field has focus.
// Use it only for keys that never produce text (ctrl+c, esc, function keys).
func (r *KeybindRegistry) AllowWhileTyping(seqs ...string) {
	for _, s := range seqs {
		if b, ok := r.bindings[normalizeSeq(s)]; ok {
			b.whileTyping = true
		}
	}
}

// Lookup returns the command bound to seq for the given view, or nil.
// When typing is true only keys marked with AllowWhileTyping match.
func (r *KeybindRegistry) Lookup(seq string, mode app.View, typing bool) tea.Cmd {
	b, ok := r.bindings[normalizeSeq(seq)]
	if !ok || b.cmd == nil {
		return nil
	}
	if typing && !b.whileTyping {
		return nil
	}
	if !b.appliesToMode(mode) {
		return nil
	}
	return b.cmd
}

// Hints returns key.Bindings for the footer, in registration order.
// Keys sharing a description are merged ("esc/b back").
func (r *KeybindRegistry) Hints(mode app.View, typing bool) []key.Binding {
	var descs []string
	keysByDesc := make(map[string][]string)
	for _, seq := range r.order {
		b := r.bindings[seq]
		if b.desc == "" || b.cmd == nil || !b.appliesToMode(mode) {
			continue
		}
		if typing && !b.whileTyping {
			continue
		}
		if _, seen := keysByDesc[b.desc]; !seen {
			descs = append(descs, b.desc)
		}
		keysByDesc[b.desc] = append(keysByDesc[b.desc], seq)
	}

	out := make([]key.Binding, 0, len(descs))
	for _, d := range descs {
		keys := keysByDesc[d]
		out = append(out, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), d),
		))
	}
	return out
}

// appliesToMode returns true if the binding applies to the given view.
func (b *binding) appliesToMode(mode app.View) bool {
	if len(b.modes) == 0 {
		return true
	}
	for _, m := range b.modes {
		if m == mode {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to our canonical format.
// "space" and " " -> "SPC"; everything else is unchanged.
func normalizeSeq(seq string) string {
	if seq == " " {
		return "SPC"
	}
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}
