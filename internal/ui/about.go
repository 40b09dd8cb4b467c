package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

var aboutParagraphs = []string{
	"ShaktiChain is founded on the principle that every voice matters. In many institutions, especially colleges, students and individuals often face challenges in reporting sensitive issues like harassment, inadequate facilities, or academic concerns without fear of reprisal.",
	"Our mission is to dismantle these barriers by providing a truly anonymous and secure platform for feedback. We are committed to ensuring that every submission is handled with care and that user privacy is paramount.",
	"**Safeguarding Rights:** We empower users to speak up, knowing their anonymity is protected.",
	"**Justifying Voices:** We create a direct and transparent channel to organizations, enabling them to address valid concerns and foster a better environment for everyone.",
	"ShaktiChain is more than a platform; it's a movement towards accountability, transparency, and empowerment.",
}

// AboutView is static information about the platform.
type AboutView struct {
	pane scrollPane
}

// Ensure AboutView implements View.
var _ View = (*AboutView)(nil)

// NewAboutView creates the about page.
func NewAboutView() *AboutView {
	return &AboutView{pane: newScrollPane(renderAbout)}
}

// Init implements View.
func (v *AboutView) Init() tea.Cmd {
	return nil
}

// ScrollToTop implements scrollable.
func (v *AboutView) ScrollToTop() {
	v.pane.scrollToTop()
}

// Update implements View.
func (v *AboutView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		v.pane.resize(msg.Width, msg.Height-2)
		return v, nil
	}
	return v, v.pane.update(msg)
}

// View implements View.
func (v *AboutView) View() string {
	return Styles.Title.Render("About ShaktiChain") + "\n\n" + v.pane.view()
}

// renderAbout wraps the paragraphs to width. A leading **Label:** is
// rendered bold.
func renderAbout(width int) string {
	body := Styles.Normal.Width(max(width, 20))
	out := make([]string, 0, len(aboutParagraphs))
	for _, p := range aboutParagraphs {
		if rest, ok := strings.CutPrefix(p, "**"); ok {
			if label, text, ok := strings.Cut(rest, "**"); ok {
				out = append(out, body.Render(Styles.Label.Render(label)+text))
				continue
			}
		}
		out = append(out, body.Render(p))
	}
	return strings.Join(out, "\n\n")
}
