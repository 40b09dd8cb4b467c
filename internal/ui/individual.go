package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"shaktichain/internal/feedback"
)

const (
	focusFeedbackText = "text"
	focusCategory     = "category"
	focusSubmit       = "submit"
)

// IndividualView is the anonymous submission form. After a successful
// submission it shows a confirmation until the visitor navigates away.
type IndividualView struct {
	text      textarea.Model
	Category  feedback.Category
	Submitted bool
	focus     *FocusManager
	// pending is set from submit until the controller accepts or rejects it.
	pending bool
}

// Ensure IndividualView implements View.
var _ View = (*IndividualView)(nil)

// NewIndividualView creates an empty form with the default category.
func NewIndividualView() *IndividualView {
	ta := textarea.New()
	ta.Placeholder = "Describe the issue. Nothing identifies you."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(6)
	ta.Focus()

	v := &IndividualView{
		text:     ta,
		Category: feedback.DefaultCategory,
		focus:    NewFocusManager(focusFeedbackText, focusCategory, focusSubmit),
	}
	v.focus.OnChange = func(from, to string) {
		if from == focusFeedbackText {
			v.text.Blur()
		}
		if to == focusFeedbackText {
			v.text.Focus()
		}
	}
	return v
}

// Draft returns the text typed so far.
func (v *IndividualView) Draft() string {
	return v.text.Value()
}

// Init implements View.
func (v *IndividualView) Init() tea.Cmd {
	return textarea.Blink
}

// CapturingText implements textCapturer. The whole form counts as text
// entry until it has been submitted.
func (v *IndividualView) CapturingText() bool {
	return !v.Submitted
}

// Update implements View.
func (v *IndividualView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case FeedbackSubmittedMsg:
		v.Submitted = true
		v.pending = false
		v.text.Blur()
		return v, nil
	case FeedbackRejectedMsg:
		v.pending = false
		return v, nil
	case tea.WindowSizeMsg:
		if w := msg.Width - 4; w > 20 {
			v.text.SetWidth(min(w, 80))
		}
		return v, nil
	case tea.KeyMsg:
		if v.Submitted {
			return v, nil
		}
		switch msg.String() {
		case "tab":
			v.focus.Next()
			return v, nil
		case "shift+tab":
			v.focus.Prev()
			return v, nil
		case "ctrl+s":
			return v, v.submit()
		}
		switch v.focus.Current {
		case focusCategory:
			switch msg.String() {
			case "left", "h", "up", "k":
				v.Category = v.Category.Prev()
			case "right", "l", "down", "j", " ":
				v.Category = v.Category.Next()
			case "enter":
				v.focus.Next()
			}
			return v, nil
		case focusSubmit:
			switch msg.String() {
			case "enter", " ":
				return v, v.submit()
			}
			return v, nil
		}
	}

	if v.Submitted || !v.focus.Is(focusFeedbackText) {
		return v, nil
	}
	var cmd tea.Cmd
	v.text, cmd = v.text.Update(msg)
	return v, cmd
}

// submit emits at most one SubmitFeedbackMsg per attempt.
func (v *IndividualView) submit() tea.Cmd {
	if v.Submitted || v.pending {
		return nil
	}
	v.pending = true
	text, category := v.text.Value(), v.Category
	return func() tea.Msg {
		return SubmitFeedbackMsg{Text: text, Category: category}
	}
}

// View implements View.
func (v *IndividualView) View() string {
	if v.Submitted {
		content := Styles.Success.Render("Thank you!") + "\n\n" +
			Styles.Normal.Render("Your anonymous feedback has been submitted successfully.")
		return Styles.Box.Render(content)
	}

	var b strings.Builder
	b.WriteString(Styles.Label.Render("Your Feedback (anonymous)") + "\n")
	b.WriteString(v.text.View() + "\n\n")
	b.WriteString(Styles.Label.Render("Category") + "\n")
	b.WriteString(v.renderCategories() + "\n\n")

	button := "[ Submit Feedback ]"
	if v.focus.Is(focusSubmit) {
		b.WriteString(Styles.Selected.Render(button))
	} else {
		b.WriteString(Styles.Muted.Render(button))
	}
	b.WriteString("\n\n" + Styles.Hint.Render("tab: next field  ←/→: category  ctrl+s: submit"))
	return b.String()
}

func (v *IndividualView) renderCategories() string {
	parts := make([]string, 0, len(feedback.Categories()))
	for _, c := range feedback.Categories() {
		label := "( ) " + c.String()
		switch {
		case c == v.Category && v.focus.Is(focusCategory):
			label = Styles.Selected.Render("(•) " + c.String())
		case c == v.Category:
			label = Styles.Normal.Render("(•) " + c.String())
		default:
			label = Styles.Muted.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "  ")
}
