package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for focused cards and controls
	ColorDanger    = "196" // Red - for alerts, validation
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorSuccess   = "42"  // Green - for the submission confirmation
	ColorWarning   = "208" // Orange - for category badges
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	// Chrome
	Header  lipgloss.Style // App name
	Tagline lipgloss.Style // Subtitle under the app name
	Footer  lipgloss.Style // Footer text
	Link    lipgloss.Style // Footer "About" link

	// Title styles
	Title        lipgloss.Style // Bold accent color - for view titles
	TitleWarning lipgloss.Style // Bold danger color - for alert titles

	// Box styles
	Box         lipgloss.Style // Standard card with rounded border
	BoxDanger   lipgloss.Style // Alert box (danger border)
	Card        lipgloss.Style // Unfocused role card
	CardFocused lipgloss.Style // Focused role card

	// Text styles
	Selected lipgloss.Style // Focused control (bold highlight color)
	Muted    lipgloss.Style // Dimmed text (muted color)
	Normal   lipgloss.Style // Normal text (text color)
	Hint     lipgloss.Style // Help/hint text (muted color)
	Empty    lipgloss.Style // Empty state text (muted, italic)
	Badge    lipgloss.Style // Category badge on dashboard entries
	Success  lipgloss.Style // "Thank you!" heading
	Invalid  lipgloss.Style // Required-field hint
	Label    lipgloss.Style // Form labels
}{
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Tagline: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Link: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Underline(true),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(1, 2),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(1, 2),
	CardFocused: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Badge: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarning)),
	Success: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorSuccess)),
	Invalid: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Label: lipgloss.NewStyle().
		Bold(true),
}
