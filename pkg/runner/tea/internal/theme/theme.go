package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"tableflip.dev/itemlist/pkg/editmode"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Dark bool

	Title    lipgloss.Style
	Input    lipgloss.Style
	Row      lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Remove   lipgloss.Style
	Hidden   lipgloss.Style
	Alert    lipgloss.Style
	Confirm  lipgloss.Style
	Control  lipgloss.Style
	Help     lipgloss.Style
}

// Default returns the built-in theme, adjusted to the terminal background.
func Default() Theme {
	return New(termenv.HasDarkBackground())
}

// New returns the theme for a dark or light background.
func New(dark bool) Theme {
	muted := lipgloss.Color("244")
	if !dark {
		muted = lipgloss.Color("240")
	}
	return Theme{
		Dark:     dark,
		Title:    lipgloss.NewStyle().Bold(true).Underline(true),
		Input:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1),
		Row:      lipgloss.NewStyle(),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("#228B22")).Bold(true),
		Remove:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Hidden:   lipgloss.NewStyle().Foreground(muted).Italic(true),
		Alert:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Confirm:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Control:  lipgloss.NewStyle().Foreground(muted).Border(lipgloss.NormalBorder()).Padding(0, 1),
		Help:     lipgloss.NewStyle().Foreground(muted),
	}
}

// Button styles the submit control for an affordance. Very dark colours are
// lifted toward white on dark terminals so the button stays readable.
func (t Theme) Button(a editmode.Affordance) lipgloss.Style {
	bg, err := colorful.Hex(a.Color)
	if err != nil {
		return lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)
	}
	if l, _, _ := bg.Lab(); t.Dark && l < 0.3 {
		bg = bg.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.25).Clamped()
	}
	fg := "#FFFFFF"
	if l, _, _ := bg.Lab(); l > 0.6 {
		fg = "#000000"
	}
	return lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg.Hex()))
}
