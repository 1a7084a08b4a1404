package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a complete set of styles for one color scheme.
type Theme struct {
	Name string

	Title    lipgloss.Style
	Accent   lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Selected lipgloss.Style
	CardHead lipgloss.Style
	CardBody lipgloss.Style
	Modal    lipgloss.Style
	Label    lipgloss.Style
}

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

func newTheme(name string, fg, muted, accent, border, errColor lipgloss.Color) Theme {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	return Theme{
		Name:     name,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(fg),
		Accent:   lipgloss.NewStyle().Foreground(accent),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Error:    lipgloss.NewStyle().Foreground(errColor).Bold(true),
		Help:     lipgloss.NewStyle().Foreground(muted).Faint(true),
		Card:     card,
		Selected: card.BorderForeground(accent).BorderStyle(lipgloss.ThickBorder()),
		CardHead: lipgloss.NewStyle().Bold(true).Foreground(fg),
		CardBody: lipgloss.NewStyle().Foreground(muted),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2),
		Label: lipgloss.NewStyle().Bold(true).Foreground(accent),
	}
}

// DarkTheme suits terminals with a dark background.
func DarkTheme() Theme {
	return newTheme(ThemeDark, "252", "245", "12", "8", "9")
}

// LightTheme suits terminals with a light background.
func LightTheme() Theme {
	return newTheme(ThemeLight, "235", "241", "27", "250", "160")
}

// ThemeByName returns the named theme.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", ThemeDark:
		return DarkTheme(), nil
	case ThemeLight:
		return LightTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q (want dark or light)", name)
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t.Name == ThemeLight {
		return DarkTheme()
	}
	return LightTheme()
}
