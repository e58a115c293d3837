package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name           string
	Base           lipgloss.Style
	Border         lipgloss.Color
	Title          lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Week           lipgloss.Style
	Day            lipgloss.Style
	Today          lipgloss.Style
	Selected       lipgloss.Style
	InRange        lipgloss.Style
	Disabled       lipgloss.Style
	Marked         lipgloss.Style
	Cursor         lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	Input          lipgloss.Style
}

func newTheme(name string, accent, soft, fg lipgloss.Color) Theme {
	return Theme{
		Name:           name,
		Base:           lipgloss.NewStyle().Margin(1, 2),
		Border:         accent,
		Title:          lipgloss.NewStyle().Foreground(accent).Bold(true),
		Button:         lipgloss.NewStyle().Foreground(accent).Bold(true),
		ButtonDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Week:           lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Day:            lipgloss.NewStyle().Foreground(fg),
		Today:          lipgloss.NewStyle().Foreground(accent).Bold(true),
		Selected:       lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(accent).Bold(true),
		InRange:        lipgloss.NewStyle().Foreground(fg).Background(soft),
		Disabled:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Marked:         lipgloss.NewStyle().Foreground(accent).Underline(true),
		Cursor:         lipgloss.NewStyle().Reverse(true),
		Dim:            lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Status:         lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Input:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1).Width(30),
	}
}

// Themes are keyed by the calendar color option.
var Themes = map[string]Theme{
	"primary":     newTheme("Primary", lipgloss.Color("33"), lipgloss.Color("24"), lipgloss.Color("252")),
	"secondary":   newTheme("Secondary", lipgloss.Color("36"), lipgloss.Color("23"), lipgloss.Color("252")),
	"danger":      newTheme("Danger", lipgloss.Color("196"), lipgloss.Color("52"), lipgloss.Color("252")),
	"dark":        newTheme("Dark", lipgloss.Color("237"), lipgloss.Color("235"), lipgloss.Color("250")),
	"light":       newTheme("Light", lipgloss.Color("153"), lipgloss.Color("254"), lipgloss.Color("236")),
	"transparent": newTheme("Transparent", lipgloss.Color("252"), lipgloss.Color("238"), lipgloss.Color("252")),
}

// ThemeOrder is the cycle order used by the theme key.
var ThemeOrder = []string{"primary", "secondary", "danger", "dark", "light", "transparent"}

// ThemeFor returns the theme for a color, falling back to primary.
func ThemeFor(color string) Theme {
	if t, ok := Themes[color]; ok {
		return t
	}
	return Themes["primary"]
}

// NextTheme returns the color after current in ThemeOrder.
func NextTheme(current string) string {
	for i, name := range ThemeOrder {
		if name == current {
			return ThemeOrder[(i+1)%len(ThemeOrder)]
		}
	}
	return ThemeOrder[0]
}
