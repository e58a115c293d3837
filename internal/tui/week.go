package tui

import (
	"strings"

	"github.com/akyairhashvil/calpick/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// WeekHeader renders the weekday labels above the month grid.
type WeekHeader struct {
	Weekdays  [7]string
	WeekStart int
}

// Labels returns the weekday labels rotated to start on WeekStart.
func (w WeekHeader) Labels() []string {
	out := make([]string, 0, len(w.Weekdays))
	for i := range w.Weekdays {
		out = append(out, w.Weekdays[(i+w.WeekStart)%len(w.Weekdays)])
	}
	return out
}

func (w WeekHeader) View(theme Theme) string {
	cell := lipgloss.NewStyle().Width(config.DayCellWidth).Align(lipgloss.Right)
	var b strings.Builder
	for _, label := range w.Labels() {
		b.WriteString(cell.Render(theme.Week.Render(label)))
	}
	return b.String()
}
