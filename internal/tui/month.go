package tui

import (
	"strings"

	"github.com/akyairhashvil/calpick/internal/config"
	"github.com/akyairhashvil/calpick/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// MonthGrid renders one month and owns the in-progress selection.
type MonthGrid struct {
	Month    models.CalendarMonth
	Value    []*models.CalendarDay
	Readonly bool
	PickMode models.PickMode
	Color    string
	// DayKey maps a timestamp to its day. Nil compares raw timestamps.
	DayKey func(ms int64) int64

	cursor int
}

func NewMonthGrid(month models.CalendarMonth, value []*models.CalendarDay, mode models.PickMode, readonly bool) MonthGrid {
	g := MonthGrid{
		Month:    month,
		Value:    value,
		Readonly: readonly,
		PickMode: mode,
	}
	g.placeCursor()
	return g
}

// SetMonth swaps the displayed month and re-seats the cursor.
func (g *MonthGrid) SetMonth(month models.CalendarMonth) {
	g.Month = month
	g.placeCursor()
}

func (g *MonthGrid) placeCursor() {
	g.cursor = -1
	for i, d := range g.Month.Days {
		if d != nil && g.IsSelected(d.Time) {
			g.cursor = i
			return
		}
	}
	for i, d := range g.Month.Days {
		if d != nil && d.IsToday {
			g.cursor = i
			return
		}
	}
	g.cursor = g.firstIndex()
}

func (g MonthGrid) firstIndex() int {
	for i, d := range g.Month.Days {
		if d != nil {
			return i
		}
	}
	return -1
}

// CursorToFirst puts the cursor on day 1.
func (g *MonthGrid) CursorToFirst() { g.cursor = g.firstIndex() }

// CursorToLast puts the cursor on the last day of the month.
func (g *MonthGrid) CursorToLast() { g.cursor = len(g.Month.Days) - 1 }

// CursorDay returns the day under the cursor, or nil for an empty month.
func (g MonthGrid) CursorDay() *models.CalendarDay {
	if g.cursor < 0 || g.cursor >= len(g.Month.Days) {
		return nil
	}
	return g.Month.Days[g.cursor]
}

// MoveCursor moves by delta cells. It returns false, leaving the cursor in
// place, when the target falls outside the month.
func (g *MonthGrid) MoveCursor(delta int) bool {
	target := g.cursor + delta
	first := g.firstIndex()
	if first < 0 || target < first || target >= len(g.Month.Days) {
		return false
	}
	g.cursor = target
	return true
}

// Select applies a pick to the selection and returns the new selection. The
// boolean is false when the pick was ignored.
func (g *MonthGrid) Select(day *models.CalendarDay) ([]*models.CalendarDay, bool) {
	if g.Readonly || day == nil || day.Disable {
		return nil, false
	}
	switch g.PickMode {
	case models.PickSingle:
		g.Value = []*models.CalendarDay{day, nil}
	case models.PickRange:
		g.selectRange(day)
	case models.PickMulti:
		g.toggle(day)
	default:
		return nil, false
	}
	return append([]*models.CalendarDay(nil), g.Value...), true
}

func (g *MonthGrid) selectRange(day *models.CalendarDay) {
	for len(g.Value) < 2 {
		g.Value = append(g.Value, nil)
	}
	start, end := g.Value[0], g.Value[1]
	switch {
	case start == nil:
		g.Value[0] = day
	case end == nil:
		if start.Time < day.Time {
			g.Value[1] = day
		} else {
			g.Value[0], g.Value[1] = day, start
		}
	default:
		g.Value[0], g.Value[1] = day, nil
	}
}

func (g *MonthGrid) toggle(day *models.CalendarDay) {
	kept := make([]*models.CalendarDay, 0, len(g.Value)+1)
	found := false
	for _, d := range g.Value {
		if d == nil {
			continue
		}
		if g.sameDay(d.Time, day.Time) {
			found = true
			continue
		}
		kept = append(kept, d)
	}
	if !found {
		kept = append(kept, day)
	}
	g.Value = kept
}

func (g MonthGrid) sameDay(a, b int64) bool {
	if g.DayKey == nil {
		return a == b
	}
	return g.DayKey(a) == g.DayKey(b)
}

func (g MonthGrid) IsSelected(ms int64) bool {
	for _, d := range g.Value {
		if d != nil && g.sameDay(d.Time, ms) {
			return true
		}
	}
	return false
}

// IsInRange reports whether ms lies strictly between a complete range.
func (g MonthGrid) IsInRange(ms int64) bool {
	if g.PickMode != models.PickRange || len(g.Value) < 2 {
		return false
	}
	start, end := g.Value[0], g.Value[1]
	if start == nil || end == nil {
		return false
	}
	return start.Time < ms && ms < end.Time && !g.sameDay(start.Time, ms) && !g.sameDay(end.Time, ms)
}

func (g MonthGrid) IsStartSelection(ms int64) bool {
	return g.PickMode == models.PickRange && len(g.Value) > 0 && g.Value[0] != nil && g.sameDay(g.Value[0].Time, ms)
}

func (g MonthGrid) IsEndSelection(ms int64) bool {
	return g.PickMode == models.PickRange && len(g.Value) > 1 && g.Value[1] != nil && g.sameDay(g.Value[1].Time, ms)
}

func (g MonthGrid) dayStyle(d *models.CalendarDay, theme Theme) lipgloss.Style {
	switch {
	case g.IsSelected(d.Time):
		return theme.Selected
	case g.IsInRange(d.Time):
		return theme.InRange
	case d.Disable:
		return theme.Disabled
	case d.IsToday:
		return theme.Today
	case d.Marked:
		return theme.Marked
	}
	return theme.Day
}

// View renders the grid as rows of seven cells. The cursor is drawn only when
// focused.
func (g MonthGrid) View(theme Theme, focused bool) string {
	cell := lipgloss.NewStyle().Width(config.DayCellWidth).Align(lipgloss.Right)
	var rows []string
	var row strings.Builder
	for i, d := range g.Month.Days {
		if d == nil {
			row.WriteString(cell.Render(""))
		} else {
			style := g.dayStyle(d, theme)
			if focused && i == g.cursor {
				style = style.Inherit(theme.Cursor).Reverse(true)
			}
			row.WriteString(cell.Render(style.Render(ansi.Truncate(d.Title, config.DayCellWidth-1, ""))))
		}
		if (i+1)%config.WeekLength == 0 {
			rows = append(rows, row.String())
			row.Reset()
		}
	}
	if row.Len() > 0 {
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}
