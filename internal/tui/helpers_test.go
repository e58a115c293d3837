package tui

import (
	"testing"
	"time"

	"github.com/akyairhashvil/calpick/internal/models"
	"github.com/akyairhashvil/calpick/internal/picker"
	"github.com/akyairhashvil/calpick/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

func febMonth(t *testing.T, opts models.Options) models.CalendarMonth {
	t.Helper()
	svc := testutil.NewService()
	opt := svc.SafeOpt(opts)
	return svc.CreateCalendarMonth(svc.CreateOriginalCalendar(testutil.Millis(2024, time.February, 1)), opt)
}

func dayOf(t *testing.T, month models.CalendarMonth, day int) *models.CalendarDay {
	t.Helper()
	for _, d := range month.Days {
		if d != nil {
			if d.Time == testutil.Millis(month.Original.Year, month.Original.Month, day) {
				return d
			}
		}
	}
	t.Fatalf("day %d not found in %v", day, month.Original.Month)
	return nil
}

func newTestPicker(t *testing.T, opts models.Options, typ models.ValueType, readonly bool) picker.Model {
	t.Helper()
	return picker.New(testutil.NewService(), picker.Config{Options: &opts, Type: typ, Readonly: readonly})
}

func newTestCalendar(t *testing.T, opts models.Options, typ models.ValueType, readonly bool) CalendarModel {
	t.Helper()
	return NewCalendarModel(newTestPicker(t, opts, typ, readonly))
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press feeds keys to the calendar and collects the messages of the
// returned commands.
func press(m CalendarModel, keys ...string) (CalendarModel, []tea.Msg) {
	var msgs []tea.Msg
	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = m.Update(keyMsg(k))
		if cmd != nil {
			msgs = append(msgs, cmd())
		}
	}
	return m, msgs
}
