package tui

import (
	"github.com/akyairhashvil/calpick/internal/config"
	"github.com/akyairhashvil/calpick/internal/models"
	"github.com/akyairhashvil/calpick/internal/picker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// SelectionChangedMsg carries a value emitted by the picker.
type SelectionChangedMsg struct {
	Value any
}

// MonthChangedMsg carries a month navigation event.
type MonthChangedMsg struct {
	Change models.MonthChange
}

// BlurMsg is sent after the calendar reported a touch.
type BlurMsg struct{}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// CalendarModel is the Bubble Tea calendar widget: title bar, week header
// and month grid over a picker.
type CalendarModel struct {
	picker  picker.Model
	grid    MonthGrid
	week    WeekHeader
	color   string
	theme   Theme
	keys    *HandlerRegistry
	focused bool
	width   int
}

var _ picker.ValueAccessor = (*CalendarModel)(nil)

func NewCalendarModel(p picker.Model) CalendarModel {
	opt := p.Options()
	m := CalendarModel{
		picker:  p,
		week:    WeekHeader{Weekdays: opt.Weekdays, WeekStart: opt.WeekStart},
		keys:    calendarKeys(),
		focused: true,
	}
	m.SetTheme(opt.Color)
	m.sync()
	return m
}

func (m *CalendarModel) sync() {
	m.grid = MonthGrid{
		Month:    m.picker.Month(),
		Value:    m.picker.Value(),
		Readonly: m.picker.Readonly(),
		PickMode: m.picker.PickMode(),
		Color:    m.color,
		DayKey:   m.picker.Service().DayKey,
	}
	m.grid.placeCursor()
}

func (m CalendarModel) viewMode() int {
	if m.picker.Readonly() {
		return config.ViewModeReadonly
	}
	return config.ViewModeInteractive
}

func (m CalendarModel) Picker() picker.Model { return m.picker }
func (m CalendarModel) Grid() MonthGrid      { return m.grid }
func (m CalendarModel) Color() string        { return m.color }
func (m CalendarModel) Theme() Theme         { return m.theme }
func (m CalendarModel) Focused() bool        { return m.focused }

func (m *CalendarModel) Focus() { m.focused = true }
func (m *CalendarModel) Blur()  { m.focused = false }

// SetTheme switches the color theme. Unknown colors use primary.
func (m *CalendarModel) SetTheme(color string) {
	if _, ok := Themes[color]; !ok {
		color = config.DefaultColor
	}
	m.color = color
	m.theme = ThemeFor(color)
	m.grid.Color = color
}

func (m *CalendarModel) WriteValue(v any) {
	m.picker.WriteValue(v)
	m.sync()
}

func (m *CalendarModel) RegisterOnChange(fn func(any)) { m.picker.RegisterOnChange(fn) }
func (m *CalendarModel) RegisterOnTouched(fn func())   { m.picker.RegisterOnTouched(fn) }

func (m *CalendarModel) SetDisabledState(disabled bool) {
	m.picker.SetDisabledState(disabled)
	m.grid.Readonly = disabled
}

// JumpTo shows the month containing ms. It returns a nil command when the
// month is out of bounds.
func (m CalendarModel) JumpTo(ms int64) (CalendarModel, tea.Cmd) {
	ev, ok := m.picker.ShowMonth(ms)
	if !ok {
		return m, nil
	}
	m.grid.SetMonth(m.picker.Month())
	return m, emit(MonthChangedMsg{Change: ev})
}

func (m CalendarModel) canBack() bool {
	return m.picker.ShowToggleButtons() && !m.picker.Readonly() && m.picker.CanBack()
}

func (m CalendarModel) canNext() bool {
	return m.picker.ShowToggleButtons() && !m.picker.Readonly() && m.picker.CanNext()
}

func (m CalendarModel) Init() tea.Cmd {
	return nil
}

func (m CalendarModel) Update(msg tea.Msg) (CalendarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		next, cmd, _ := m.keys.Handle(m, msg.String())
		return next, cmd
	}
	return m, nil
}

// Help renders the key hints for the current mode.
func (m CalendarModel) Help() string {
	return m.keys.HelpForView(m.viewMode())
}

// KeyMap exposes the current mode's bindings to bubbles/help.
func (m CalendarModel) KeyMap() help.KeyMap {
	return m.keys.KeyMap(m.viewMode())
}

func (m CalendarModel) contentWidth() int {
	if m.width > 0 && m.width < config.MinGridWidth {
		return m.width
	}
	return config.MinGridWidth
}

func (m CalendarModel) button(label string, enabled bool) string {
	if enabled {
		return m.theme.Button.Render(label)
	}
	return m.theme.ButtonDisabled.Render(label)
}

func (m CalendarModel) titleView() string {
	width := m.contentWidth()
	if !m.picker.ShowToggleButtons() {
		label := ansi.Truncate(m.picker.MonthLabel(), width, config.TruncationSuffix)
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, m.theme.Title.Render(label))
	}
	label := ansi.Truncate(m.picker.MonthLabel(), width-4, config.TruncationSuffix)
	title := m.theme.Title.Render(label)
	gap := width - 2 - lipgloss.Width(title)
	if gap < 2 {
		gap = 2
	}
	left := gap / 2
	return m.button("‹", m.canBack()) +
		lipgloss.NewStyle().Width(left).Render("") + title +
		lipgloss.NewStyle().Width(gap-left).Render("") +
		m.button("›", m.canNext())
}

func (m CalendarModel) subtitleView() string {
	d := m.grid.CursorDay()
	if d == nil || d.SubTitle == "" {
		return ""
	}
	return m.theme.Dim.Render(ansi.Truncate(d.SubTitle, config.MaxSubTitleWidth, config.TruncationSuffix))
}

func (m CalendarModel) View() string {
	parts := []string{
		m.titleView(),
		m.week.View(m.theme),
		m.grid.View(m.theme, m.focused),
	}
	if sub := m.subtitleView(); sub != "" {
		parts = append(parts, sub)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func calendarKeys() *HandlerRegistry {
	r := NewHandlerRegistry()
	all := []int{config.ViewModeInteractive, config.ViewModeReadonly}
	interactive := []int{config.ViewModeInteractive}

	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Handler:   moveHandler(-1),
		ViewModes: all,
		Priority:  10,
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Handler:   moveHandler(1),
		ViewModes: all,
		Priority:  10,
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		Handler:   moveHandler(-config.WeekLength),
		ViewModes: all,
		Priority:  10,
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		Handler:   moveHandler(config.WeekLength),
		ViewModes: all,
		Priority:  10,
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("[", "pgup", "p"), key.WithHelp("[", "prev month")),
		Handler:   backHandler,
		ViewModes: interactive,
		Priority:  8,
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("]", "pgdown", "n"), key.WithHelp("]", "next month")),
		Handler:   nextHandler,
		ViewModes: interactive,
		Priority:  8,
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Handler:   selectHandler,
		ViewModes: interactive,
		Priority:  6,
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("tab", "esc"), key.WithHelp("tab", "blur")),
		Handler:   blurHandler,
		ViewModes: all,
		Priority:  1,
	})
	return r
}

// moveHandler moves the cursor. Leaving the month turns the page when the
// toggle buttons allow it.
func moveHandler(delta int) KeyHandler {
	return func(m CalendarModel, _ string) (CalendarModel, tea.Cmd, bool) {
		if m.grid.MoveCursor(delta) {
			return m, nil, true
		}
		if delta > 0 && m.canNext() {
			ev := m.picker.NextMonth()
			m.grid.SetMonth(m.picker.Month())
			m.grid.CursorToFirst()
			return m, emit(MonthChangedMsg{Change: ev}), true
		}
		if delta < 0 && m.canBack() {
			ev := m.picker.BackMonth()
			m.grid.SetMonth(m.picker.Month())
			m.grid.CursorToLast()
			return m, emit(MonthChangedMsg{Change: ev}), true
		}
		return m, nil, true
	}
}

func backHandler(m CalendarModel, _ string) (CalendarModel, tea.Cmd, bool) {
	if !m.canBack() {
		return m, nil, true
	}
	ev := m.picker.BackMonth()
	m.grid.SetMonth(m.picker.Month())
	return m, emit(MonthChangedMsg{Change: ev}), true
}

func nextHandler(m CalendarModel, _ string) (CalendarModel, tea.Cmd, bool) {
	if !m.canNext() {
		return m, nil, true
	}
	ev := m.picker.NextMonth()
	m.grid.SetMonth(m.picker.Month())
	return m, emit(MonthChangedMsg{Change: ev}), true
}

func selectHandler(m CalendarModel, _ string) (CalendarModel, tea.Cmd, bool) {
	days, ok := m.grid.Select(m.grid.CursorDay())
	if !ok {
		return m, nil, true
	}
	v, emitted := m.picker.OnChanged(days)
	if !emitted {
		return m, nil, true
	}
	return m, emit(SelectionChangedMsg{Value: v}), true
}

func blurHandler(m CalendarModel, _ string) (CalendarModel, tea.Cmd, bool) {
	m.picker.Touch()
	m.focused = false
	return m, emit(BlurMsg{}), true
}
