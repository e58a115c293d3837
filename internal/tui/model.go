package tui

import (
	"context"
	"strings"

	"github.com/akyairhashvil/calpick/internal/config"
	"github.com/akyairhashvil/calpick/internal/models"
	"github.com/akyairhashvil/calpick/internal/picker"
	"github.com/akyairhashvil/calpick/internal/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SessionState defines the high-level mode of the application.
type SessionState int

const (
	StatePicking SessionState = iota
	StateGoto
	StateDone
	StateAborted
)

// MainOptions tune the root model.
type MainOptions struct {
	// Restore loads the latest stored selection on start.
	Restore bool
	// ConfirmOnSelect quits as soon as a single-mode day is picked.
	ConfirmOnSelect bool
}

type latestLoadedMsg struct {
	selection models.Selection
	found     bool
	err       error
}

type selectionSavedMsg struct {
	id  int64
	err error
}

type settingSavedMsg struct {
	key string
	err error
}

// MainModel is the root bubbletea model hosting the calendar.
type MainModel struct {
	ctx       context.Context
	db        Database
	opts      MainOptions
	state     SessionState
	calendar  CalendarModel
	gotoInput textinput.Model
	help      help.Model
	result    any
	hasResult bool
	status    string
	width     int
	height    int
}

// NewMainModel wraps a picker. db may be nil, which disables persistence.
func NewMainModel(ctx context.Context, db Database, p picker.Model, opts MainOptions) MainModel {
	if ctx == nil {
		ctx = context.Background()
	}
	ti := textinput.New()
	ti.Placeholder = p.Format()
	ti.CharLimit = 32
	ti.Width = 24

	m := MainModel{
		ctx:       ctx,
		db:        db,
		opts:      opts,
		state:     StatePicking,
		calendar:  NewCalendarModel(p),
		gotoInput: ti,
		help:      help.New(),
	}
	m.result, m.hasResult = p.Output()
	return m
}

func (m MainModel) Init() tea.Cmd {
	if m.opts.Restore && m.db != nil {
		return m.loadLatestCmd()
	}
	return nil
}

func (m MainModel) State() SessionState     { return m.state }
func (m MainModel) Calendar() CalendarModel { return m.calendar }
func (m MainModel) Status() string          { return m.status }
func (m MainModel) Aborted() bool           { return m.state == StateAborted }
func (m MainModel) Result() (any, bool)     { return m.result, m.hasResult }

func (m MainModel) loadLatestCmd() tea.Cmd {
	ctx, db := m.ctx, m.db
	return func() tea.Msg {
		sel, found, err := db.LatestSelection(ctx)
		return latestLoadedMsg{selection: sel, found: found, err: err}
	}
}

func (m MainModel) saveSelectionCmd(v any) tea.Cmd {
	if m.db == nil {
		return nil
	}
	p := m.calendar.Picker()
	payload, err := EncodeValue(v)
	if err != nil {
		return func() tea.Msg { return selectionSavedMsg{err: err} }
	}
	sel := models.Selection{
		PickMode:  p.PickMode(),
		ValueType: p.Type(),
		Format:    p.Format(),
		Payload:   payload,
		MonthTime: p.Reference(),
	}
	ctx, db := m.ctx, m.db
	return func() tea.Msg {
		id, err := db.SaveSelection(ctx, sel)
		return selectionSavedMsg{id: id, err: err}
	}
}

func (m MainModel) saveSettingCmd(key, value string) tea.Cmd {
	if m.db == nil {
		return nil
	}
	ctx, db := m.ctx, m.db
	return func() tea.Msg {
		return settingSavedMsg{key: key, err: db.SetSetting(ctx, key, value)}
	}
}

// restore applies a stored selection when it was made with the same mode,
// type and format as the running picker.
func (m MainModel) restore(msg latestLoadedMsg) MainModel {
	log := util.Component("tui")
	if msg.err != nil {
		util.LogError("load latest selection", msg.err)
		return m
	}
	if !msg.found {
		return m
	}
	p := m.calendar.Picker()
	sel := msg.selection
	if sel.PickMode != p.PickMode() || sel.ValueType != p.Type() || sel.Format != p.Format() {
		log.WithField("selection", sel.ID).Debug("stored selection does not match picker config")
		return m
	}
	v, err := DecodeValue(sel.Payload)
	if err != nil {
		util.LogError("restore selection", err)
		return m
	}
	m.calendar.WriteValue(v)
	m.result, m.hasResult = m.calendar.Picker().Output()
	m.status = "restored last selection"
	return m
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.calendar, _ = m.calendar.Update(msg)
		return m, nil

	case latestLoadedMsg:
		return m.restore(msg), nil

	case selectionSavedMsg:
		if msg.err != nil {
			util.LogError("save selection", msg.err)
			m.status = "could not save selection"
		}
		return m, nil

	case settingSavedMsg:
		if msg.err != nil {
			util.LogError("save setting "+msg.key, msg.err)
		}
		return m, nil

	case SelectionChangedMsg:
		m.result = msg.Value
		m.hasResult = true
		m.status = ""
		save := m.saveSelectionCmd(msg.Value)
		if m.opts.ConfirmOnSelect && m.calendar.Picker().PickMode() == models.PickSingle {
			m.state = StateDone
			return m, tea.Sequence(save, tea.Quit)
		}
		return m, save

	case MonthChangedMsg:
		util.Component("tui").WithField("month", msg.Change.NewMonth.String).Debug("month changed")
		m.status = ""
		return m, nil

	case BlurMsg:
		m.status = "press tab to focus"
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.state = StateAborted
			return m, tea.Quit
		}
		if m.state == StateGoto {
			return m.updateGoto(msg)
		}
		return m.updatePicking(msg)
	}
	if m.state == StateGoto {
		var cmd tea.Cmd
		m.gotoInput, cmd = m.gotoInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m MainModel) updatePicking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.state = StateDone
		return m, tea.Quit
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case "c":
		color := NextTheme(m.calendar.Color())
		m.calendar.SetTheme(color)
		return m, m.saveSettingCmd(config.SettingLastTheme, color)
	}
	if !m.calendar.Focused() {
		if msg.String() == "tab" {
			m.calendar.Focus()
			m.status = ""
		}
		return m, nil
	}
	if msg.String() == "g" && !m.calendar.Picker().Readonly() && m.calendar.Picker().ShowToggleButtons() {
		m.state = StateGoto
		m.gotoInput.SetValue("")
		m.status = ""
		return m, m.gotoInput.Focus()
	}
	var cmd tea.Cmd
	m.calendar, cmd = m.calendar.Update(msg)
	return m, cmd
}

func (m MainModel) updateGoto(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = StatePicking
		m.gotoInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.state = StatePicking
		m.gotoInput.Blur()
		p := m.calendar.Picker()
		input := strings.TrimSpace(m.gotoInput.Value())
		t, err := p.Service().ParseString(input, p.Format())
		if err != nil {
			m.status = "invalid date, expected " + p.Format()
			return m, nil
		}
		var cmd tea.Cmd
		m.calendar, cmd = m.calendar.JumpTo(t.UnixMilli())
		if cmd == nil {
			m.status = "date is outside the allowed range"
		}
		return m, cmd
	}
	var cmd tea.Cmd
	m.gotoInput, cmd = m.gotoInput.Update(msg)
	return m, cmd
}

func (m MainModel) View() string {
	if m.state == StateDone || m.state == StateAborted {
		return ""
	}
	theme := m.calendar.Theme()
	parts := []string{m.calendar.View()}
	if m.state == StateGoto {
		parts = append(parts, theme.Input.Render(m.gotoInput.View()))
	}
	if m.status != "" {
		parts = append(parts, theme.Status.Render(m.status))
	}
	parts = append(parts, "", m.help.View(mainKeyMap{inner: m.calendar.KeyMap()}))
	return theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

var mainBindings = []key.Binding{
	key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to date")),
	key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "theme")),
	key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "done")),
}

type mainKeyMap struct {
	inner help.KeyMap
}

func (k mainKeyMap) ShortHelp() []key.Binding {
	out := append([]key.Binding(nil), k.inner.ShortHelp()...)
	return append(out, mainBindings...)
}

func (k mainKeyMap) FullHelp() [][]key.Binding {
	out := append([][]key.Binding(nil), k.inner.FullHelp()...)
	return append(out, mainBindings)
}
