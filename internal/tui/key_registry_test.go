package tui

import (
	"strings"
	"testing"

	"github.com/akyairhashvil/calpick/internal/config"
	"github.com/akyairhashvil/calpick/internal/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestHandlerRegistryPriority(t *testing.T) {
	r := NewHandlerRegistry()
	var order []string
	mk := func(name string) KeyHandler {
		return func(m CalendarModel, _ string) (CalendarModel, tea.Cmd, bool) {
			order = append(order, name)
			return m, nil, name == "high"
		}
	}
	r.Register(KeyBinding{Binding: key.NewBinding(key.WithKeys("x")), Handler: mk("low"), Priority: 1})
	r.Register(KeyBinding{Binding: key.NewBinding(key.WithKeys("x")), Handler: mk("high"), Priority: 5})

	m := newTestCalendar(t, models.Options{}, models.TypeString, false)
	if _, _, handled := r.Handle(m, "x"); !handled {
		t.Fatalf("expected key to be handled")
	}
	if strings.Join(order, ",") != "high" {
		t.Fatalf("expected only the high priority handler, got %v", order)
	}
	if _, _, handled := r.Handle(m, "y"); handled {
		t.Fatalf("expected unbound key to be unhandled")
	}
}

func TestHandlerRegistryViewModes(t *testing.T) {
	r := NewHandlerRegistry()
	hit := false
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Handler:   func(m CalendarModel, _ string) (CalendarModel, tea.Cmd, bool) { hit = true; return m, nil, true },
		ViewModes: []int{config.ViewModeInteractive},
	})
	ro := newTestCalendar(t, models.Options{}, models.TypeString, true)
	if _, _, handled := r.Handle(ro, "s"); handled || hit {
		t.Fatalf("expected binding to be skipped in readonly mode")
	}
	if got := r.HelpForView(config.ViewModeInteractive); got != "[s]save" {
		t.Fatalf("unexpected help %q", got)
	}
	if got := r.HelpForView(config.ViewModeReadonly); got != "" {
		t.Fatalf("expected empty readonly help, got %q", got)
	}
}

func TestHandlerRegistryDisabledBinding(t *testing.T) {
	r := NewHandlerRegistry()
	b := key.NewBinding(key.WithKeys("z"))
	b.SetEnabled(false)
	r.Register(KeyBinding{Binding: b, Handler: func(m CalendarModel, _ string) (CalendarModel, tea.Cmd, bool) { return m, nil, true }})
	m := newTestCalendar(t, models.Options{}, models.TypeString, false)
	if _, _, handled := r.Handle(m, "z"); handled {
		t.Fatalf("expected disabled binding to be ignored")
	}
}

func TestCalendarKeyMap(t *testing.T) {
	r := calendarKeys()
	interactive := len(r.KeyMap(config.ViewModeInteractive).ShortHelp())
	readonly := len(r.KeyMap(config.ViewModeReadonly).ShortHelp())
	if interactive != 8 || readonly != 5 {
		t.Fatalf("unexpected binding counts %d/%d", interactive, readonly)
	}
}
