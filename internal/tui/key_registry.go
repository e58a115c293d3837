package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m CalendarModel, key string) (CalendarModel, tea.Cmd, bool)

type KeyBinding struct {
	Binding   key.Binding
	Handler   KeyHandler
	ViewModes []int
	Priority  int
}

func (b KeyBinding) AppliesToView(mode int) bool {
	if len(b.ViewModes) == 0 {
		return true
	}
	for _, v := range b.ViewModes {
		if v == mode {
			return true
		}
	}
	return false
}

func (b KeyBinding) matches(k string) bool {
	if !b.Binding.Enabled() {
		return false
	}
	for _, candidate := range b.Binding.Keys() {
		if candidate == k {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m CalendarModel, k string) (CalendarModel, tea.Cmd, bool) {
	mode := m.viewMode()
	for _, b := range r.bindings {
		if b.matches(k) && b.AppliesToView(mode) {
			next, cmd, handled := b.Handler(m, k)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) GetBindingsForView(mode int) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesToView(mode) {
			out = append(out, b)
		}
	}
	return out
}

// HelpForView renders "[key]desc|[key]desc" for the bindings of a mode.
func (r *HandlerRegistry) HelpForView(mode int) string {
	var parts []string
	for _, b := range r.GetBindingsForView(mode) {
		h := b.Binding.Help()
		if h.Desc == "" {
			continue
		}
		parts = append(parts, "["+h.Key+"]"+h.Desc)
	}
	return strings.Join(parts, "|")
}

// KeyMap adapts the bindings of one view mode to bubbles/help.
func (r *HandlerRegistry) KeyMap(mode int) help.KeyMap {
	var km keyMap
	for _, b := range r.GetBindingsForView(mode) {
		km = append(km, b.Binding)
	}
	return km
}

type keyMap []key.Binding

func (k keyMap) ShortHelp() []key.Binding { return k }

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k} }
