// Package form binds a value to a widget through the picker.ValueAccessor
// protocol: values written here reach the widget, and changes reported by
// the widget update the control.
package form

import "github.com/akyairhashvil/calpick/internal/picker"

// Control is a single form field.
type Control struct {
	value    any
	touched  bool
	dirty    bool
	disabled bool
	accessor picker.ValueAccessor
	watchers []func(any)
}

func NewControl(initial any) *Control {
	return &Control{value: initial}
}

// Bind attaches the accessor, registers the callbacks and writes the current
// value into it.
func (c *Control) Bind(a picker.ValueAccessor) {
	c.accessor = a
	a.RegisterOnChange(c.fromView)
	a.RegisterOnTouched(func() { c.touched = true })
	a.SetDisabledState(c.disabled)
	a.WriteValue(c.value)
}

func (c *Control) fromView(v any) {
	c.value = v
	c.dirty = true
	c.notify()
}

// SetValue stores v and writes it to the bound accessor.
func (c *Control) SetValue(v any) {
	c.value = v
	if c.accessor != nil {
		c.accessor.WriteValue(v)
	}
	c.notify()
}

// OnValueChange subscribes fn to every value change.
func (c *Control) OnValueChange(fn func(any)) {
	c.watchers = append(c.watchers, fn)
}

func (c *Control) notify() {
	for _, fn := range c.watchers {
		fn(c.value)
	}
}

func (c *Control) Disable() { c.setDisabled(true) }
func (c *Control) Enable()  { c.setDisabled(false) }

func (c *Control) setDisabled(d bool) {
	c.disabled = d
	if c.accessor != nil {
		c.accessor.SetDisabledState(d)
	}
}

// Reset clears the touched and dirty flags and writes v.
func (c *Control) Reset(v any) {
	c.touched = false
	c.dirty = false
	c.SetValue(v)
}

func (c *Control) Value() any     { return c.value }
func (c *Control) Touched() bool  { return c.touched }
func (c *Control) Dirty() bool    { return c.dirty }
func (c *Control) Disabled() bool { return c.disabled }
