package form

import (
	"testing"
	"time"

	"github.com/akyairhashvil/calpick/internal/models"
	"github.com/akyairhashvil/calpick/internal/picker"
	"github.com/akyairhashvil/calpick/internal/testutil"
)

func newPicker() *picker.Model {
	m := picker.New(testutil.NewService(), picker.Config{})
	return &m
}

func TestBindWritesInitialValue(t *testing.T) {
	p := newPicker()
	c := NewControl("2024-04-10")
	c.Bind(p)
	day := p.Value()[0]
	if day == nil || day.Time != testutil.Millis(2024, time.April, 10) {
		t.Fatalf("expected initial value written, got %+v", day)
	}
	if p.Reference() != testutil.Millis(2024, time.April, 1) {
		t.Fatalf("expected picker month to follow the value")
	}
}

func TestSelectionUpdatesControl(t *testing.T) {
	p := newPicker()
	c := NewControl(nil)
	c.Bind(p)
	var seen []any
	c.OnValueChange(func(v any) { seen = append(seen, v) })

	p.OnChanged([]*models.CalendarDay{testutil.NewDay(2024, time.February, 20).Build()})
	if c.Value() != "2024-02-20" {
		t.Fatalf("expected control value from view, got %v", c.Value())
	}
	if !c.Dirty() {
		t.Fatalf("expected dirty after view change")
	}
	if len(seen) != 1 || seen[0] != "2024-02-20" {
		t.Fatalf("unexpected notifications %v", seen)
	}
}

func TestTouchedAndDisabled(t *testing.T) {
	p := newPicker()
	c := NewControl(nil)
	c.Disable()
	c.Bind(p)
	if !p.Readonly() {
		t.Fatalf("expected disabled state forwarded on bind")
	}
	c.Enable()
	if p.Readonly() {
		t.Fatalf("expected enabled state forwarded")
	}
	p.Touch()
	if !c.Touched() {
		t.Fatalf("expected touched after blur")
	}
	c.Reset("2024-05-01")
	if c.Touched() || c.Dirty() {
		t.Fatalf("expected flags cleared by reset")
	}
	if p.Value()[0] == nil || p.Value()[0].Time != testutil.Millis(2024, time.May, 1) {
		t.Fatalf("expected reset value written")
	}
}

func TestSetValueWithoutAccessor(t *testing.T) {
	c := NewControl(nil)
	c.SetValue("x")
	if c.Value() != "x" {
		t.Fatalf("expected stored value")
	}
}
