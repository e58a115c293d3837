// Package picker is the calendar widget controller. It owns the displayed
// month and the current selection, converts selections into the configured
// output representation and implements the form-control protocol.
package picker

import (
	"github.com/akyairhashvil/calpick/internal/calendar"
	"github.com/akyairhashvil/calpick/internal/config"
	"github.com/akyairhashvil/calpick/internal/models"
	"github.com/akyairhashvil/calpick/internal/util"
)

// ValueAccessor is the bidirectional binding a form control drives.
type ValueAccessor interface {
	WriteValue(v any)
	RegisterOnChange(fn func(any))
	RegisterOnTouched(fn func())
	SetDisabledState(disabled bool)
}

var _ ValueAccessor = (*Model)(nil)

// Config is the caller input for a picker.
type Config struct {
	Options  *models.Options
	Format   string
	Type     models.ValueType
	Readonly bool
}

// Model holds the current month view and selection. Mutating methods use
// pointer receivers; the struct is cheap to copy into a Bubble Tea model.
type Model struct {
	svc       *calendar.Service
	opt       models.ModalOptions
	format    string
	valueType models.ValueType
	readonly  bool

	showToggleButtons bool
	month             models.CalendarMonth
	value             []*models.CalendarDay

	onChanged func(any)
	onTouched func()

	// OnChange receives every emitted selection value.
	OnChange func(any)
	// OnMonthChange receives every month navigation.
	OnMonthChange func(models.MonthChange)
}

// New initializes a picker on the current month.
func New(svc *calendar.Service, cfg Config) Model {
	if svc == nil {
		svc = calendar.NewService()
	}
	var opts models.Options
	if cfg.Options != nil {
		opts = *cfg.Options
	}
	m := Model{
		svc:       svc,
		opt:       svc.SafeOpt(opts),
		format:    cfg.Format,
		valueType: cfg.Type,
		readonly:  cfg.Readonly,
		value:     []*models.CalendarDay{nil, nil},
	}
	if m.format == "" {
		m.format = config.DefaultFormat
	}
	if m.valueType == "" {
		m.valueType = models.TypeString
	}
	m.showToggleButtons = !(cfg.Options != nil && cfg.Options.ShowToggleButtons != nil && !*cfg.Options.ShowToggleButtons)
	m.month = m.createMonth(svc.NowMillis())
	return m
}

func (m *Model) createMonth(ms int64) models.CalendarMonth {
	return m.svc.CreateMonthsByPeriod(ms, 1, m.opt)[0]
}

func (m Model) Service() *calendar.Service   { return m.svc }
func (m Model) Options() models.ModalOptions { return m.opt }
func (m Model) Month() models.CalendarMonth  { return m.month }
func (m Model) PickMode() models.PickMode    { return m.opt.PickMode }
func (m Model) Type() models.ValueType       { return m.valueType }
func (m Model) Format() string               { return m.format }
func (m Model) Readonly() bool               { return m.readonly }
func (m Model) ShowToggleButtons() bool      { return m.showToggleButtons }
func (m Model) Reference() int64             { return m.month.Original.Time }

// Value returns a copy of the bound selection.
func (m Model) Value() []*models.CalendarDay {
	return append([]*models.CalendarDay(nil), m.value...)
}

// MonthLabel renders the displayed month with the configured month format.
func (m Model) MonthLabel() string {
	return m.svc.FormatMillis(m.month.Original.Time, m.opt.MonthFormat)
}

func (m *Model) RegisterOnChange(fn func(any)) { m.onChanged = fn }
func (m *Model) RegisterOnTouched(fn func())   { m.onTouched = fn }
func (m *Model) SetDisabledState(disabled bool) {
	m.readonly = disabled
}

// Touch reports a blur to the registered touched callback.
func (m *Model) Touch() {
	if m.onTouched != nil {
		m.onTouched()
	}
}

// WriteValue accepts a value from the form system. Falsy values are ignored.
// The month view moves to the first bound day, or to now if none parsed.
func (m *Model) WriteValue(v any) {
	if isFalsy(v) {
		return
	}
	m.writeValue(v)
	if first := firstDay(m.value); first != nil {
		m.month = m.createMonth(first.Time)
	} else {
		m.month = m.createMonth(m.svc.NowMillis())
	}
}

func (m *Model) writeValue(v any) {
	switch m.opt.PickMode {
	case models.PickSingle:
		m.value = []*models.CalendarDay{m.createCalendarDay(v), nil}
	case models.PickRange:
		from, to := rangeBounds(v)
		m.value = []*models.CalendarDay{nil, nil}
		if !isFalsy(from) {
			m.value[0] = m.createCalendarDay(from)
		}
		if !isFalsy(to) {
			m.value[1] = m.createCalendarDay(to)
		}
	case models.PickMulti:
		items, ok := listItems(v)
		m.value = make([]*models.CalendarDay, 0, len(items))
		if !ok {
			return
		}
		for _, item := range items {
			if d := m.createCalendarDay(item); d != nil {
				m.value = append(m.value, d)
			}
		}
	}
}

func (m *Model) createCalendarDay(v any) *models.CalendarDay {
	t, ok := m.toTime(v)
	if !ok {
		util.Component("picker").WithField("value", v).Debug("inbound value ignored")
		return nil
	}
	return m.svc.CreateCalendarDay(t.UnixMilli(), m.opt)
}

// NextMonth moves the view forward one month and returns the change event.
func (m *Model) NextMonth() models.MonthChange {
	return m.shiftMonth(1)
}

// BackMonth moves the view back one month and returns the change event.
func (m *Model) BackMonth() models.MonthChange {
	return m.shiftMonth(-1)
}

func (m *Model) shiftMonth(n int) models.MonthChange {
	cur := m.month.Original.Time
	next := m.svc.AddMonths(cur, n)
	ev := models.MonthChange{
		OldMonth: m.svc.MultiFormat(cur),
		NewMonth: m.svc.MultiFormat(next),
	}
	if m.OnMonthChange != nil {
		m.OnMonthChange(ev)
	}
	m.month = m.createMonth(next)
	return ev
}

// ShowMonth moves the view to the month containing ms. It refuses months
// outside the from/to bounds.
func (m *Model) ShowMonth(ms int64) (models.MonthChange, bool) {
	target := m.svc.CreateOriginalCalendar(ms).Time
	if !m.opt.From.IsZero() && target < m.svc.CreateOriginalCalendar(m.opt.From.UnixMilli()).Time {
		return models.MonthChange{}, false
	}
	if !m.opt.To.IsZero() && target > m.svc.CreateOriginalCalendar(m.opt.To.UnixMilli()).Time {
		return models.MonthChange{}, false
	}
	ev := models.MonthChange{
		OldMonth: m.svc.MultiFormat(m.month.Original.Time),
		NewMonth: m.svc.MultiFormat(target),
	}
	if m.OnMonthChange != nil {
		m.OnMonthChange(ev)
	}
	m.month = m.createMonth(target)
	return ev, true
}

// CanNext reports whether the upper bound allows moving forward.
func (m Model) CanNext() bool {
	if m.opt.To.IsZero() {
		return true
	}
	return m.month.Original.Time < m.opt.To.UnixMilli()
}

// CanBack reports whether the lower bound allows moving back.
func (m Model) CanBack() bool {
	if m.opt.From.IsZero() {
		return true
	}
	return m.month.Original.Time > m.opt.From.UnixMilli()
}

// OnChanged takes the month grid's selection and emits the converted value.
// The boolean is false when nothing was emitted.
func (m *Model) OnChanged(days []*models.CalendarDay) (any, bool) {
	m.value = append([]*models.CalendarDay(nil), days...)
	out, ok := m.Output()
	if !ok {
		return nil, false
	}
	if m.onChanged != nil {
		m.onChanged(out)
	}
	if m.OnChange != nil {
		m.OnChange(out)
	}
	return out, true
}

// Output converts the current selection without emitting it. The boolean is
// false when the selection is incomplete for the pick mode.
func (m Model) Output() (any, bool) {
	days := m.value
	switch m.opt.PickMode {
	case models.PickSingle:
		if len(days) == 0 || days[0] == nil {
			return nil, false
		}
		return m.HandleType(days[0].Time), true
	case models.PickRange:
		if len(days) < 2 || days[0] == nil || days[1] == nil {
			return nil, false
		}
		return models.DateRange{
			From: m.HandleType(days[0].Time),
			To:   m.HandleType(days[1].Time),
		}, true
	case models.PickMulti:
		dates := make([]any, 0, len(days))
		for _, d := range days {
			if d != nil && d.Time != 0 {
				dates = append(dates, m.HandleType(d.Time))
			}
		}
		return dates, true
	}
	return nil, false
}

// HandleType converts epoch milliseconds to the configured output type.
func (m Model) HandleType(ms int64) any {
	switch m.valueType {
	case models.TypeString:
		return m.svc.FormatMillis(ms, m.format)
	case models.TypeJSDate:
		return m.svc.FromMillis(ms)
	case models.TypeMoment:
		return m.svc.Wrap(ms)
	case models.TypeTime:
		return ms
	case models.TypeObject:
		t := m.svc.FromMillis(ms)
		return models.DateObject{
			Years:        t.Year(),
			Months:       int(t.Month()) - 1,
			Date:         t.Day(),
			Hours:        t.Hour(),
			Minutes:      t.Minute(),
			Seconds:      t.Second(),
			Milliseconds: t.Nanosecond() / 1e6,
		}
	}
	return m.svc.Wrap(ms)
}

func firstDay(days []*models.CalendarDay) *models.CalendarDay {
	for _, d := range days {
		if d != nil {
			return d
		}
	}
	return nil
}
