package picker

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/akyairhashvil/calpick/internal/models"
	"github.com/akyairhashvil/calpick/internal/testutil"
	"github.com/nleeper/goment"
)

func newPicker(t *testing.T, opts models.Options, typ models.ValueType, format string) Model {
	t.Helper()
	return New(testutil.NewService(), Config{Options: &opts, Type: typ, Format: format})
}

func TestNewDefaults(t *testing.T) {
	m := New(testutil.NewService(), Config{})
	if m.Type() != models.TypeString || m.Format() != "YYYY-MM-DD" {
		t.Fatalf("unexpected defaults type=%q format=%q", m.Type(), m.Format())
	}
	if m.PickMode() != models.PickSingle {
		t.Fatalf("expected single mode, got %q", m.PickMode())
	}
	if !m.ShowToggleButtons() {
		t.Fatalf("expected toggle buttons by default")
	}
	if m.Reference() != testutil.Millis(2024, time.February, 1) {
		t.Fatalf("expected initial month to be now's month")
	}
	if m.MonthLabel() != "Feb 2024" {
		t.Fatalf("unexpected month label %q", m.MonthLabel())
	}
}

func TestNewHidesToggleButtonsOnlyWhenFalse(t *testing.T) {
	hidden := newPicker(t, testutil.NewOptions().WithToggleButtons(false).Build(), "", "")
	if hidden.ShowToggleButtons() {
		t.Fatalf("expected toggle buttons hidden")
	}
	shown := newPicker(t, testutil.NewOptions().WithToggleButtons(true).Build(), "", "")
	if !shown.ShowToggleButtons() {
		t.Fatalf("expected toggle buttons shown")
	}
}

func TestSingleWriteValueRoundTrip(t *testing.T) {
	cases := []struct {
		format string
		value  string
	}{
		{"YYYY-MM-DD", "2024-03-05"},
		{"DD/MM/YYYY", "05/03/2024"},
	}
	for _, tc := range cases {
		m := newPicker(t, models.Options{}, models.TypeString, tc.format)
		m.WriteValue(tc.value)
		day := m.Value()[0]
		if day == nil || day.Time != testutil.Millis(2024, time.March, 5) {
			t.Fatalf("%s: unexpected day %+v", tc.format, day)
		}
		if got := m.HandleType(day.Time); got != tc.value {
			t.Fatalf("%s: round trip produced %v", tc.format, got)
		}
		if m.Reference() != testutil.Millis(2024, time.March, 1) {
			t.Fatalf("%s: expected month rebuilt around value", tc.format)
		}
	}
}

func TestWriteValueIgnoresFalsy(t *testing.T) {
	m := newPicker(t, models.Options{}, models.TypeString, "")
	m.WriteValue("2024-03-05")
	before := m.Value()[0]
	for _, v := range []any{nil, "", 0, int64(0), int32(0), uint64(0), float32(0), json.Number("0"), time.Time{}, false, (*time.Time)(nil)} {
		m.WriteValue(v)
		if m.Value()[0] != before {
			t.Fatalf("expected %#v to be ignored", v)
		}
		if m.Reference() != testutil.Millis(2024, time.March, 1) {
			t.Fatalf("expected month unchanged for %#v", v)
		}
	}
}

func TestWriteValueUnparseableDefaultsToNow(t *testing.T) {
	m := newPicker(t, models.Options{}, models.TypeString, "")
	m.WriteValue("2024-03-05")
	m.WriteValue("not a date")
	if m.Value()[0] != nil {
		t.Fatalf("expected no bound day")
	}
	if m.Reference() != testutil.Millis(2024, time.February, 1) {
		t.Fatalf("expected month to reset to now")
	}
}

func TestWriteValueGenericTypes(t *testing.T) {
	want := testutil.Millis(2024, time.May, 20)
	small := testutil.Millis(1970, time.January, 10)
	g, err := goment.New(time.UnixMilli(want).UTC())
	if err != nil {
		t.Fatalf("goment.New failed: %v", err)
	}
	cases := []struct {
		name string
		typ  models.ValueType
		v    any
		want int64
	}{
		{"time int64", models.TypeTime, want, want},
		{"time float", models.TypeTime, float64(want), want},
		{"time int32", models.TypeTime, int32(small), small},
		{"time uint64", models.TypeTime, uint64(want), want},
		{"time float32", models.TypeTime, float32(small), small},
		{"time json number", models.TypeTime, json.Number("1716163200000"), want},
		{"js-date", models.TypeJSDate, time.UnixMilli(want), want},
		{"moment", models.TypeMoment, g, want},
		{"object", models.TypeObject, models.DateObject{Years: 2024, Months: 4, Date: 20}, want},
		{"object map", models.TypeObject, map[string]any{"years": float64(2024), "months": float64(4), "date": float64(20)}, want},
		{"object json numbers", models.TypeObject, map[string]any{"years": json.Number("2024"), "months": json.Number("4"), "date": json.Number("20")}, want},
		{"iso string", models.TypeJSDate, "2024-05-20T00:00:00Z", want},
	}
	for _, tc := range cases {
		m := newPicker(t, models.Options{}, tc.typ, "")
		m.WriteValue(tc.v)
		day := m.Value()[0]
		if day == nil || day.Time != tc.want {
			t.Fatalf("%s: unexpected day %+v", tc.name, day)
		}
	}
}

func TestRangeWriteValue(t *testing.T) {
	opts := testutil.NewOptions().WithPickMode(models.PickRange).Build()
	m := newPicker(t, opts, models.TypeString, "")
	m.WriteValue(map[string]any{"from": "2024-06-03", "to": "2024-06-09"})
	v := m.Value()
	if v[0] == nil || v[1] == nil {
		t.Fatalf("expected both ends, got %+v", v)
	}
	if v[0].Time != testutil.Millis(2024, time.June, 3) || v[1].Time != testutil.Millis(2024, time.June, 9) {
		t.Fatalf("unexpected range %+v %+v", v[0], v[1])
	}
	if m.Reference() != testutil.Millis(2024, time.June, 1) {
		t.Fatalf("expected month rebuilt around start")
	}

	m.WriteValue(models.DateRange{To: "2024-08-09"})
	v = m.Value()
	if v[0] != nil || v[1] == nil {
		t.Fatalf("expected only end bound, got %+v", v)
	}
	if m.Reference() != testutil.Millis(2024, time.August, 1) {
		t.Fatalf("expected month rebuilt around the only bound day")
	}
}

func TestMultiWriteValue(t *testing.T) {
	opts := testutil.NewOptions().WithPickMode(models.PickMulti).Build()
	m := newPicker(t, opts, models.TypeString, "")
	m.WriteValue([]string{"2024-07-01", "bogus", "2024-07-04"})
	v := m.Value()
	if len(v) != 2 {
		t.Fatalf("expected 2 parsed days, got %d", len(v))
	}
	if v[0].Time != testutil.Millis(2024, time.July, 1) || v[1].Time != testutil.Millis(2024, time.July, 4) {
		t.Fatalf("unexpected multi value %+v %+v", v[0], v[1])
	}

	m.WriteValue("2024-07-01")
	if len(m.Value()) != 0 {
		t.Fatalf("expected non-list value to clear selection")
	}
	if m.Reference() != testutil.Millis(2024, time.February, 1) {
		t.Fatalf("expected month to reset to now")
	}
}

func TestBackThenNextRestoresReference(t *testing.T) {
	m := newPicker(t, models.Options{}, "", "")
	start := m.Reference()
	m.BackMonth()
	if m.Reference() != testutil.Millis(2024, time.January, 1) {
		t.Fatalf("unexpected back reference")
	}
	m.NextMonth()
	if m.Reference() != start {
		t.Fatalf("expected reference restored")
	}
	m.NextMonth()
	m.BackMonth()
	if m.Reference() != start {
		t.Fatalf("expected reference restored after next/back")
	}
}

func TestMonthChangeEvent(t *testing.T) {
	m := newPicker(t, models.Options{}, "", "")
	var hooked models.MonthChange
	m.OnMonthChange = func(ev models.MonthChange) { hooked = ev }
	ev := m.NextMonth()
	if ev.OldMonth.String != "2024-02-01" || ev.NewMonth.String != "2024-03-01" {
		t.Fatalf("unexpected event %+v", ev)
	}
	if ev.NewMonth.Months != 3 || ev.NewMonth.Years != 2024 {
		t.Fatalf("unexpected new month fields %+v", ev.NewMonth)
	}
	if hooked != ev {
		t.Fatalf("expected hook to receive event")
	}
	back := m.BackMonth()
	if back.OldMonth.Time != ev.NewMonth.Time || back.NewMonth.Time != ev.OldMonth.Time {
		t.Fatalf("unexpected back event %+v", back)
	}
}

func TestCanNext(t *testing.T) {
	m := newPicker(t, models.Options{}, "", "")
	for i := 0; i < 24; i++ {
		if !m.CanNext() {
			t.Fatalf("expected CanNext without upper bound")
		}
		m.NextMonth()
	}

	bounded := newPicker(t, testutil.NewOptions().
		WithTo(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)).Build(), "", "")
	if !bounded.CanNext() {
		t.Fatalf("expected CanNext in February")
	}
	bounded.NextMonth()
	if !bounded.CanNext() {
		t.Fatalf("expected CanNext in March: Mar 1 is before Mar 15")
	}
	bounded.NextMonth()
	if bounded.CanNext() {
		t.Fatalf("expected CanNext false in April")
	}
}

func TestCanBack(t *testing.T) {
	m := newPicker(t, models.Options{}, "", "")
	for i := 0; i < 24; i++ {
		if !m.CanBack() {
			t.Fatalf("expected CanBack without lower bound")
		}
		m.BackMonth()
	}

	bounded := newPicker(t, testutil.NewOptions().
		WithFrom(time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)).Build(), "", "")
	if !bounded.CanBack() {
		t.Fatalf("expected CanBack in February")
	}
	bounded.BackMonth()
	if bounded.CanBack() {
		t.Fatalf("expected CanBack false in January")
	}

	exact := newPicker(t, testutil.NewOptions().
		WithFrom(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)).Build(), "", "")
	if exact.CanBack() {
		t.Fatalf("expected CanBack false when reference equals the bound")
	}
}

func TestOnChangedSingleTimeType(t *testing.T) {
	m := newPicker(t, models.Options{}, models.TypeTime, "")
	var registered, hooked any
	m.RegisterOnChange(func(v any) { registered = v })
	m.OnChange = func(v any) { hooked = v }
	day := testutil.NewDay(2024, time.February, 1).WithTime(1700000000000).Build()
	out, ok := m.OnChanged([]*models.CalendarDay{day})
	if !ok {
		t.Fatalf("expected emission")
	}
	if got, isInt := out.(int64); !isInt || got != 1700000000000 {
		t.Fatalf("expected int64 1700000000000, got %#v", out)
	}
	if registered != out || hooked != out {
		t.Fatalf("expected callbacks to receive %v, got %v and %v", out, registered, hooked)
	}
}

func TestOnChangedSingleEmpty(t *testing.T) {
	m := newPicker(t, models.Options{}, models.TypeTime, "")
	called := false
	m.RegisterOnChange(func(any) { called = true })
	if _, ok := m.OnChanged(nil); ok || called {
		t.Fatalf("expected no emission for empty selection")
	}
}

func TestOnChangedRange(t *testing.T) {
	opts := testutil.NewOptions().WithPickMode(models.PickRange).Build()
	m := newPicker(t, opts, models.TypeString, "")
	calls := 0
	m.RegisterOnChange(func(any) { calls++ })

	start := testutil.NewDay(2024, time.February, 5).Build()
	if _, ok := m.OnChanged([]*models.CalendarDay{start, nil}); ok {
		t.Fatalf("expected no emission with only a start day")
	}
	if _, ok := m.OnChanged([]*models.CalendarDay{start}); ok {
		t.Fatalf("expected no emission with a one-element selection")
	}
	if calls != 0 {
		t.Fatalf("expected no change callbacks, got %d", calls)
	}

	end := testutil.NewDay(2024, time.February, 9).Build()
	out, ok := m.OnChanged([]*models.CalendarDay{start, end})
	if !ok || calls != 1 {
		t.Fatalf("expected one emission, ok=%v calls=%d", ok, calls)
	}
	r, isRange := out.(models.DateRange)
	if !isRange || r.From != "2024-02-05" || r.To != "2024-02-09" {
		t.Fatalf("unexpected range output %#v", out)
	}
}

func TestOnChangedMultiFiltersAndKeepsOrder(t *testing.T) {
	opts := testutil.NewOptions().WithPickMode(models.PickMulti).Build()
	m := newPicker(t, opts, models.TypeString, "")
	days := []*models.CalendarDay{
		testutil.NewDay(2024, time.February, 20).Build(),
		nil,
		testutil.NewDay(2024, time.February, 1).WithTime(0).Build(),
		testutil.NewDay(2024, time.February, 3).Build(),
	}
	out, ok := m.OnChanged(days)
	if !ok {
		t.Fatalf("expected emission")
	}
	dates, isList := out.([]any)
	if !isList || len(dates) != 2 {
		t.Fatalf("expected 2 dates, got %#v", out)
	}
	if dates[0] != "2024-02-20" || dates[1] != "2024-02-03" {
		t.Fatalf("unexpected order %v", dates)
	}
}

func TestHandleTypeConversions(t *testing.T) {
	ms := time.Date(2024, time.March, 5, 14, 7, 9, 250*int(time.Millisecond), time.UTC).UnixMilli()

	if got := newPicker(t, models.Options{}, models.TypeString, "DD.MM.YYYY").HandleType(ms); got != "05.03.2024" {
		t.Fatalf("string: got %v", got)
	}
	if got, ok := newPicker(t, models.Options{}, models.TypeJSDate, "").HandleType(ms).(time.Time); !ok || got.UnixMilli() != ms {
		t.Fatalf("js-date: got %v", got)
	}
	if got, ok := newPicker(t, models.Options{}, models.TypeMoment, "").HandleType(ms).(*goment.Goment); !ok || got.ToTime().UnixMilli() != ms {
		t.Fatalf("moment: got %v", got)
	}
	if got := newPicker(t, models.Options{}, models.TypeTime, "").HandleType(ms); got != ms {
		t.Fatalf("time: got %v", got)
	}
	obj, ok := newPicker(t, models.Options{}, models.TypeObject, "").HandleType(ms).(models.DateObject)
	want := models.DateObject{Years: 2024, Months: 2, Date: 5, Hours: 14, Minutes: 7, Seconds: 9, Milliseconds: 250}
	if !ok || obj != want {
		t.Fatalf("object: got %+v", obj)
	}
	if _, ok := newPicker(t, models.Options{}, "weird", "").HandleType(ms).(*goment.Goment); !ok {
		t.Fatalf("unknown type should fall back to the library object")
	}
}

func TestTouchAndDisabledState(t *testing.T) {
	m := newPicker(t, models.Options{}, "", "")
	touched := false
	m.Touch()
	m.RegisterOnTouched(func() { touched = true })
	m.Touch()
	if !touched {
		t.Fatalf("expected touched callback")
	}
	m.SetDisabledState(true)
	if !m.Readonly() {
		t.Fatalf("expected readonly after disabling")
	}
	m.SetDisabledState(false)
	if m.Readonly() {
		t.Fatalf("expected editable after enabling")
	}
}

func TestOutputDoesNotEmit(t *testing.T) {
	m := newPicker(t, models.Options{}, models.TypeString, "")
	called := false
	m.RegisterOnChange(func(any) { called = true })
	if _, ok := m.Output(); ok {
		t.Fatalf("expected no output before a value is written")
	}
	m.WriteValue("2024-03-09")
	out, ok := m.Output()
	if !ok || out != "2024-03-09" {
		t.Fatalf("expected restored output, got %v ok=%v", out, ok)
	}
	if called {
		t.Fatalf("expected Output not to call the change callback")
	}
}

func TestShowMonthRespectsBounds(t *testing.T) {
	opts := testutil.NewOptions().
		WithFrom(time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)).
		WithTo(time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)).
		Build()
	m := newPicker(t, opts, models.TypeString, "")
	var hooked models.MonthChange
	m.OnMonthChange = func(ev models.MonthChange) { hooked = ev }

	ev, ok := m.ShowMonth(testutil.Millis(2024, time.June, 25))
	if !ok {
		t.Fatalf("expected June to be reachable")
	}
	if m.Reference() != testutil.Millis(2024, time.June, 1) {
		t.Fatalf("expected June reference, got %d", m.Reference())
	}
	if ev.OldMonth.String != "2024-02-01" || ev.NewMonth.String != "2024-06-01" || hooked != ev {
		t.Fatalf("unexpected event %#v", ev)
	}
	if _, ok := m.ShowMonth(testutil.Millis(2024, time.July, 1)); ok {
		t.Fatalf("expected July to be refused")
	}
	if _, ok := m.ShowMonth(testutil.Millis(2023, time.December, 31)); ok {
		t.Fatalf("expected December to be refused")
	}
	if _, ok := m.ShowMonth(testutil.Millis(2024, time.January, 2)); !ok {
		t.Fatalf("expected the month of the lower bound to be reachable")
	}
}
