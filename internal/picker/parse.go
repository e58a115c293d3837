package picker

import (
	"encoding/json"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/akyairhashvil/calpick/internal/models"
	"github.com/nleeper/goment"
)

// isFalsy matches the values a form system treats as "no value".
func isFalsy(v any) bool {
	if v == nil {
		return true
	}
	switch x := v.(type) {
	case string:
		return x == ""
	case bool:
		return !x
	case time.Time:
		return x.IsZero()
	case json.Number:
		f, err := x.Float64()
		return x == "" || (err == nil && f == 0)
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return rv.Int() == 0
	case rv.CanUint():
		return rv.Uint() == 0
	case rv.CanFloat():
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// rangeBounds extracts from/to out of a DateRange or a string-keyed map.
func rangeBounds(v any) (any, any) {
	switch x := v.(type) {
	case models.DateRange:
		return x.From, x.To
	case *models.DateRange:
		return x.From, x.To
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, nil
	}
	var from, to any
	iter := rv.MapRange()
	for iter.Next() {
		switch strings.ToLower(iter.Key().String()) {
		case "from":
			from = iter.Value().Interface()
		case "to":
			to = iter.Value().Interface()
		}
	}
	return from, to
}

// listItems flattens any slice or array into its elements.
func listItems(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// toTime reads one inbound value according to the declared type. Strings are
// parsed with the format pattern when the type is string, otherwise as ISO 8601.
func (m *Model) toTime(v any) (time.Time, bool) {
	if s, ok := v.(string); ok && m.valueType == models.TypeString {
		t, err := m.svc.ParseString(s, m.format)
		return t, err == nil
	}
	switch x := v.(type) {
	case time.Time:
		return x, !x.IsZero()
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}
		return *x, !x.IsZero()
	case *goment.Goment:
		if x == nil {
			return time.Time{}, false
		}
		return x.ToTime(), true
	case models.DateObject:
		return m.fromObject(x), true
	case *models.DateObject:
		if x == nil {
			return time.Time{}, false
		}
		return m.fromObject(*x), true
	case map[string]any:
		obj, ok := objectFromMap(x)
		if !ok {
			return time.Time{}, false
		}
		return m.fromObject(obj), true
	case string:
		t, err := m.svc.ParseString(x, "")
		return t, err == nil
	}
	if ms, ok := toMillis(v); ok {
		return m.svc.FromMillis(ms), true
	}
	return time.Time{}, false
}

// toMillis reads any integer, unsigned or float kind, or a json.Number, as
// epoch milliseconds.
func toMillis(v any) (int64, bool) {
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		v = f
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return rv.Int(), true
	case rv.CanUint():
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case rv.CanFloat():
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt64 {
			return 0, false
		}
		return int64(f), true
	}
	return 0, false
}

func (m *Model) fromObject(o models.DateObject) time.Time {
	return m.svc.Date(o.Years, time.Month(o.Months+1), o.Date, o.Hours, o.Minutes, o.Seconds, o.Milliseconds*int(time.Millisecond))
}

// objectFromMap reads a decomposed date out of decoded JSON. Only years,
// months and date are required.
func objectFromMap(raw map[string]any) (models.DateObject, bool) {
	fields := map[string]*int{}
	var o models.DateObject
	fields["years"] = &o.Years
	fields["months"] = &o.Months
	fields["date"] = &o.Date
	fields["hours"] = &o.Hours
	fields["minutes"] = &o.Minutes
	fields["seconds"] = &o.Seconds
	fields["milliseconds"] = &o.Milliseconds
	seen := 0
	for key, dst := range fields {
		val, ok := raw[key]
		if !ok {
			continue
		}
		n, ok := toInt(val)
		if !ok {
			return models.DateObject{}, false
		}
		*dst = n
		switch key {
		case "years", "months", "date":
			seen++
		}
	}
	return o, seen == 3
}

func toInt(v any) (int, bool) {
	n, ok := toMillis(v)
	return int(n), ok
}
