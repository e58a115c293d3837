package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/nleeper/goment"
)

// ErrUnparsedDate is returned when a value does not read as a date.
var ErrUnparsedDate = errors.New("date could not be parsed")

// FormatTime renders t with a moment-style pattern such as "YYYY-MM-DD".
func FormatTime(t time.Time, pattern string) string {
	g, err := goment.New(t)
	if err != nil {
		return t.Format(time.RFC3339)
	}
	return g.Format(pattern)
}

// FormatMillis renders epoch milliseconds with a moment-style pattern.
func (s *Service) FormatMillis(ms int64, pattern string) string {
	return FormatTime(s.FromMillis(ms), pattern)
}

// ParseString parses value with a moment-style pattern. An empty pattern
// accepts ISO 8601; a value carrying an offset keeps its instant. Otherwise the
// wall clock of the result is kept and placed in the service location. With a
// pattern the value must format back to itself, so partial matches and
// overflowing fields are rejected.
func (s *Service) ParseString(value, pattern string) (time.Time, error) {
	var (
		g   *goment.Goment
		err error
	)
	if pattern == "" {
		if t, perr := time.Parse(time.RFC3339Nano, value); perr == nil {
			return t.In(s.loc()), nil
		}
		g, err = goment.New(value)
	} else {
		g, err = goment.New(value, pattern)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrUnparsedDate, err)
	}
	t := g.ToTime()
	if t.IsZero() {
		return time.Time{}, ErrUnparsedDate
	}
	t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), s.loc())
	if pattern != "" && FormatTime(t, pattern) != value {
		return time.Time{}, ErrUnparsedDate
	}
	return t, nil
}

// Wrap returns the date-library object for ms.
func (s *Service) Wrap(ms int64) *goment.Goment {
	g, err := goment.New(s.FromMillis(ms))
	if err != nil {
		return nil
	}
	return g
}

// AddMonths moves ms by n calendar months. The day of month is clamped to the
// length of the target month, so Jan 31 plus one month is the last day of
// February.
func (s *Service) AddMonths(ms int64, n int) int64 {
	t := s.FromMillis(ms)
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), s.loc())
	day := t.Day()
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return first.AddDate(0, 0, day-1).UnixMilli()
}
