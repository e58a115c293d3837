// Package calendar builds month views and day cells for the picker and
// normalizes caller options.
package calendar

import (
	"strconv"
	"time"

	"github.com/akyairhashvil/calpick/internal/config"
	"github.com/akyairhashvil/calpick/internal/models"
	"github.com/akyairhashvil/calpick/internal/util"
)

// Service constructs calendar data. The zero value uses time.Now and time.Local.
type Service struct {
	Now      func() time.Time
	Location *time.Location
}

// NewService returns a service on the system clock and local time zone.
func NewService() *Service {
	return &Service{Now: time.Now, Location: time.Local}
}

func (s *Service) loc() *time.Location {
	if s == nil || s.Location == nil {
		return time.Local
	}
	return s.Location
}

// NowTime returns the current instant in the service location.
func (s *Service) NowTime() time.Time {
	if s == nil || s.Now == nil {
		return time.Now().In(s.loc())
	}
	return s.Now().In(s.loc())
}

// NowMillis returns the current instant as epoch milliseconds.
func (s *Service) NowMillis() int64 {
	return s.NowTime().UnixMilli()
}

// FromMillis converts epoch milliseconds to a time in the service location.
func (s *Service) FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).In(s.loc())
}

// Date builds a time in the service location.
func (s *Service) Date(year int, month time.Month, day, hour, min, sec, nsec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, nsec, s.loc())
}

func (s *Service) startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc())
}

// SafeOpt merges caller options with defaults.
func (s *Service) SafeOpt(o models.Options) models.ModalOptions {
	out := models.ModalOptions{
		From:              o.From,
		To:                o.To,
		PickMode:          o.PickMode,
		ShowToggleButtons: true,
		Color:             o.Color,
		WeekStart:         o.WeekStart,
		MonthFormat:       o.MonthFormat,
		Weekdays:          config.DefaultWeekdays,
		DisableWeeks:      append([]int(nil), o.DisableWeeks...),
		DefaultTitle:      o.DefaultTitle,
		DefaultSubtitle:   o.DefaultSubtitle,
		DaysConfig:        append([]models.DayConfig(nil), o.DaysConfig...),
	}
	if !out.PickMode.Valid() {
		out.PickMode = models.PickSingle
	}
	if o.ShowToggleButtons != nil {
		out.ShowToggleButtons = *o.ShowToggleButtons
	}
	if out.Color == "" {
		out.Color = config.DefaultColor
	}
	if out.WeekStart != 0 && out.WeekStart != 1 {
		out.WeekStart = config.DefaultWeekStart
	}
	if out.MonthFormat == "" {
		out.MonthFormat = config.DefaultMonthFormat
	}
	if len(o.Weekdays) == len(out.Weekdays) {
		copy(out.Weekdays[:], o.Weekdays)
	}
	return out
}

// CreateOriginalCalendar describes the month containing ms. The reference
// time is always the first of that month at midnight.
func (s *Service) CreateOriginalCalendar(ms int64) models.CalendarOriginal {
	t := s.FromMillis(ms)
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, s.loc())
	return models.CalendarOriginal{
		Time:        first.UnixMilli(),
		Date:        first,
		Year:        first.Year(),
		Month:       first.Month(),
		FirstWeek:   first.Weekday(),
		HowManyDays: daysIn(first.Year(), first.Month()),
	}
}

// CreateCalendarDay builds the cell for the day containing ms.
func (s *Service) CreateCalendarDay(ms int64, opt models.ModalOptions) *models.CalendarDay {
	t := s.FromMillis(ms)
	day := s.startOfDay(t)
	now := s.NowTime()
	cfg := findDayConfig(t, opt.DaysConfig)

	disable := s.outOfBounds(day, opt) || containsInt(opt.DisableWeeks, int(t.Weekday()))
	if cfg != nil && cfg.Disable != nil {
		disable = *cfg.Disable
	}

	title := strconv.Itoa(t.Day())
	if cfg != nil && cfg.Title != "" {
		title = cfg.Title
	} else if opt.DefaultTitle != "" {
		title = opt.DefaultTitle
	}
	subTitle := opt.DefaultSubtitle
	if cfg != nil && cfg.SubTitle != "" {
		subTitle = cfg.SubTitle
	}

	d := &models.CalendarDay{
		Time:     ms,
		IsToday:  sameDate(t, now),
		Title:    title,
		SubTitle: subTitle,
		Disable:  disable,
		IsFirst:  t.Day() == 1,
		IsLast:   t.Day() == daysIn(t.Year(), t.Month()),
	}
	if cfg != nil {
		d.Marked = cfg.Marked
		d.CSSClass = cfg.CSSClass
	}
	return d
}

func (s *Service) outOfBounds(day time.Time, opt models.ModalOptions) bool {
	if !opt.From.IsZero() && day.Before(s.anchorDate(opt.From)) {
		return true
	}
	if !opt.To.IsZero() && day.After(s.anchorDate(opt.To)) {
		return true
	}
	return false
}

// DayKey returns the epoch ms of midnight on the day containing ms.
func (s *Service) DayKey(ms int64) int64 {
	return s.startOfDay(s.FromMillis(ms)).UnixMilli()
}

// anchorDate keeps the calendar date of t and moves it to the service location.
func (s *Service) anchorDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc())
}

// CreateCalendarMonth lays out every day of the original month, padded with
// nil cells so the first column is opt.WeekStart.
func (s *Service) CreateCalendarMonth(original models.CalendarOriginal, opt models.ModalOptions) models.CalendarMonth {
	pad := util.Mod(int(original.FirstWeek)-opt.WeekStart, config.WeekLength)
	days := make([]*models.CalendarDay, pad, pad+original.HowManyDays)
	for i := 1; i <= original.HowManyDays; i++ {
		itemTime := time.Date(original.Year, original.Month, i, 0, 0, 0, 0, s.loc())
		days = append(days, s.CreateCalendarDay(itemTime.UnixMilli(), opt))
	}
	return models.CalendarMonth{Original: original, Days: days}
}

// CreateMonthsByPeriod builds n consecutive months starting at the month of startMs.
func (s *Service) CreateMonthsByPeriod(startMs int64, n int, opt models.ModalOptions) []models.CalendarMonth {
	start := s.CreateOriginalCalendar(startMs).Date
	months := make([]models.CalendarMonth, 0, n)
	for i := 0; i < n; i++ {
		ref := start.AddDate(0, i, 0)
		months = append(months, s.CreateCalendarMonth(s.CreateOriginalCalendar(ref.UnixMilli()), opt))
	}
	return months
}

// MultiFormat encodes ms in the formats carried by month-change events.
func (s *Service) MultiFormat(ms int64) models.CalendarResult {
	t := s.FromMillis(ms)
	return models.CalendarResult{
		Time:    ms,
		Unix:    t.Unix(),
		DateObj: t,
		String:  FormatTime(t, config.MultiFormatLayout),
		Years:   t.Year(),
		Months:  int(t.Month()),
		Date:    t.Day(),
	}
}

func findDayConfig(t time.Time, cfgs []models.DayConfig) *models.DayConfig {
	for i := range cfgs {
		if sameDate(cfgs[i].Date, t) {
			return &cfgs[i]
		}
	}
	return nil
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func daysIn(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
